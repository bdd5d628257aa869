package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	return Config{
		ContactToEmail:    "owner@example.com",
		ContactFromEmail:  "no-reply@example.com",
		ContactFromName:   "example.com",
		ContactSubjectTag: "example.com",
		ProviderTimeout:   time.Second,
		ResumeDir:         t.TempDir(),
		VisitorRetention:  365 * 24 * time.Hour,
		AdminUsername:     "admin",
		AdminPassword:     "s3cret",
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := openStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestServer(t *testing.T, cfg Config, mailer Mailer) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)
	srv, err := newServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), store, mailer)
	require.NoError(t, err)
	t.Cleanup(srv.tracker.Wait)
	return srv
}

func doRequest(h http.Handler, method, path, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, m := range mutate {
		m(req)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func doForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
