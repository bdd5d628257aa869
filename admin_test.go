package main

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminLogin(t *testing.T, h http.Handler, username, password string) *http.Cookie {
	t.Helper()
	w := doForm(h, "/admin/login", url.Values{"username": {username}, "password": {password}})
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie && c.Value != "" {
			return c
		}
	}
	return nil
}

func TestAdminAuth_hashIP(t *testing.T) {
	auth, err := newAdminAuth(testConfig(t))
	require.NoError(t, err)

	h := auth.hashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, auth.hashIP("203.0.113.7"))
	assert.NotEqual(t, h, auth.hashIP("203.0.113.8"))
	assert.NotContains(t, h, "203.0.113.7")

	other, err := newAdminAuth(testConfig(t))
	require.NoError(t, err)
	assert.NotEqual(t, h, other.hashIP("203.0.113.7"), "salt must differ per process")
}

func TestAdminAuth_checkCredentials(t *testing.T) {
	auth, err := newAdminAuth(testConfig(t))
	require.NoError(t, err)
	assert.True(t, auth.checkCredentials("admin", "s3cret"))
	assert.False(t, auth.checkCredentials("admin", "wrong"))
	assert.False(t, auth.checkCredentials("", ""))

	cfg := testConfig(t)
	cfg.AdminPassword = ""
	disabled, err := newAdminAuth(cfg)
	require.NoError(t, err)
	assert.False(t, disabled.enabled())
	assert.False(t, disabled.checkCredentials("admin", ""))
}

func TestAdminRoutes_RequireLogin(t *testing.T) {
	srv := newTestServer(t, testConfig(t), nil)
	router := srv.router()

	for _, path := range []string{"/admin/dashboard", "/admin/visitors", "/admin/downloads", "/admin/api/stats", "/admin/metrics"} {
		w := doRequest(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"), path)
	}

	w := doRequest(router, http.MethodGet, "/admin/dashboard", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: adminCookie, Value: "forged"})
	})
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAdminRoutes_Login(t *testing.T) {
	srv := newTestServer(t, testConfig(t), nil)
	router := srv.router()

	assert.Nil(t, adminLogin(t, router, "admin", "nope"))

	cookie := adminLogin(t, router, "admin", "s3cret")
	require.NotNil(t, cookie)
	withCookie := func(r *http.Request) { r.AddCookie(cookie) }

	for _, path := range []string{"/admin/dashboard", "/admin/visitors", "/admin/downloads"} {
		w := doRequest(router, http.MethodGet, path, "", withCookie)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := doRequest(router, http.MethodGet, "/admin/api/stats", "", withCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_visitors"`)

	w = doRequest(router, http.MethodGet, "/admin/export/stats", "", withCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "admin-stats.json")
}

func TestAdminRoutes_FailedLoginIsUnauthorized(t *testing.T) {
	srv := newTestServer(t, testConfig(t), nil)
	w := doForm(srv.router(), "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAdminRoutes_PrivacyCleanup(t *testing.T) {
	srv := newTestServer(t, testConfig(t), nil)
	router := srv.router()
	ctx := context.Background()

	require.NoError(t, srv.store.RecordVisit(ctx, "old", "ua", "/", time.Now().AddDate(-2, 0, 0)))
	require.NoError(t, srv.store.RecordVisit(ctx, "new", "ua", "/", time.Now()))

	cookie := adminLogin(t, router, "admin", "s3cret")
	require.NotNil(t, cookie)
	w := doRequest(router, http.MethodPost, "/admin/privacy/cleanup", "", func(r *http.Request) { r.AddCookie(cookie) })
	require.Equal(t, http.StatusOK, w.Code)

	visitors, err := srv.store.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "new", visitors[0].HashedIP)
}

func TestAdminRoutes_Metrics(t *testing.T) {
	srv := newTestServer(t, testConfig(t), nil)
	router := srv.router()

	doRequest(router, http.MethodPost, "/api/contact", `{}`)

	cookie := adminLogin(t, router, "admin", "s3cret")
	require.NotNil(t, cookie)
	w := doRequest(router, http.MethodGet, "/admin/metrics", "", func(r *http.Request) { r.AddCookie(cookie) })
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `site_contact_submissions_total{outcome="invalid"} 1`)
}

func TestVisitorTracker(t *testing.T) {
	srv := newTestServer(t, testConfig(t), nil)
	router := srv.router()

	doRequest(router, http.MethodGet, "/about", "", func(r *http.Request) {
		r.RemoteAddr = "198.51.100.4:5555"
		r.Header.Set("User-Agent", "test-agent")
	})
	doRequest(router, http.MethodGet, "/skills", "", func(r *http.Request) { r.Header.Set("DNT", "1") })
	doRequest(router, http.MethodGet, "/privacy", "")
	doRequest(router, http.MethodGet, "/admin/login", "")

	w := doRequest(router, http.MethodGet, "/wp-login.php", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(router, http.MethodGet, "/programs/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	srv.tracker.Wait()

	visitors, err := srv.store.RecentVisitors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "/about", visitors[0].Path)
	assert.Equal(t, "test-agent", visitors[0].UserAgent)
	assert.Equal(t, srv.admin.hashIP("198.51.100.4"), visitors[0].HashedIP)
	assert.False(t, strings.Contains(visitors[0].HashedIP, "198.51.100.4"))
}
