package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

type server struct {
	cfg     Config
	log     *slog.Logger
	store   *Store
	relay   *Relay
	admin   *adminAuth
	tracker *visitorTracker
	metrics *Metrics
}

func newServer(cfg Config, logger *slog.Logger, store *Store, mailer Mailer) (*server, error) {
	admin, err := newAdminAuth(cfg)
	if err != nil {
		return nil, err
	}
	metrics := newMetrics()
	return &server{
		cfg:     cfg,
		log:     logger,
		store:   store,
		relay:   newRelay(cfg, mailer),
		admin:   admin,
		metrics: metrics,
		tracker: &visitorTracker{
			store:   store,
			auth:    admin,
			metrics: metrics,
			logger:  logger,
			now:     time.Now,
		},
	}, nil
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log), securityHeaders(), s.tracker.middleware())
	r.SetHTMLTemplate(loadTemplates())

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	s.setupPageRoutes(r)
	s.setupAdminRoutes(r)

	r.POST("/api/contact", contactHandler(s.relay, s.metrics, s.log))

	r.NoRoute(s.notFound)
	return r
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	gin.SetMode(cfg.GinMode)
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	var mailer Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = newSendgridMailer(cfg.SendGridAPIKey, cfg.SendGridHost, cfg.ProviderTimeout)
	} else {
		logger.Warn("SENDGRID_API_KEY is not set; contact submissions will fail")
	}

	srv, err := newServer(cfg, logger, store, mailer)
	if err != nil {
		return err
	}
	if !cfg.adminEnabled() {
		logger.Warn("admin login disabled; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	defer srv.tracker.Wait()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return runRetention(gctx, store, cfg.VisitorRetention, logger)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
