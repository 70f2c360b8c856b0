package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dev-9820/eventease-frontend/internal/api"
	"github.com/dev-9820/eventease-frontend/internal/config"
	"github.com/dev-9820/eventease-frontend/internal/handler"
	"github.com/dev-9820/eventease-frontend/internal/middleware"
	"github.com/dev-9820/eventease-frontend/internal/notification"
	"github.com/dev-9820/eventease-frontend/internal/router"
	"github.com/dev-9820/eventease-frontend/internal/session"
	"github.com/dev-9820/eventease-frontend/internal/view"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type App struct {
	cfg           *config.Config
	log           logger.Logger
	client        *api.Client
	store         *session.Store
	notifications *notification.Channel
	httpServer    *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventEase",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	if err = app.probeAPI(); err != nil {
		return nil, fmt.Errorf("probe api: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	file := session.NewFile(a.cfg.Session.Path)
	a.client = api.New(a.cfg.API.BaseURL, file, a.cfg.API.Timeout, a.log)
	a.store = session.NewStore(file, a.client, a.log)

	telegram, err := notification.NewTelegramSink(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init telegram sink: %w", err)
	}
	a.notifications = notification.NewChannel(a.cfg.Notify.TTL, a.log, telegram)

	events := view.NewEventList(a.client, a.notifications, a.log)
	detail := view.NewEventDetail(a.client, a.client, a.notifications, a.store, a.log)
	myBookings := view.NewMyBookings(a.client, a.notifications, a.log)
	admin := view.NewAdminEvents(a.client, a.notifications, a.log)
	calendar := view.NewCalendar(a.client, a.store, a.notifications, a.log)

	h := handler.NewHandler(a.store, events, detail, myBookings, admin, calendar, a.notifications)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		a.store,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// probeAPI checks the remote API is reachable before the shell starts
// serving, retrying transient failures.
func (a *App) probeAPI() error {
	strategy := retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.API.Timeout)
	defer cancel()

	err := retry.Do(func() error {
		return a.client.Ping(ctx)
	}, strategy)
	if err != nil {
		return fmt.Errorf("remote api unreachable at %s: %w", a.cfg.API.BaseURL, err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "remote api reachable",
		logger.String("base_url", a.cfg.API.BaseURL),
	)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.store.Restore()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.notifications.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "notification channel closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
