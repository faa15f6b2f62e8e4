package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"spin_wheel/internal/config"
	"spin_wheel/internal/terminal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type App struct {
	ServiceProvider *ServiceProvider
	terminal        bool
}

// NewApp HTTP сервер с виджетом
func NewApp() *App {
	return &App{}
}

// NewTerminalApp то же колесо в терминале
func NewTerminalApp() *App {
	return &App{terminal: true}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.terminal)
}

func (s *App) Run() error {
	envErr := config.Load(".env")
	s.initServiceProvider()

	logger := s.ServiceProvider.Logger()
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Info("env file not loaded, using process environment", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.terminal {
		return s.runTerminal(ctx)
	}
	return s.runHTTP(ctx)
}

func (s *App) runHTTP(ctx context.Context) error {
	sp := s.ServiceProvider
	logger := sp.Logger()

	srv := &http.Server{
		Addr:              sp.HTTPCfg().Address(),
		Handler:           sp.Router(ctx),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		// Закрытие сервиса завершает потоки /api/events, иначе Shutdown будет их ждать
		sp.WheelService().Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *App) runTerminal(ctx context.Context) error {
	sp := s.ServiceProvider

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	serv := sp.WheelService()
	defer serv.Close()

	ui := terminal.New(terminal.Deps{
		Serv:   serv,
		Screen: screen,
		Logger: sp.Logger().Named("tui"),
	})
	return ui.Run(ctx)
}
