package app

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	wheelAPI "spin_wheel/internal/api/wheel"
	"spin_wheel/internal/config"
	"spin_wheel/internal/config/env"
	"spin_wheel/internal/middleware"
	"spin_wheel/internal/render"
	"spin_wheel/internal/repository"
	"spin_wheel/internal/repository/segment_repo"
	"spin_wheel/internal/repository/stats_repo"
	"spin_wheel/internal/service"
	"spin_wheel/internal/service/wheel"
	"spin_wheel/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	appName        = "spin_wheel"
	wheelConfigYML = "config.yaml"
)

type ServiceProvider struct {
	// Logging
	logCfg    config.LogConfig
	logger    *zap.Logger
	noConsole bool

	// Metrics
	registry *prometheus.Registry

	// Wheel bits
	wheelCfg     config.WheelConfig
	segmentRepo  repository.SegmentRepository
	statsRepo    repository.StatsRepository
	wheelMetrics *wheel.Metrics
	wheelServ    service.WheelService
	renderer     *render.Renderer
	wheelHand    *wheelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(noConsole bool) *ServiceProvider {
	return &ServiceProvider{noConsole: noConsole}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		cfg := sp.LogCfg()
		sp.logger = logger.New(&logger.Config{
			Mode:      logger.ParseMode(cfg.Mode()),
			Level:     cfg.Level(),
			App:       appName,
			Dir:       cfg.Dir(),
			File:      cfg.File(),
			NoConsole: sp.noConsole,
		})
	}
	return sp.logger
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(wheelConfigYML)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			sp.Logger().Warn("wheel config not found, using defaults", zap.String("path", wheelConfigYML))
			cfg = env.DefaultWheelConfig()
		case err != nil:
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) SegmentRepository() repository.SegmentRepository {
	if sp.segmentRepo == nil {
		sp.segmentRepo = segment_repo.NewSegmentRepository(sp.WheelCfg().Segments())
	}
	return sp.segmentRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) WheelMetrics() *wheel.Metrics {
	if sp.wheelMetrics == nil {
		sp.wheelMetrics = wheel.NewMetrics(sp.Registry())
	}
	return sp.wheelMetrics
}

func (sp *ServiceProvider) WheelService() service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(wheel.Deps{
			Cfg:      sp.WheelCfg(),
			Segments: sp.SegmentRepository(),
			Stats:    sp.StatsRepository(),
			Logger:   sp.Logger().Named("wheel"),
			Metrics:  sp.WheelMetrics(),
		})
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) Renderer() *render.Renderer {
	if sp.renderer == nil {
		r, err := render.NewRenderer()
		if err != nil {
			panic("failed to create renderer: " + err.Error())
		}
		sp.renderer = r
	}
	return sp.renderer
}

func (sp *ServiceProvider) WheelHandler() *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv:     sp.WheelService(),
			Renderer: sp.Renderer(),
			Logger:   sp.Logger().Named("http"),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(middleware.Logging(sp.Logger().Named("http")))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Widget
		h := sp.WheelHandler()
		r.Get("/", h.Page)
		r.Get("/wheel.svg", h.Wheel)
		r.Get("/result", h.Result)

		// Wheel API
		r.Route("/api", func(rr chi.Router) {
			rr.Get("/state", h.State)
			rr.Get("/stats", h.Stats)
			rr.Get("/events", h.Events)

			rr.Put("/segments", h.ReplaceSegments)
			rr.Put("/segments/{index}", h.SetLabel)
			rr.Post("/segments/randomize", h.Randomize)

			rr.Post("/spin", h.Spin)
			rr.Post("/spin/restart", h.Respin)
			rr.Post("/spin/cancel", h.Cancel)

			rr.Post("/result/dismiss", h.Dismiss)
		})

		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("OK"))
		})

		sp.router = r
	}

	return sp.router
}
