package wheel

import (
	"context"
	"spin_wheel/internal/config"
	"spin_wheel/internal/model"
	"spin_wheel/internal/repository"
	"spin_wheel/internal/service"
	"spin_wheel/pkg/random"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Deps struct {
	Cfg      config.WheelConfig
	Segments repository.SegmentRepository
	Stats    repository.StatsRepository
	RNG      random.Source
	Frames   FrameSource
	Now      func() time.Time
	Logger   *zap.Logger
	Metrics  *Metrics
}

type serv struct {
	cfg       config.WheelConfig
	segRepo   repository.SegmentRepository
	statsRepo repository.StatsRepository
	rng       random.Source
	frames    FrameSource
	now       func() time.Time
	logger    *zap.Logger
	metrics   *Metrics
	hub       *hub

	// mtx защищает всё ниже: контроллер и окно результата
	mtx          sync.Mutex
	ctrl         *Controller
	announcement model.Announcement
	stopDriver   context.CancelFunc
	drivers      sync.WaitGroup
	closed       bool
}

// NewWheelService Создать колесо. Незаданные зависимости заменяются рабочими значениями по умолчанию.
func NewWheelService(deps Deps) service.WheelService {
	s := &serv{
		cfg:       deps.Cfg,
		segRepo:   deps.Segments,
		statsRepo: deps.Stats,
		rng:       deps.RNG,
		frames:    deps.Frames,
		now:       deps.Now,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		hub:       newHub(),
		ctrl:      NewController(0),
	}
	if s.rng == nil {
		s.rng = random.Default()
	}
	if s.frames == nil {
		s.frames = NewTickerFrames(s.cfg.Spin().FrameInterval())
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	return s
}

func (s *serv) Snapshot() model.WheelSnapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return model.WheelSnapshot{
		Segments:     s.segRepo.Segments(),
		State:        s.ctrl.State(),
		Announcement: s.announcement,
		Size:         s.cfg.Size(),
	}
}

func (s *serv) Stats() model.SpinStats {
	return s.statsRepo.Stats()
}

func (s *serv) Subscribe() (<-chan model.Event, func()) {
	return s.hub.subscribe()
}

// Close останавливает анимацию и закрывает подписки. Новые спины после этого не запускаются.
func (s *serv) Close() {
	s.mtx.Lock()
	if s.closed {
		s.mtx.Unlock()
		return
	}
	s.closed = true
	if s.stopDriver != nil {
		s.stopDriver()
		s.stopDriver = nil
	}
	s.mtx.Unlock()

	s.drivers.Wait()
	s.hub.close()
}

func (s *serv) Dismiss(ctx context.Context) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if !s.announcement.Open {
		return
	}
	s.announcement.Open = false
	s.hub.publish(model.Event{Type: model.EventDismissed, SpinID: s.ctrl.State().Spin.ID})
}
