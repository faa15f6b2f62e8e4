package wheel

import (
	"context"
	"fmt"
	"spin_wheel/internal/model"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spin запускает вращение, если колесо не крутится
func (s *serv) Spin(ctx context.Context) (model.Spin, error) {
	if err := ctx.Err(); err != nil {
		return model.Spin{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.startLocked()
}

// Respin прерывает текущее вращение и запускает новое. Кадры старого вращения больше ничего не меняют.
func (s *serv) Respin(ctx context.Context) (model.Spin, error) {
	if err := ctx.Err(); err != nil {
		return model.Spin{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.ctrl.State().Spinning() {
		if err := s.cancelLocked(); err != nil {
			return model.Spin{}, err
		}
	}
	return s.startLocked()
}

// Cancel останавливает текущее вращение
func (s *serv) Cancel(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.cancelLocked()
}

func (s *serv) startLocked() (model.Spin, error) {
	if s.closed {
		return model.Spin{}, model.ErrClosed
	}
	n := s.segRepo.Count()
	if n == 0 {
		return model.Spin{}, model.ErrNoSegments
	}
	if s.ctrl.State().Spinning() {
		return model.Spin{}, model.ErrSpinInProgress
	}

	spinCfg := s.cfg.Spin()
	target, err := PickTarget(n, spinCfg.MinExtraSpins(), spinCfg.MaxExtraSpins(), s.rng)
	if err != nil {
		return model.Spin{}, fmt.Errorf("pick target: %w", err)
	}

	spin, err := s.ctrl.Start(uuid.New(), target, n, s.now(), s.drawDuration())
	if err != nil {
		return model.Spin{}, fmt.Errorf("start spin: %w", err)
	}

	// Прошлый драйвер мог ещё ждать показа результата
	if s.stopDriver != nil {
		s.stopDriver()
	}
	runCtx, cancel := context.WithCancel(context.Background())
	s.stopDriver = cancel
	s.announcement = model.Announcement{}

	s.drivers.Add(1)
	go s.drive(runCtx, spin.ID)

	s.hub.publish(model.Event{Type: model.EventStarted, SpinID: spin.ID, Rotation: s.ctrl.State().Rotation})

	s.metrics.spinsStarted.Inc()
	s.metrics.spinDuration.Observe(spin.Duration.Seconds())
	s.logger.Info("spin started",
		zap.String("spin_id", spin.ID.String()),
		zap.Int("target", target.Index),
		zap.Int("extra_spins", target.ExtraSpins),
		zap.Float64("start_angle", spin.StartAngle),
		zap.Float64("end_angle", spin.EndAngle),
		zap.Duration("duration", spin.Duration),
	)

	return spin, nil
}

func (s *serv) cancelLocked() error {
	spin, err := s.ctrl.Cancel()
	if err != nil {
		return err
	}
	if s.stopDriver != nil {
		s.stopDriver()
		s.stopDriver = nil
	}

	s.statsRepo.RecordCancelled()
	s.metrics.spinsCancelled.Inc()
	s.logger.Info("spin cancelled", zap.String("spin_id", spin.ID.String()))

	s.hub.publish(model.Event{Type: model.EventCancelled, SpinID: spin.ID, Rotation: s.ctrl.State().Rotation})
	return nil
}

// drawDuration длительность вращения, равномерно из [min, max]
func (s *serv) drawDuration() time.Duration {
	spinCfg := s.cfg.Spin()
	span := spinCfg.MaxDuration() - spinCfg.MinDuration()
	return spinCfg.MinDuration() + time.Duration(s.rng.Float64()*float64(span))
}

// drive Цикл анимации одного спина: шаг на каждый кадр, затем пауза и показ результата
func (s *serv) drive(ctx context.Context, id uuid.UUID) {
	defer s.drivers.Done()

	// Источник кадров живёт только до остановки колеса
	frameCtx, stopFrames := context.WithCancel(ctx)
	defer stopFrames()

	frames := s.frames.Frames(frameCtx)
loop:
	for {
		select {
		case <-ctx.Done():
			return
		case now, ok := <-frames:
			if !ok {
				return
			}
			res := s.advance(id, now)
			if res.Stale {
				return
			}
			if res.Done {
				break loop
			}
		}
	}
	stopFrames()

	timer := time.NewTimer(s.cfg.Spin().AnnounceDelay())
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
		s.announce(id)
	}
}

func (s *serv) advance(id uuid.UUID, now time.Time) model.StepResult {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	res := s.ctrl.Step(id, now)
	if res.Stale {
		return res
	}
	s.metrics.frames.Inc()

	if !res.Done {
		s.hub.publish(model.Event{Type: model.EventFrame, SpinID: id, Rotation: res.Rotation})
		return res
	}

	st := s.ctrl.State()
	idx := *st.Selected
	segments := s.segRepo.Segments()

	rec := model.SpinRecord{
		SpinID:   id,
		Index:    idx,
		Rotation: res.Rotation,
		Duration: st.Spin.Duration,
		At:       now,
	}
	if idx < len(segments) {
		rec.Text = segments[idx].Text
	}
	s.statsRepo.RecordSettled(rec)

	s.metrics.spinsSettled.Inc()
	s.metrics.segment(idx).Inc()
	s.logger.Info("spin settled",
		zap.String("spin_id", id.String()),
		zap.Int("index", idx),
		zap.String("text", rec.Text),
		zap.Float64("rotation", res.Rotation),
	)

	s.hub.publish(model.Event{Type: model.EventSettled, SpinID: id, Rotation: res.Rotation, Selected: st.Selected})
	return res
}

// announce Показ результата, если спин id всё ещё последний завершённый
func (s *serv) announce(id uuid.UUID) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	st := s.ctrl.State()
	if st.Phase != model.PhaseSettled || st.Spin.ID != id {
		return
	}

	segments := s.segRepo.Segments()
	idx := *st.Selected
	if idx >= len(segments) {
		return
	}

	s.announcement = model.Announcement{
		Open:  true,
		Text:  segments[idx].Text,
		Color: segments[idx].Color,
	}
	s.hub.publish(model.Event{Type: model.EventAnnounce, SpinID: id, Rotation: st.Rotation, Selected: st.Selected})
}
