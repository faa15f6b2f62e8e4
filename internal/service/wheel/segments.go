package wheel

import (
	"context"
	"fmt"
	"spin_wheel/internal/model"
	"spin_wheel/pkg/random"
)

// SetLabel меняет подпись одного сектора. Во время вращения запрещено.
func (s *serv) SetLabel(ctx context.Context, index int, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.ctrl.State().Spinning() {
		return model.ErrSpinInProgress
	}

	segments := s.segRepo.Segments()
	if index < 0 || index >= len(segments) {
		return fmt.Errorf("set label %d of %d: %w", index, len(segments), model.ErrSegmentIndex)
	}
	segments[index].Text = text

	s.replaceLocked(segments)
	return nil
}

// ReplaceSegments заменяет все сектора. Если поменялось их число, результат прошлого спина сбрасывается.
func (s *serv) ReplaceSegments(ctx context.Context, segments []model.Segment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.ctrl.State().Spinning() {
		return model.ErrSpinInProgress
	}

	if len(segments) != s.segRepo.Count() {
		s.ctrl.ClearSelection()
		s.announcement = model.Announcement{}
	}
	s.replaceLocked(segments)
	return nil
}

// Randomize раздаёт секторам случайные подписи из встроенного списка
func (s *serv) Randomize(ctx context.Context) ([]model.Segment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.ctrl.State().Spinning() {
		return nil, model.ErrSpinInProgress
	}

	segments := s.segRepo.Segments()
	keywords := Shuffle(s.cfg.Keywords(), s.rng)
	if len(keywords) > 0 {
		for i := range segments {
			segments[i].Text = keywords[i%len(keywords)]
		}
	}

	s.replaceLocked(segments)
	return model.CloneSegments(segments), nil
}

func (s *serv) replaceLocked(segments []model.Segment) {
	s.segRepo.Replace(segments)
	s.hub.publish(model.Event{Type: model.EventSegments, Rotation: s.ctrl.State().Rotation})
}

// Shuffle перемешивание Фишера-Йетса, исходный срез не меняется
func Shuffle(items []string, rng random.Source) []string {
	out := append([]string(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
