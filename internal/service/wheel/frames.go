package wheel

import (
	"context"
	"time"
)

// FrameSource Источник кадров анимации: платформа решает, как часто вызывать шаг
type FrameSource interface {
	Frames(ctx context.Context) <-chan time.Time
}

type tickerFrames struct {
	interval time.Duration
}

// NewTickerFrames кадры по таймеру с заданным интервалом
func NewTickerFrames(interval time.Duration) FrameSource {
	return tickerFrames{interval: interval}
}

func (f tickerFrames) Frames(ctx context.Context) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		t := time.NewTicker(f.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				select {
				case out <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
