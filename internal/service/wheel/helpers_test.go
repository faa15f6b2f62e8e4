package wheel

import (
	"context"
	"spin_wheel/internal/config"
	"spin_wheel/internal/model"
	"testing"
	"time"
)

// sequenceRNG выдаёт значения из заранее заданных последовательностей по кругу
type sequenceRNG struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *sequenceRNG) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)] % n
	r.i++
	return v
}

func (r *sequenceRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

// manualFrames каждому спину свой канал кадров, тест получает его из next, а контекст источника из ctxs
type manualFrames struct {
	next chan chan time.Time
	ctxs chan context.Context
}

func newManualFrames() *manualFrames {
	return &manualFrames{
		next: make(chan chan time.Time, 8),
		ctxs: make(chan context.Context, 8),
	}
}

func (m *manualFrames) Frames(ctx context.Context) <-chan time.Time {
	ch := make(chan time.Time)
	m.ctxs <- ctx
	m.next <- ch
	return ch
}

func (m *manualFrames) takeCtx(t *testing.T) context.Context {
	t.Helper()
	select {
	case ctx := <-m.ctxs:
		return ctx
	case <-time.After(2 * time.Second):
		t.Fatal("driver did not request frames")
		return nil
	}
}

func (m *manualFrames) take(t *testing.T) chan time.Time {
	t.Helper()
	select {
	case ch := <-m.next:
		return ch
	case <-time.After(2 * time.Second):
		t.Fatal("driver did not request frames")
		return nil
	}
}

func sendFrame(t *testing.T, frames chan time.Time, now time.Time) {
	t.Helper()
	select {
	case frames <- now:
	case <-time.After(2 * time.Second):
		t.Fatal("frame was not consumed")
	}
}

func waitEvent(t *testing.T, events <-chan model.Event, typ model.EventType) model.Event {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("events closed while waiting for %s", typ)
			}
			if ev.Type == typ {
				return ev
			}
		case <-timeout:
			t.Fatalf("timeout waiting for %s", typ)
		}
	}
}

type testSpinConfig struct {
	minExtra, maxExtra int
	minDur, maxDur     time.Duration
	delay              time.Duration
}

func (c testSpinConfig) MinExtraSpins() int           { return c.minExtra }
func (c testSpinConfig) MaxExtraSpins() int           { return c.maxExtra }
func (c testSpinConfig) MinDuration() time.Duration   { return c.minDur }
func (c testSpinConfig) MaxDuration() time.Duration   { return c.maxDur }
func (c testSpinConfig) AnnounceDelay() time.Duration { return c.delay }
func (c testSpinConfig) FrameInterval() time.Duration { return time.Second / 60 }

type testWheelConfig struct {
	segments []model.Segment
	keywords []string
	spin     testSpinConfig
}

func (c testWheelConfig) Size() float64             { return 400 }
func (c testWheelConfig) Segments() []model.Segment { return model.CloneSegments(c.segments) }
func (c testWheelConfig) Keywords() []string        { return append([]string(nil), c.keywords...) }
func (c testWheelConfig) Spin() config.SpinConfig   { return c.spin }

func eightSegments() []model.Segment {
	colors := []string{"#e57373", "#64b5f6", "#81c784", "#ffd54f", "#ba68c8", "#ffb74d", "#4db6ac", "#a1887f"}
	out := make([]model.Segment, len(colors))
	for i, c := range colors {
		out[i] = model.Segment{Color: c, Text: "segment " + string(rune('A'+i))}
	}
	return out
}

func newTestConfig() testWheelConfig {
	return testWheelConfig{
		segments: eightSegments(),
		keywords: []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10"},
		spin: testSpinConfig{
			minExtra: 5,
			maxExtra: 9,
			minDur:   time.Second,
			maxDur:   5 * time.Second,
		},
	}
}
