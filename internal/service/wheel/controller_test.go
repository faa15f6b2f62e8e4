package wheel

import (
	"errors"
	"math"
	"spin_wheel/internal/model"
	"testing"
	"time"

	"github.com/google/uuid"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestController_SpinToSegmentThree(t *testing.T) {
	c := NewController(0)
	target := model.SpinTarget{Index: 3, ExtraSpins: 7}
	id := uuid.New()

	spin, err := c.Start(id, target, 8, t0, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spin.EndAngle != 360*7+202.5 {
		t.Fatalf("end angle: got %v", spin.EndAngle)
	}
	if c.State().Phase != model.PhaseSpinning {
		t.Fatalf("phase: got %s", c.State().Phase)
	}

	half := c.Step(id, t0.Add(time.Second))
	if half.Done || half.Stale {
		t.Fatalf("unexpected step result: %+v", half)
	}
	if want := spin.EndAngle * 0.875; math.Abs(half.Rotation-want) > 1e-9 {
		t.Errorf("rotation at t=0.5: got %v, want %v", half.Rotation, want)
	}

	done := c.Step(id, t0.Add(2*time.Second+time.Millisecond))
	if !done.Done {
		t.Fatalf("expected spin to settle: %+v", done)
	}
	if done.Rotation != spin.EndAngle {
		t.Errorf("settled rotation must be pinned to the terminal angle: got %v", done.Rotation)
	}

	st := c.State()
	if st.Phase != model.PhaseSettled || st.Selected == nil || *st.Selected != 3 {
		t.Fatalf("unexpected settled state: %+v", st)
	}
	under, _ := SegmentAt(st.Rotation, 8)
	if under != *st.Selected {
		t.Errorf("pointer is over %d, selected %d", under, *st.Selected)
	}
}

func TestController_RotationIsMonotonic(t *testing.T) {
	c := NewController(0)
	id := uuid.New()
	if _, err := c.Start(id, model.SpinTarget{Index: 5, ExtraSpins: 5}, 12, t0, 3*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := -1.0
	for ms := 0; ms <= 3000; ms += 16 {
		res := c.Step(id, t0.Add(time.Duration(ms)*time.Millisecond))
		if res.Rotation < prev {
			t.Fatalf("rotation went backwards at %dms", ms)
		}
		prev = res.Rotation
	}
}

func TestController_TriggerWhileSpinningIsIgnored(t *testing.T) {
	target := model.SpinTarget{Index: 2, ExtraSpins: 6}
	idA := uuid.New()

	reference := NewController(0)
	if _, err := reference.Start(idA, target, 8, t0, 4*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := NewController(0)
	if _, err := c.Start(idA, target, 8, t0, 4*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Step(idA, t0.Add(time.Second))

	_, err := c.Start(uuid.New(), model.SpinTarget{Index: 7, ExtraSpins: 9}, 8, t0.Add(time.Second), time.Second)
	if !errors.Is(err, model.ErrSpinInProgress) {
		t.Fatalf("expected ErrSpinInProgress, got %v", err)
	}

	for ms := 1000; ms <= 4000; ms += 250 {
		now := t0.Add(time.Duration(ms) * time.Millisecond)
		got, want := c.Step(idA, now), reference.Step(idA, now)
		if got != want {
			t.Fatalf("trajectory diverged at %dms: got %+v, want %+v", ms, got, want)
		}
	}
	if sel := c.State().Selected; sel == nil || *sel != 2 {
		t.Fatalf("expected original target to win, got %v", sel)
	}
}

func TestController_NewSpinSupersedesStaleFrames(t *testing.T) {
	c := NewController(0)
	idA, idB := uuid.New(), uuid.New()

	if _, err := c.Start(idA, model.SpinTarget{Index: 1, ExtraSpins: 5}, 8, t0, 4*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mid := c.Step(idA, t0.Add(time.Second)).Rotation

	if _, err := c.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if c.State().Phase != model.PhaseIdle {
		t.Fatalf("phase after cancel: %s", c.State().Phase)
	}

	t1 := t0.Add(time.Second)
	spinB, err := c.Start(idB, model.SpinTarget{Index: 6, ExtraSpins: 8}, 8, t1, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spinB.StartAngle != NormalizeAngle(mid) {
		t.Errorf("new spin must start from the current angle: got %v, want %v", spinB.StartAngle, NormalizeAngle(mid))
	}

	before := c.State().Rotation
	for _, d := range []time.Duration{time.Second, 3 * time.Second, 10 * time.Second} {
		res := c.Step(idA, t0.Add(d))
		if !res.Stale {
			t.Fatalf("frame of the superseded spin must be stale")
		}
		if c.State().Rotation != before {
			t.Fatalf("stale frame changed rotation")
		}
	}
	if c.State().Phase != model.PhaseSpinning || c.State().Spin.ID != idB {
		t.Fatalf("stale frame disturbed the live spin: %+v", c.State())
	}

	done := c.Step(idB, t1.Add(2*time.Second))
	if !done.Done || *c.State().Selected != 6 {
		t.Fatalf("live spin did not settle on its own target: %+v", c.State())
	}
}

func TestController_StepAfterSettleIsStale(t *testing.T) {
	c := NewController(0)
	id := uuid.New()
	if _, err := c.Start(id, model.SpinTarget{Index: 0, ExtraSpins: 5}, 4, t0, time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Step(id, t0.Add(time.Second))

	res := c.Step(id, t0.Add(2*time.Second))
	if !res.Stale || res.Done {
		t.Fatalf("expected stale result after settle, got %+v", res)
	}
}

func TestController_StartFromSettledClearsSelection(t *testing.T) {
	c := NewController(0)
	idA := uuid.New()
	spinA, _ := c.Start(idA, model.SpinTarget{Index: 1, ExtraSpins: 5}, 4, t0, time.Second)
	c.Step(idA, t0.Add(time.Second))

	spinB, err := c.Start(uuid.New(), model.SpinTarget{Index: 2, ExtraSpins: 5}, 4, t0.Add(2*time.Second), time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.State().Selected != nil {
		t.Error("selection must be cleared when a new spin starts")
	}
	if spinB.StartAngle != NormalizeAngle(spinA.EndAngle) {
		t.Errorf("start angle: got %v, want %v", spinB.StartAngle, NormalizeAngle(spinA.EndAngle))
	}
	// Поворот не нормализуется между спинами
	if c.State().Rotation != spinA.EndAngle {
		t.Errorf("rotation must accumulate, got %v", c.State().Rotation)
	}
}

func TestController_Errors(t *testing.T) {
	c := NewController(0)

	if _, err := c.Cancel(); !errors.Is(err, model.ErrNoSpin) {
		t.Errorf("cancel while idle: got %v", err)
	}
	if _, err := c.Start(uuid.New(), model.SpinTarget{}, 0, t0, time.Second); !errors.Is(err, model.ErrNoSegments) {
		t.Errorf("start without segments: got %v", err)
	}
	if _, err := c.Start(uuid.New(), model.SpinTarget{Index: 4}, 4, t0, time.Second); !errors.Is(err, model.ErrSegmentIndex) {
		t.Errorf("start with bad index: got %v", err)
	}
	if c.State().Phase != model.PhaseIdle {
		t.Errorf("failed starts must leave controller idle")
	}
}

func TestController_ClearSelection(t *testing.T) {
	c := NewController(0)
	id := uuid.New()
	c.Start(id, model.SpinTarget{Index: 1, ExtraSpins: 5}, 4, t0, time.Second)
	c.Step(id, t0.Add(time.Second))

	c.ClearSelection()
	st := c.State()
	if st.Phase != model.PhaseIdle || st.Selected != nil {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.Rotation == 0 {
		t.Error("clearing selection must keep rotation")
	}
}
