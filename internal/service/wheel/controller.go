package wheel

import (
	"spin_wheel/internal/model"
	"time"

	"github.com/google/uuid"
)

// Controller Конечный автомат вращения: Idle -> Spinning -> Settled -> Idle.
// Не потокобезопасен, время передаётся явно.
type Controller struct {
	phase    model.SpinPhase
	rotation float64
	spin     model.Spin
	selected int
}

// NewController контроллер в фазе Idle с заданным начальным поворотом
func NewController(rotation float64) *Controller {
	return &Controller{
		phase:    model.PhaseIdle,
		rotation: rotation,
	}
}

// Start запускает вращение к сектору target. Повторный запуск во время вращения игнорируется.
func (c *Controller) Start(id uuid.UUID, target model.SpinTarget, n int, now time.Time, duration time.Duration) (model.Spin, error) {
	if c.phase == model.PhaseSpinning {
		return model.Spin{}, model.ErrSpinInProgress
	}
	if n < 1 {
		return model.Spin{}, model.ErrNoSegments
	}
	if target.Index < 0 || target.Index >= n {
		return model.Spin{}, model.ErrSegmentIndex
	}

	c.spin = model.Spin{
		ID:         id,
		Target:     target,
		StartAngle: NormalizeAngle(c.rotation),
		EndAngle:   TerminalAngle(target, n),
		StartedAt:  now,
		Duration:   duration,
	}
	c.phase = model.PhaseSpinning
	c.selected = 0

	return c.spin, nil
}

// Step обрабатывает кадр спина id в момент now.
// Кадр чужого или уже завершённого спина помечается Stale и ничего не меняет.
func (c *Controller) Step(id uuid.UUID, now time.Time) model.StepResult {
	if c.phase != model.PhaseSpinning || id != c.spin.ID {
		return model.StepResult{Rotation: c.rotation, Stale: true}
	}

	t := Progress(now.Sub(c.spin.StartedAt), c.spin.Duration)
	if t >= 1 {
		// Фиксируем ровно конечный угол, без накопленной погрешности
		c.rotation = c.spin.EndAngle
		c.phase = model.PhaseSettled
		c.selected = c.spin.Target.Index
		return model.StepResult{Rotation: c.rotation, Done: true}
	}

	c.rotation = Lerp(c.spin.StartAngle, c.spin.EndAngle, EaseOutCubic(t))
	return model.StepResult{Rotation: c.rotation}
}

// Cancel останавливает текущий спин, поворот остаётся на последнем кадре
func (c *Controller) Cancel() (model.Spin, error) {
	if c.phase != model.PhaseSpinning {
		return model.Spin{}, model.ErrNoSpin
	}
	cancelled := c.spin
	c.phase = model.PhaseIdle
	c.spin = model.Spin{}
	return cancelled, nil
}

// ClearSelection сбрасывает результат: Settled -> Idle
func (c *Controller) ClearSelection() {
	if c.phase == model.PhaseSettled {
		c.phase = model.PhaseIdle
		c.selected = 0
	}
}

// State копия текущего состояния
func (c *Controller) State() model.SpinState {
	st := model.SpinState{
		Phase:    c.phase,
		Rotation: c.rotation,
	}
	if c.phase != model.PhaseIdle {
		st.Spin = c.spin
	}
	if c.phase == model.PhaseSettled {
		idx := c.selected
		st.Selected = &idx
	}
	return st
}
