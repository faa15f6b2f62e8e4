package model

import (
	"time"

	"github.com/google/uuid"
)

// SpinPhase Фаза конечного автомата колеса
type SpinPhase int

const (
	PhaseIdle SpinPhase = iota
	PhaseSpinning
	PhaseSettled
)

func (p SpinPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// SpinTarget Результат выбора цели: сектор и число дополнительных оборотов
type SpinTarget struct {
	Index      int
	ExtraSpins int
}

// Spin Параметры одного запущенного вращения
type Spin struct {
	ID         uuid.UUID
	Target     SpinTarget
	StartAngle float64
	EndAngle   float64
	StartedAt  time.Time
	Duration   time.Duration
}

// SpinState Снимок состояния контроллера
type SpinState struct {
	Phase    SpinPhase
	Rotation float64
	Spin     Spin // заполнен в фазах Spinning и Settled
	Selected *int // только в фазе Settled
}

// Spinning true, если идёт анимация
func (s SpinState) Spinning() bool {
	return s.Phase == PhaseSpinning
}

// StepResult Результат обработки одного кадра
type StepResult struct {
	Rotation float64
	Done     bool
	Stale    bool // кадр от неактуального спина, состояние не менялось
}
