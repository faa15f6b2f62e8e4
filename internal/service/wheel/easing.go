package wheel

import (
	"math"
	"time"
)

// EaseOutCubic 1-(1-t)^3: быстрый старт и плавное торможение
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Progress нормализованный прогресс анимации в [0, 1]
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	t := float64(elapsed) / float64(duration)
	return math.Min(math.Max(t, 0), 1)
}

// Lerp линейная интерполяция между from и to
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
