package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	burstRays     = 12
	burstRayReach = 0.8
	burstCore     = 0.08
)

// Ray Луч салюта
type Ray struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
}

// Burst Один залп салюта в собственной системе координат size x size
type Burst struct {
	Size       float64
	Delay      float64
	X, Y       float64
	Center     float64
	CoreRadius float64
	Rays       []Ray
}

type burstSpec struct {
	size, delay, dx, dy float64
}

// Fireworks Фиксированная симметричная композиция: центральный залп и четыре зеркальные пары.
// Случайности нет, картинка всегда одинаковая.
func Fireworks(size float64) []Burst {
	centerX := size / 2
	base := []burstSpec{
		{size * 0.7, 0.1, size * 0.18, -size * 0.7},
		{size * 0.5, 0.2, size * 0.32, -size * 0.45},
		{size * 0.6, 0.3, size * 0.12, -size * 1.0},
		{size * 0.4, 0.4, size * 0.35, -size * 0.9},
	}

	bursts := make([]Burst, 0, 1+2*len(base))
	bursts = append(bursts, newBurst(size, 0, centerX, -size*0.7))
	for _, b := range base {
		bursts = append(bursts,
			newBurst(b.size, b.delay, centerX+b.dx, b.dy),
			newBurst(b.size, b.delay, centerX-b.dx, b.dy),
		)
	}
	return bursts
}

func newBurst(size, delay, x, y float64) Burst {
	c := size / 2
	rays := make([]Ray, burstRays)
	for i := range rays {
		angle := float64(i) * 360 / burstRays
		rad := angle * math.Pi / 180
		rays[i] = Ray{
			X1:     c,
			Y1:     c,
			X2:     c + math.Cos(rad)*c*burstRayReach,
			Y2:     c + math.Sin(rad)*c*burstRayReach,
			Stroke: rayColor(angle + delay*100),
		}
	}
	return Burst{
		Size:       size,
		Delay:      delay,
		X:          x,
		Y:          y,
		Center:     c,
		CoreRadius: size * burstCore,
		Rays:       rays,
	}
}

// rayColor hsl(hue, 90%, 60%) в виде #rrggbb
func rayColor(hue float64) string {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, 0.9, 0.6).Hex()
}
