package wheel

import (
	"math"
	"spin_wheel/internal/model"
	"spin_wheel/pkg/random"
)

// PickTarget выбирает сектор равновероятно и число дополнительных оборотов в [minExtra, maxExtra]
func PickTarget(n, minExtra, maxExtra int, rng random.Source) (model.SpinTarget, error) {
	if n < 1 {
		return model.SpinTarget{}, model.ErrNoSegments
	}
	return model.SpinTarget{
		Index:      rng.IntN(n),
		ExtraSpins: minExtra + rng.IntN(maxExtra-minExtra+1),
	}, nil
}

// TerminalAngle конечный угол, при котором центр сектора index оказывается под указателем
func TerminalAngle(target model.SpinTarget, n int) float64 {
	seg := 360 / float64(n)
	offset := seg / 2
	return 360*float64(target.ExtraSpins) + (360 - (float64(target.Index)*seg + offset))
}

// SegmentAt индекс сектора под указателем при данном повороте колеса.
// Указатель неподвижен сверху, колесо повёрнуто по часовой стрелке на rotation градусов.
func SegmentAt(rotation float64, n int) (int, error) {
	if n < 1 {
		return 0, model.ErrNoSegments
	}
	seg := 360 / float64(n)
	under := NormalizeAngle(-rotation)
	idx := int(math.Floor(under / seg))
	if idx >= n {
		idx = n - 1
	}
	return idx, nil
}

// NormalizeAngle приводит угол к [0, 360)
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
