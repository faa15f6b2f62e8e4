package render

import (
	"math"
	"strconv"
	"strings"
)

// Point Точка в координатах SVG (ось Y направлена вниз)
type Point struct {
	X, Y float64
}

// PolarToCartesian угол отсчитывается от верхней точки по часовой стрелке
func PolarToCartesian(cx, cy, r, deg float64) Point {
	rad := (deg - 90) * math.Pi / 180
	return Point{
		X: cx + r*math.Cos(rad),
		Y: cy + r*math.Sin(rad),
	}
}

// SlicePath контур сектора круга радиуса r с центром в (r, r) от угла start до end
func SlicePath(r, start, end float64) string {
	from := PolarToCartesian(r, r, r, start)
	to := PolarToCartesian(r, r, r, end)

	largeArc := "0"
	if end-start > 180 {
		largeArc = "1"
	}

	// Полный круг одной дугой не рисуется: концы совпадают
	if end-start >= 360 {
		mid := PolarToCartesian(r, r, r, start+180)
		return strings.Join([]string{
			"M", num(from.X), num(from.Y),
			"A", num(r), num(r), "0", "1", "1", num(mid.X), num(mid.Y),
			"A", num(r), num(r), "0", "1", "1", num(from.X), num(from.Y),
			"Z",
		}, " ")
	}

	return strings.Join([]string{
		"M", num(r), num(r),
		"L", num(from.X), num(from.Y),
		"A", num(r), num(r), "0", largeArc, "1", num(to.X), num(to.Y),
		"Z",
	}, " ")
}

// num Число для атрибутов SVG: не больше трёх знаков после точки, без хвостовых нулей
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // убираем -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
