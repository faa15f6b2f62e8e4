package terminal

import "math"

// Outside Значение клетки за пределами круга
const Outside = -1

// Raster раскладывает колесо по клеткам терминала. Клетка вдвое выше своей ширины,
// поэтому сетка имеет diameter строк и 2*diameter колонок.
// Каждая клетка содержит индекс сектора или Outside.
func Raster(segments int, rotation float64, diameter int) [][]int {
	if diameter <= 0 {
		return nil
	}

	cols := diameter * 2
	grid := make([][]int, diameter)
	for row := range grid {
		grid[row] = make([]int, cols)
		for col := range grid[row] {
			grid[row][col] = cellSegment(segments, rotation, diameter, row, col)
		}
	}
	return grid
}

func cellSegment(segments int, rotation float64, diameter, row, col int) int {
	if segments <= 0 {
		return Outside
	}

	r := float64(diameter) / 2
	x := (float64(col) + 0.5 - float64(diameter)) / 2
	y := float64(row) + 0.5 - r
	if x*x+y*y > r*r {
		return Outside
	}

	// Угол от верхней точки по часовой стрелке, в системе координат колеса
	deg := math.Atan2(x, -y) * 180 / math.Pi
	deg = math.Mod(deg-rotation, 360)
	if deg < 0 {
		deg += 360
	}

	idx := int(deg / (360 / float64(segments)))
	if idx >= segments {
		idx = segments - 1
	}
	return idx
}
