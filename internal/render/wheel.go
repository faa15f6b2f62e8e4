package render

import (
	"fmt"
	"spin_wheel/internal/model"
)

const (
	borderInset  = 6
	borderWidth  = 6
	borderStroke = "#2196f3"
	hubRatio     = 0.05
	pointerW     = 0.08
	pointerH     = 0.07
)

// Slice Сектор колеса
type Slice struct {
	Index int
	Path  string
	Color string
}

// Label Подпись сектора, уже разбитая на строки
type Label struct {
	Lines      []string
	X, Y       float64
	Top        float64
	Angle      float64
	FontSize   float64
	LineHeight float64
}

// Pointer Неподвижная стрелка над колесом
type Pointer struct {
	Width, Height float64
	Left          float64
	Points        string
}

// Scene Всё, что нужно для отрисовки колеса. Строится чистой функцией Wheel.
type Scene struct {
	Empty    bool
	Size     float64
	Radius   float64
	Rotation float64
	Slices   []Slice
	Labels   []Label
	Pointer  Pointer
	BorderR  float64
	HubR     float64
	Selected *int
	Bursts   []Burst
}

// Wheel строит сцену колеса. Одинаковые аргументы всегда дают одинаковую сцену.
func Wheel(segments []model.Segment, size, rotation float64, selected *int) Scene {
	if len(segments) == 0 {
		return Scene{Empty: true, Size: size}
	}

	r := size / 2
	seg := 360 / float64(len(segments))

	scene := Scene{
		Size:     size,
		Radius:   r,
		Rotation: rotation,
		Slices:   make([]Slice, len(segments)),
		Labels:   make([]Label, len(segments)),
		Pointer:  newPointer(size),
		BorderR:  r - borderInset,
		HubR:     r * hubRatio,
	}

	for i, s := range segments {
		start := float64(i) * seg
		scene.Slices[i] = Slice{
			Index: i,
			Path:  SlicePath(r, start, start+seg),
			Color: s.Color,
		}
		scene.Labels[i] = newLabel(s.Text, size, r, start+seg/2)
	}

	if selected != nil {
		idx := *selected
		scene.Selected = &idx
		scene.Bursts = Fireworks(r)
	}

	return scene
}

func newLabel(text string, size, r, angle float64) Label {
	lines := WrapLabel(text, maxLabelWidth)
	fs := FontSize(size, len(lines))
	at := PolarToCartesian(r, r, r*labelRadius, angle)
	top := at.Y
	if len(lines) > 1 {
		top -= float64(len(lines)-1) * fs / 2
	}
	return Label{
		Lines:      lines,
		X:          at.X,
		Y:          at.Y,
		Top:        top,
		Angle:      angle,
		FontSize:   fs,
		LineHeight: fs * lineSpacing,
	}
}

func newPointer(size float64) Pointer {
	w := size * pointerW
	h := size * pointerH
	return Pointer{
		Width:  w,
		Height: h,
		Left:   size/2 - w/2,
		Points: fmt.Sprintf("0,0 %s,0 %s,%s", num(w), num(w/2), num(h)),
	}
}
