package terminal

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const dimFactor = 0.55

var (
	styleText    = tcell.StyleDefault
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePointer = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHub     = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorWhite)
)

// segmentColor переводит #rrggbb в цвет терминала. Невыбранные сектора после остановки затемняются.
func segmentColor(hex string, dim bool) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorGray
	}
	if dim {
		c = c.BlendLab(colorful.Color{}, dimFactor).Clamped()
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// accentStyle стиль рамки окна результата
func accentStyle(hex string) tcell.Style {
	return tcell.StyleDefault.Foreground(segmentColor(hex, false)).Bold(true)
}
