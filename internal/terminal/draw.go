package terminal

import (
	"spin_wheel/internal/model"
	"spin_wheel/internal/render"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	title       = "Customize this Wheel and Rotate it!"
	help        = "[space] spin  [r] randomize  [c] cancel  [enter] close  [q] quit"
	pointer     = '▼'
	wheelTop    = 2
	wheelLeft   = 1
	minDiameter = 4
	legendWidth = 32
	dialogWidth = 40
)

func (u *UI) draw() {
	s := u.screen
	s.Clear()

	w, h := s.Size()
	snap := u.serv.Snapshot()

	putStr(s, 0, 0, title, styleText.Bold(true))

	if len(snap.Segments) == 0 {
		putStr(s, wheelLeft, wheelTop, "No segments to display", styleMuted)
	} else {
		u.drawWheel(snap, w, h)
	}

	u.drawStatus(snap, w, h)
	if snap.Announcement.Open {
		drawDialog(s, render.Announcer(snap.Announcement), w, h)
	}

	s.Show()
}

// layout диаметр колеса и колонка легенды (-1, если она не помещается)
func layout(w, h int) (diameter, legendX int) {
	rows := h - wheelTop - 2
	diameter = min(rows, (w-wheelLeft-legendWidth-2)/2)
	legendX = wheelLeft + diameter*2 + 2
	if diameter < minDiameter {
		diameter = min(rows, (w-wheelLeft)/2)
		legendX = -1
	}
	return diameter, legendX
}

func (u *UI) drawWheel(snap model.WheelSnapshot, w, h int) {
	s := u.screen
	diameter, legendX := layout(w, h)
	if diameter < minDiameter {
		putStr(s, wheelLeft, wheelTop, "window too small", styleError)
		return
	}

	selected := snap.State.Selected
	grid := Raster(len(snap.Segments), snap.State.Rotation, diameter)
	for row, cells := range grid {
		for col, idx := range cells {
			if idx == Outside {
				continue
			}
			dim := selected != nil && *selected != idx
			style := tcell.StyleDefault.Background(segmentColor(snap.Segments[idx].Color, dim))
			s.SetContent(wheelLeft+col, wheelTop+row, ' ', nil, style)
		}
	}

	center := wheelLeft + diameter
	s.SetContent(center, wheelTop-1, pointer, nil, stylePointer)
	s.SetContent(center-1, wheelTop+diameter/2, ' ', nil, styleHub)
	s.SetContent(center, wheelTop+diameter/2, ' ', nil, styleHub)

	if legendX >= 0 {
		drawLegend(s, snap, legendX)
	}
}

func drawLegend(s tcell.Screen, snap model.WheelSnapshot, x int) {
	selected := snap.State.Selected
	for i, seg := range snap.Segments {
		y := wheelTop + i
		marker := "  "
		if selected != nil && *selected == i {
			marker = "▶ "
		}
		next := putStr(s, x, y, marker, stylePointer)
		next = putStr(s, next, y, "■ ", tcell.StyleDefault.Foreground(segmentColor(seg.Color, false)))

		text, style := seg.Text, styleText
		if text == "" {
			text, style = "Segment "+strconv.Itoa(i+1), styleMuted
		}
		putStr(s, next, y, runewidth.Truncate(text, legendWidth-6, "…"), style)
	}
}

func (u *UI) drawStatus(snap model.WheelSnapshot, w, h int) {
	s := u.screen

	var status string
	switch snap.State.Phase {
	case model.PhaseSpinning:
		status = "Spinning..."
	case model.PhaseSettled:
		if sel := snap.State.Selected; sel != nil && *sel < len(snap.Segments) {
			text := snap.Segments[*sel].Text
			if text == "" {
				text = "Segment " + strconv.Itoa(*sel+1)
			}
			status = "Landed on " + text
		}
	default:
		status = "Ready"
	}
	next := putStr(s, 0, h-2, runewidth.Truncate(status, w, "…"), styleText)
	if u.message != "" {
		putStr(s, next+2, h-2, u.message, styleError)
	}
	putStr(s, 0, h-1, runewidth.Truncate(help, w, "…"), styleMuted)
}

func drawDialog(s tcell.Screen, d render.Dialog, w, h int) {
	width := min(dialogWidth, w)
	height := 7
	x0 := (w - width) / 2
	y0 := max((h-height)/2, 0)
	border := accentStyle(d.Color)

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			s.SetContent(x, y, ' ', nil, styleText)
		}
	}
	for x := x0 + 1; x < x0+width-1; x++ {
		s.SetContent(x, y0, '─', nil, border)
		s.SetContent(x, y0+height-1, '─', nil, border)
	}
	for y := y0 + 1; y < y0+height-1; y++ {
		s.SetContent(x0, y, '│', nil, border)
		s.SetContent(x0+width-1, y, '│', nil, border)
	}
	s.SetContent(x0, y0, '┌', nil, border)
	s.SetContent(x0+width-1, y0, '┐', nil, border)
	s.SetContent(x0, y0+height-1, '└', nil, border)
	s.SetContent(x0+width-1, y0+height-1, '┘', nil, border)

	inner := width - 4
	putCentered(s, x0, width, y0+1, "🎉 Result 🎉", border)
	putCentered(s, x0, width, y0+3, runewidth.Truncate(d.Text, inner, "…"), border)
	putCentered(s, x0, width, y0+5, "[enter] Close", styleMuted)
}

func putCentered(s tcell.Screen, x0, width, y int, text string, style tcell.Style) {
	putStr(s, x0+max((width-runewidth.StringWidth(text))/2, 0), y, text, style)
}

// putStr пишет строку с учётом ширины символов, возвращает колонку после неё
func putStr(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
