package render

import (
	"spin_wheel/internal/model"
	"strconv"
)

const pageTitle = "Customize this Wheel and Rotate it!"

// Input Поле ввода подписи сектора
type Input struct {
	Index       int
	Text        string
	Placeholder string
}

// Page Данные для полной страницы
type Page struct {
	Title    string
	Wheel    Scene
	Dialog   Dialog
	Inputs   []Input
	Spinning bool
}

// NewPage собирает страницу из снимка состояния колеса
func NewPage(snap model.WheelSnapshot) Page {
	inputs := make([]Input, len(snap.Segments))
	for i, s := range snap.Segments {
		inputs[i] = Input{
			Index:       i,
			Text:        s.Text,
			Placeholder: "Segment " + strconv.Itoa(i+1),
		}
	}
	return Page{
		Title:    pageTitle,
		Wheel:    Wheel(snap.Segments, snap.Size, snap.State.Rotation, snap.State.Selected),
		Dialog:   Announcer(snap.Announcement),
		Inputs:   inputs,
		Spinning: snap.State.Spinning(),
	}
}
