package render

import "spin_wheel/internal/model"

const (
	defaultAccent = "#2196f3"
	emptyResult   = "No text"
)

// Dialog Модальное окно с результатом
type Dialog struct {
	Open  bool
	Text  string
	Color string
}

// Announcer переводит состояние объявления в окно. Пустой текст и цвет заменяются значениями по умолчанию.
func Announcer(a model.Announcement) Dialog {
	d := Dialog{Open: a.Open, Text: a.Text, Color: a.Color}
	if d.Text == "" {
		d.Text = emptyResult
	}
	if d.Color == "" {
		d.Color = defaultAccent
	}
	return d
}
