package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// maxLabelWidth Ширина строки подписи в колонках
	maxLabelWidth = 16
	labelRadius   = 0.7
	lineSpacing   = 1.1
)

// WrapLabel разбивает подпись на строки по словам. Слово длиннее строки остаётся целым.
func WrapLabel(text string, maxWidth int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		if current == "" {
			current = word
			continue
		}
		candidate := current + " " + word
		if runewidth.StringWidth(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// FontSize размер шрифта подписи: мельче для многострочных
func FontSize(size float64, lines int) float64 {
	fs := size / 18
	if lines > 2 {
		fs *= 0.8
	}
	if lines > 3 {
		fs *= 0.7
	}
	return fs
}
