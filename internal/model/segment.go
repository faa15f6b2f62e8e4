package model

// Segment Один сектор колеса: цвет заливки и подпись
type Segment struct {
	Color string
	Text  string
}

// CloneSegments возвращает независимую копию последовательности секторов
func CloneSegments(segments []Segment) []Segment {
	if segments == nil {
		return nil
	}
	out := make([]Segment, len(segments))
	copy(out, segments)
	return out
}
