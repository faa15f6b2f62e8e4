package wheel

import "time"

type Segment struct {
	Color string `json:"color"` // Цвет заливки, #rrggbb
	Text  string `json:"text"`  // Подпись, может быть пустой
}

type ReplaceSegmentsRequest struct {
	Segments []Segment `json:"segments"`
}

type SetLabelRequest struct {
	Text string `json:"text"`
}

type SegmentsResponse struct {
	Segments []Segment `json:"segments"`
}

type Announcement struct {
	Open  bool   `json:"open"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type StateResponse struct {
	Segments     []Segment    `json:"segments"`
	Phase        string       `json:"phase"`              // idle | spinning | settled
	Rotation     float64      `json:"rotation"`           // Градусы, без нормализации
	Selected     *int         `json:"selected,omitempty"` // Только после остановки
	SpinID       string       `json:"spin_id,omitempty"`
	Announcement Announcement `json:"announcement"`
	Size         float64      `json:"size"`
}

type SpinResponse struct {
	SpinID     string  `json:"spin_id"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	DurationMs int64   `json:"duration_ms"`
}

type SpinRecord struct {
	SpinID     string    `json:"spin_id"`
	Index      int       `json:"index"`
	Text       string    `json:"text"`
	Rotation   float64   `json:"rotation"`
	DurationMs int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

type StatsResponse struct {
	TotalSpins     int          `json:"total_spins"`
	CancelledSpins int          `json:"cancelled_spins"`
	Hits           map[int]int  `json:"hits"` // Индекс сектора -> число попаданий
	Recent         []SpinRecord `json:"recent"`
}

type Event struct {
	Type     string  `json:"type"`
	SpinID   string  `json:"spin_id,omitempty"`
	Rotation float64 `json:"rotation"`
	Selected *int    `json:"selected,omitempty"`
}
