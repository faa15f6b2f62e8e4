package model

import "github.com/google/uuid"

// Announcement Состояние всплывающего окна с результатом
type Announcement struct {
	Open  bool
	Text  string
	Color string
}

// WheelSnapshot Всё, что нужно фронтенду для отрисовки колеса
type WheelSnapshot struct {
	Segments     []Segment
	State        SpinState
	Announcement Announcement
	Size         float64
}

// EventType Тип события, рассылаемого подписчикам
type EventType string

const (
	EventStarted   EventType = "started"
	EventFrame     EventType = "frame"
	EventSettled   EventType = "settled"
	EventAnnounce  EventType = "announce"
	EventCancelled EventType = "cancelled"
	EventSegments  EventType = "segments"
	EventDismissed EventType = "dismissed"
)

// Event Уведомление об изменении состояния колеса
type Event struct {
	Type     EventType
	SpinID   uuid.UUID
	Rotation float64
	Selected *int
}
