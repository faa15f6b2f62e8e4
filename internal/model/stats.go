package model

import (
	"time"

	"github.com/google/uuid"
)

// SpinRecord Итог одного завершённого спина
type SpinRecord struct {
	SpinID   uuid.UUID
	Index    int
	Text     string
	Rotation float64
	Duration time.Duration
	At       time.Time
}

// SpinStats Накопленная статистика по спинам
type SpinStats struct {
	TotalSpins     int
	CancelledSpins int
	Hits           map[int]int
	Recent         []SpinRecord
}
