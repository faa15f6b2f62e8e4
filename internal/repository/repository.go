package repository

import (
	"spin_wheel/internal/model"
)

type SegmentRepository interface {
	Segments() []model.Segment
	Count() int
	// Replace заменяет всю последовательность целиком
	Replace(segments []model.Segment)
}

type StatsRepository interface {
	Stats() model.SpinStats
	RecordSettled(rec model.SpinRecord)
	RecordCancelled()
}
