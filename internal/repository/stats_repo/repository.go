package stats_repo

import (
	"spin_wheel/internal/model"
	"sync"
)

const (
	// windowSize Сколько последних результатов хранить
	windowSize = 20
)

// StatsRepo Статистика спинов в памяти процесса
type StatsRepo struct {
	mtx   sync.RWMutex
	stats model.SpinStats
}

func NewStatsRepository() *StatsRepo {
	return &StatsRepo{
		stats: model.SpinStats{
			Hits:   make(map[int]int),
			Recent: make([]model.SpinRecord, 0, windowSize),
		},
	}
}

// Stats Возвращает копию статистики
func (r *StatsRepo) Stats() model.SpinStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := model.SpinStats{
		TotalSpins:     r.stats.TotalSpins,
		CancelledSpins: r.stats.CancelledSpins,
		Hits:           make(map[int]int, len(r.stats.Hits)),
		Recent:         append([]model.SpinRecord(nil), r.stats.Recent...),
	}
	for k, v := range r.stats.Hits {
		out.Hits[k] = v
	}
	return out
}

// RecordSettled Учёт завершённого спина, окно сдвигается при переполнении
func (r *StatsRepo) RecordSettled(rec model.SpinRecord) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.stats.TotalSpins++
	r.stats.Hits[rec.Index]++

	r.stats.Recent = append(r.stats.Recent, rec)
	if len(r.stats.Recent) > windowSize {
		r.stats.Recent = r.stats.Recent[len(r.stats.Recent)-windowSize:]
	}
}

func (r *StatsRepo) RecordCancelled() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.stats.CancelledSpins++
}
