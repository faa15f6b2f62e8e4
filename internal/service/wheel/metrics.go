package wheel

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const labelSegment = "segment"

// Metrics Счётчики вращений колеса
type Metrics struct {
	spinsStarted   prometheus.Counter
	spinsSettled   prometheus.Counter
	spinsCancelled prometheus.Counter
	frames         prometheus.Counter
	spinDuration   prometheus.Histogram
	segmentHits    *prometheus.CounterVec
}

// NewMetrics регистрирует метрики в reg; nil означает отдельный реестр, который никто не читает
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		spinsStarted:   f.NewCounter(prometheus.CounterOpts{Name: "wheel_spins_started_total", Help: "Запущено вращений"}),
		spinsSettled:   f.NewCounter(prometheus.CounterOpts{Name: "wheel_spins_settled_total", Help: "Завершено вращений"}),
		spinsCancelled: f.NewCounter(prometheus.CounterOpts{Name: "wheel_spins_cancelled_total", Help: "Прервано вращений"}),
		frames:         f.NewCounter(prometheus.CounterOpts{Name: "wheel_frames_total", Help: "Обработано кадров анимации"}),
		spinDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wheel_spin_duration_seconds",
			Help:    "Запланированная длительность вращения",
			Buckets: []float64{1, 2, 3, 4, 5},
		}),
		segmentHits: f.NewCounterVec(prometheus.CounterOpts{Name: "wheel_segment_hits_total", Help: "Выпадения по секторам"}, []string{labelSegment}),
	}
}

func (m *Metrics) segment(idx int) prometheus.Counter {
	return m.segmentHits.WithLabelValues(strconv.Itoa(idx))
}
