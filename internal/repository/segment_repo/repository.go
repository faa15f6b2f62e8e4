package segment_repo

import (
	"spin_wheel/internal/model"
	"spin_wheel/internal/repository"
	"sync"
)

// Хранилище секторов колеса в памяти
type repo struct {
	mtx      sync.RWMutex
	segments []model.Segment
}

func NewSegmentRepository(initial []model.Segment) repository.SegmentRepository {
	return &repo{
		segments: model.CloneSegments(initial),
	}
}

// Segments возвращает копию, чтобы вызывающий не мог изменить сектор на месте
func (r *repo) Segments() []model.Segment {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return model.CloneSegments(r.segments)
}

func (r *repo) Count() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.segments)
}

func (r *repo) Replace(segments []model.Segment) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.segments = model.CloneSegments(segments)
}
