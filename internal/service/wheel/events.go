package wheel

import (
	"spin_wheel/internal/model"
	"sync"
)

const subscriberBuffer = 64

// hub Рассылка событий подписчикам. Медленный подписчик теряет события, а не тормозит анимацию.
type hub struct {
	mtx    sync.Mutex
	nextID uint64
	subs   map[uint64]chan model.Event
	closed bool
}

func newHub() *hub {
	return &hub{subs: make(map[uint64]chan model.Event)}
}

func (h *hub) subscribe() (<-chan model.Event, func()) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	ch := make(chan model.Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mtx.Lock()
			defer h.mtx.Unlock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}
}

func (h *hub) publish(ev model.Event) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (h *hub) close() {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
