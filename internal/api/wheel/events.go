package wheel

import (
	"fmt"
	"net/http"
	"spin_wheel/internal/converter"
	"spin_wheel/pkg/resp"
	"time"

	"go.uber.org/zap"
)

const keepAliveInterval = 15 * time.Second

// Events поток server-sent events с изменениями колеса
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		resp.WriteError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	events, unsubscribe := h.serv.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := resp.Marshal(converter.ToEvent(ev))
			if err != nil {
				h.logger.Warn("encode event", zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
