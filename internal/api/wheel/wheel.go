package wheel

import (
	"errors"
	"math"
	"net/http"
	dto "spin_wheel/internal/api/dto/wheel"
	"spin_wheel/internal/converter"
	"spin_wheel/internal/model"
	"spin_wheel/internal/render"
	"spin_wheel/internal/service"
	"spin_wheel/pkg/req"
	"spin_wheel/pkg/resp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxWheelSize = 2000

type HandlerDeps struct {
	Serv     service.WheelService
	Renderer *render.Renderer
	Logger   *zap.Logger
}

type Handler struct {
	serv     service.WheelService
	renderer *render.Renderer
	logger   *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, renderer: deps.Renderer, logger: logger}
}

// Page отдаёт страницу целиком
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	page := render.NewPage(h.serv.Snapshot())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Page(w, page); err != nil {
		h.logger.Error("render page", zap.Error(err))
	}
}

// Wheel отдаёт разметку колеса; ?size= переопределяет размер
func (h *Handler) Wheel(w http.ResponseWriter, r *http.Request) {
	snap := h.serv.Snapshot()

	size := snap.Size
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > maxWheelSize {
			resp.WriteError(w, http.StatusBadRequest, "size must be a number in (0, 2000]")
			return
		}
		size = v
	}

	scene := render.Wheel(snap.Segments, size, snap.State.Rotation, snap.State.Selected)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Wheel(w, scene); err != nil {
		h.logger.Error("render wheel", zap.Error(err))
	}
}

// Result отдаёт окно с результатом (пустое, если оно закрыто)
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	dialog := render.Announcer(h.serv.Snapshot().Announcement)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Announcer(w, dialog); err != nil {
		h.logger.Error("render announcer", zap.Error(err))
	}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.Snapshot()))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// ReplaceSegments заменяет все сектора
func (h *Handler) ReplaceSegments(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ReplaceSegmentsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	for i, s := range payload.Segments {
		if s.Color == "" {
			resp.WriteError(w, http.StatusBadRequest, "segment "+strconv.Itoa(i)+": color is required")
			return
		}
	}

	segments := converter.ToSegments(payload.Segments)
	if err := h.serv.ReplaceSegments(r.Context(), segments); err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSegmentsResponse(segments))
}

// SetLabel меняет подпись сектора {index}
func (h *Handler) SetLabel(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	payload, err := req.Decode[dto.SetLabelRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.serv.SetLabel(r.Context(), index, payload.Text); err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSegmentsResponse(h.serv.Snapshot().Segments))
}

func (h *Handler) Randomize(w http.ResponseWriter, r *http.Request) {
	segments, err := h.serv.Randomize(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSegmentsResponse(segments))
}

// Spin запускает вращение. Ответ приходит сразу, анимация идёт через /api/events.
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	spin, err := h.serv.Spin(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToSpinResponse(spin))
}

// Respin прерывает текущее вращение и запускает новое
func (h *Handler) Respin(w http.ResponseWriter, r *http.Request) {
	spin, err := h.serv.Respin(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToSpinResponse(spin))
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Cancel(r.Context()); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.serv.Dismiss(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNoSegments):
		resp.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, model.ErrSpinInProgress), errors.Is(err, model.ErrNoSpin):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrSegmentIndex):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrClosed):
		resp.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("wheel request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
