package adaptor

import (
	"net/http"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ScheduleService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// AddShowtime handles POST /api/admin/showtimes
func (h *ShowtimeHandler) AddShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.AddShowtime(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add showtime")
		return
	}

	utils.ResponseCreated(w, "Showtime scheduled successfully", showtime)
}

// RemoveShowtime handles DELETE /api/admin/showtimes
func (h *ShowtimeHandler) RemoveShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	remaining, err := h.service.RemoveShowtime(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "remove showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime removed successfully", remaining)
}

// ListShowtimes handles GET /api/movies/{id}/showtimes
func (h *ShowtimeHandler) ListShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.ListShowtimes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}
