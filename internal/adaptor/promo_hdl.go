package adaptor

import (
	"net/http"
	"time"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PromoHandler struct {
	service usecase.PromoService
	log     *zap.Logger
}

func NewPromoHandler(service usecase.PromoService, log *zap.Logger) *PromoHandler {
	return &PromoHandler{
		service: service,
		log:     log.With(zap.String("handler", "promo")),
	}
}

// ValidatePromo handles GET /api/promos/validate?code=
func (h *PromoHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		utils.ResponseBadRequest(w, "Promo code is required", nil)
		return
	}

	promo, err := h.service.Validate(r.Context(), code, time.Now())
	if err != nil {
		handleServiceError(w, h.log, err, "validate promo")
		return
	}

	utils.ResponseSuccess(w, "Promo code is valid", promo)
}

// CreatePromo handles POST /api/admin/promos
func (h *PromoHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var req request.PromoRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	promo, err := h.service.CreatePromo(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create promo")
		return
	}

	utils.ResponseCreated(w, "Promo created successfully", promo)
}

// GetPromos handles GET /api/admin/promos
func (h *PromoHandler) GetPromos(w http.ResponseWriter, r *http.Request) {
	promos, err := h.service.GetPromos(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get promos")
		return
	}

	utils.ResponseSuccess(w, "success", promos)
}

// GetPromo handles GET /api/admin/promos/{id}
func (h *PromoHandler) GetPromo(w http.ResponseWriter, r *http.Request) {
	promo, err := h.service.GetPromoByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get promo")
		return
	}

	utils.ResponseSuccess(w, "success", promo)
}

// UpdatePromo handles PUT /api/admin/promos/{id}
func (h *PromoHandler) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	var req request.PromoUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	promo, err := h.service.UpdatePromo(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update promo")
		return
	}

	utils.ResponseSuccess(w, "Promo updated successfully", promo)
}

// DeletePromo handles DELETE /api/admin/promos/{id}
func (h *PromoHandler) DeletePromo(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePromo(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete promo")
		return
	}

	utils.ResponseSuccess(w, "Promo deleted successfully", nil)
}

// SendPromo handles POST /api/admin/promos/{id}/send
func (h *PromoHandler) SendPromo(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.BroadcastPromo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "send promo")
		return
	}

	message := "Promo emails sent"
	if result.TotalSubscribed == 0 {
		message = "No subscribed users to notify"
	}
	utils.ResponseSuccess(w, message, result)
}
