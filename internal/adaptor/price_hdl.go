package adaptor

import (
	"net/http"

	"cinema-ebooking/internal/dto/request"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/pkg/utils"

	"go.uber.org/zap"
)

type PriceHandler struct {
	service usecase.PriceService
	log     *zap.Logger
}

func NewPriceHandler(service usecase.PriceService, log *zap.Logger) *PriceHandler {
	return &PriceHandler{
		service: service,
		log:     log.With(zap.String("handler", "price")),
	}
}

// GetPrices handles GET /api/prices
func (h *PriceHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.service.GetPrices(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get prices")
		return
	}

	utils.ResponseSuccess(w, "success", prices)
}

// UpsertPrices handles PUT /api/admin/prices
func (h *PriceHandler) UpsertPrices(w http.ResponseWriter, r *http.Request) {
	var req request.PriceConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	prices, created, err := h.service.UpsertPrices(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update prices")
		return
	}

	if created {
		utils.ResponseCreated(w, "Prices created successfully", prices)
		return
	}
	utils.ResponseSuccess(w, "Prices updated successfully", prices)
}
