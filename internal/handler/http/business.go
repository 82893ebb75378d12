package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/business"
	"github.com/lokabooks/bookkeeping-backend-go/internal/handler/http/response"
)

type BusinessHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	UpdateMy(w http.ResponseWriter, r *http.Request)
}

type businessHandlerImpl struct {
	businessService business.BusinessService
}

func NewBusinessHandler(businessService business.BusinessService) BusinessHandler {
	return &businessHandlerImpl{businessService: businessService}
}

// GetMy implements BusinessHandler.
func (h *businessHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	result, err := h.businessService.GetMyBusiness(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMy implements BusinessHandler.
func (h *businessHandlerImpl) UpdateMy(w http.ResponseWriter, r *http.Request) {
	var req business.UpdateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode business request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.businessService.UpdateMyBusiness(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business updated", result)
}
