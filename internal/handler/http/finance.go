package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lokabooks/bookkeeping-backend-go/internal/domain/finance"
	"github.com/lokabooks/bookkeeping-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	CreateIncome(w http.ResponseWriter, r *http.Request)
	ListIncomes(w http.ResponseWriter, r *http.Request)
	ListCharityLedger(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

// CreateIncome implements FinanceHandler.
func (h *financeHandlerImpl) CreateIncome(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode income request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.CreateIncome(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Income recorded", result)
}

func incomeFilterFromQuery(r *http.Request) finance.IncomeFilter {
	return finance.IncomeFilter{
		StartDate: queryStringPtr(r, "start_date"),
		EndDate:   queryStringPtr(r, "end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}
}

// ListIncomes implements FinanceHandler.
func (h *financeHandlerImpl) ListIncomes(w http.ResponseWriter, r *http.Request) {
	filter := incomeFilterFromQuery(r)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, total, err := h.financeService.ListIncomes(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, response.PageMeta(filter.Page, filter.Limit, total))
}

// ListCharityLedger implements FinanceHandler.
func (h *financeHandlerImpl) ListCharityLedger(w http.ResponseWriter, r *http.Request) {
	filter := incomeFilterFromQuery(r)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, total, err := h.financeService.ListCharityLedger(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, response.PageMeta(filter.Page, filter.Limit, total))
}
