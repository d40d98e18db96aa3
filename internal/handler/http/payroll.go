package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/presencio/presence-backend-go/internal/domain/payroll"
	"github.com/presencio/presence-backend-go/internal/handler/http/response"
	"github.com/presencio/presence-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	ComputeMonthly(w http.ResponseWriter, r *http.Request)
	ComputeAll(w http.ResponseWriter, r *http.Request)
	SendBulletin(w http.ResponseWriter, r *http.Request)
	SendPending(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// parseMonth reads the "month" query parameter (YYYY-MM). An absent
// parameter defaults to the current month.
func parseMonth(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return time.Now(), true
	}
	month, ok := validator.IsValidMonth(raw)
	if !ok {
		return time.Time{}, false
	}
	return month, true
}

func (h *payrollHandlerImpl) ComputeMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month, ok := parseMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid month, expected YYYY-MM", nil)
		return
	}

	result, err := h.payrollService.ComputeMonthly(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulletin computed", result)
}

func (h *payrollHandlerImpl) ComputeAll(w http.ResponseWriter, r *http.Request) {
	month, ok := parseMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid month, expected YYYY-MM", nil)
		return
	}

	result, err := h.payrollService.ComputeAllMonthly(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch computation finished", result)
}

func (h *payrollHandlerImpl) SendBulletin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bulletin ID is required", nil)
		return
	}

	if err := h.payrollService.SendBulletin(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulletin sent", nil)
}

func (h *payrollHandlerImpl) SendPending(w http.ResponseWriter, r *http.Request) {
	sent, err := h.payrollService.SendPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pending bulletins sent", map[string]int{"sent": sent})
}

func (h *payrollHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
