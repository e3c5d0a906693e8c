package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/finboard/internal/adapter/http/middleware"
	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	AccruedTotal(ctx context.Context, actor *domain.User, owner domain.OwnerKey, ref time.Time) (*usecase.AccruedReport, error)
	Summary(ctx context.Context, actor *domain.User, owner domain.OwnerKey, month time.Time) (*usecase.MonthlySummary, error)
	GoalProgress(ctx context.Context, actor *domain.User, owner domain.OwnerKey) ([]usecase.GoalStatus, error)
}

// ReportHandler handles reporting HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Accrued returns the accumulated cost obligation at a reference date.
func (h *ReportHandler) Accrued(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	ref, err := parseDateQuery(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", "use YYYY-MM-DD")
		return
	}

	report, err := h.reportUC.AccruedTotal(r.Context(), actor, ownerFromQuery(r, actor), ref)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute accrued report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Summary nets a month's accrued costs against its revenues.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	month := time.Now().UTC()
	if val := r.URL.Query().Get("month"); val != "" {
		parsed, err := time.Parse("2006-01", val)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid month", "use YYYY-MM")
			return
		}
		month = parsed
	}

	summary, err := h.reportUC.Summary(r.Context(), actor, ownerFromQuery(r, actor), month)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Goals reports the actor's savings goals with progress ratios.
func (h *ReportHandler) Goals(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	statuses, err := h.reportUC.GoalProgress(r.Context(), actor, ownerFromQuery(r, actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute goal progress", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, statuses)
}
