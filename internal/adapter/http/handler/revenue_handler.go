package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finboard/internal/adapter/http/dto"
	"github.com/iho/finboard/internal/adapter/http/middleware"
	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/infrastructure/metrics"
	"github.com/iho/finboard/internal/usecase"
)

// RevenueService defines the behavior needed by RevenueHandler.
type RevenueService interface {
	CreateRevenue(ctx context.Context, actor *domain.User, input usecase.CreateRevenueInput) (*domain.Revenue, error)
	DeleteRevenue(ctx context.Context, actor *domain.User, id string) error
	ListRevenues(ctx context.Context, actor *domain.User, input usecase.ListRevenuesInput) ([]*domain.Revenue, error)
}

// RevenueHandler handles revenue-related HTTP requests.
type RevenueHandler struct {
	revenueUC RevenueService
}

// NewRevenueHandler creates a new RevenueHandler.
func NewRevenueHandler(revenueUC RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueUC: revenueUC}
}

// Create records a revenue.
func (h *RevenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateRevenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	revenue, err := h.revenueUC.CreateRevenue(r.Context(), actor, req.ToUseCaseInput(actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record revenue", err.Error())
		return
	}

	metrics.RevenuesRecorded.Inc()
	writeJSON(w, http.StatusCreated, dto.RevenueFromDomain(revenue))
}

// List lists the actor's revenues.
func (h *RevenueHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	revenues, err := h.revenueUC.ListRevenues(r.Context(), actor, usecase.ListRevenuesInput{
		Owner:  ownerFromQuery(r, actor),
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list revenues", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListRevenuesResponse{
		Revenues: dto.RevenuesFromDomain(revenues),
		Total:    int64(len(revenues)),
	})
}

// Delete removes a revenue entry.
func (h *RevenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.revenueUC.DeleteRevenue(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete revenue", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
