package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finboard/internal/adapter/http/dto"
	"github.com/iho/finboard/internal/adapter/http/middleware"
	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/infrastructure/metrics"
	"github.com/iho/finboard/internal/usecase"
)

// CostService defines the behavior needed by CostHandler.
type CostService interface {
	CreateCost(ctx context.Context, actor *domain.User, input usecase.CreateCostInput) (*domain.Cost, error)
	GetCost(ctx context.Context, actor *domain.User, id string) (*domain.Cost, error)
	UpdateCost(ctx context.Context, actor *domain.User, id string, input usecase.UpdateCostInput) (*domain.Cost, error)
	DeactivateCost(ctx context.Context, actor *domain.User, id string) (*domain.Cost, error)
	DeleteCost(ctx context.Context, actor *domain.User, id string) error
	ListCosts(ctx context.Context, actor *domain.User, input usecase.ListCostsInput) ([]*domain.Cost, error)
}

// ImportService defines the behavior needed for legacy imports.
type ImportService interface {
	Import(ctx context.Context, actor *domain.User, input usecase.ImportInput) (*usecase.ImportResult, error)
}

// CostHandler handles cost-related HTTP requests.
type CostHandler struct {
	costUC   CostService
	importUC ImportService
}

// NewCostHandler creates a new CostHandler.
func NewCostHandler(costUC CostService, importUC ImportService) *CostHandler {
	return &CostHandler{costUC: costUC, importUC: importUC}
}

// Create creates a new cost record.
func (h *CostHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	cost, err := h.costUC.CreateCost(r.Context(), actor, req.ToUseCaseInput(actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create cost", err.Error())
		return
	}

	metrics.CostsCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.CostFromDomain(cost))
}

// Get retrieves a cost record by ID.
func (h *CostHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	cost, err := h.costUC.GetCost(r.Context(), actor, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get cost", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CostFromDomain(cost))
}

// List lists the actor's cost records.
func (h *CostHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	costs, err := h.costUC.ListCosts(r.Context(), actor, usecase.ListCostsInput{
		Owner:  ownerFromQuery(r, actor),
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list costs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCostsResponse{
		Costs: dto.CostsFromDomain(costs),
		Total: int64(len(costs)),
	})
}

// Update applies a partial update to a cost record.
func (h *CostHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.UpdateCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	cost, err := h.costUC.UpdateCost(r.Context(), actor, chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update cost", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CostFromDomain(cost))
}

// Deactivate soft-deletes a cost record.
func (h *CostHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	cost, err := h.costUC.DeactivateCost(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to deactivate cost", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CostFromDomain(cost))
}

// Delete permanently removes a cost record.
func (h *CostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.costUC.DeleteCost(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete cost", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import ingests a batch of legacy cost records.
func (h *CostHandler) Import(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.ImportCostsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.importUC.Import(r.Context(), actor, req.ToUseCaseInput(actor))
	if err != nil {
		writeError(w, importErrorStatus(err), "import failed", err.Error())
		return
	}

	metrics.CostsImported.Add(float64(result.Imported))
	writeJSON(w, http.StatusCreated, dto.ImportCostsResponse{
		Imported: result.Imported,
		CostIDs:  result.CostIDs,
	})
}

func importErrorStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEmptyImport),
		errors.Is(err, usecase.ErrImportTooLarge),
		errors.Is(err, usecase.ErrMalformedAmount):
		return http.StatusBadRequest
	default:
		return mapDomainError(err)
	}
}
