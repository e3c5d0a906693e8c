package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finboard/internal/adapter/http/dto"
	"github.com/iho/finboard/internal/adapter/http/middleware"
	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/usecase"
)

// EntityService defines the behavior needed by EntityHandler.
type EntityService interface {
	CreateEntity(ctx context.Context, actor *domain.User, input usecase.CreateEntityInput) (*domain.Entity, error)
	GetEntity(ctx context.Context, actor *domain.User, id string) (*domain.Entity, error)
	ListEntities(ctx context.Context, actor *domain.User) ([]*domain.Entity, error)
}

// EntityHandler handles business-entity HTTP requests.
type EntityHandler struct {
	entityUC EntityService
}

// NewEntityHandler creates a new EntityHandler.
func NewEntityHandler(entityUC EntityService) *EntityHandler {
	return &EntityHandler{entityUC: entityUC}
}

// Create registers a business entity owned by the actor.
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entity, err := h.entityUC.CreateEntity(r.Context(), actor, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create entity", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntityFromDomain(entity))
}

// Get retrieves one of the actor's entities.
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	entity, err := h.entityUC.GetEntity(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entity", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntityFromDomain(entity))
}

// List lists the actor's registered entities.
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	entities, err := h.entityUC.ListEntities(r.Context(), actor)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entities", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntitiesFromDomain(entities))
}
