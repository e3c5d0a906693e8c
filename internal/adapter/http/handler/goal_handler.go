package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/adapter/http/dto"
	"github.com/iho/finboard/internal/adapter/http/middleware"
	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/infrastructure/metrics"
	"github.com/iho/finboard/internal/usecase"
)

// GoalService defines the behavior needed by GoalHandler.
type GoalService interface {
	CreateGoal(ctx context.Context, actor *domain.User, input usecase.CreateGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, actor *domain.User, id string) (*domain.Goal, error)
	AddSavings(ctx context.Context, actor *domain.User, id string, amount decimal.Decimal) (*domain.Goal, error)
	ListGoals(ctx context.Context, actor *domain.User, input usecase.ListGoalsInput) ([]*domain.Goal, error)
}

// GoalHandler handles savings-goal HTTP requests.
type GoalHandler struct {
	goalUC GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalUC GoalService) *GoalHandler {
	return &GoalHandler{goalUC: goalUC}
}

// Create creates a new savings goal.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.goalUC.CreateGoal(r.Context(), actor, req.ToUseCaseInput(actor))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create goal", err.Error())
		return
	}

	metrics.GoalsCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.GoalFromDomain(goal))
}

// Get retrieves a goal by ID.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	goal, err := h.goalUC.GetGoal(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get goal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GoalFromDomain(goal))
}

// List lists the actor's goals.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	goals, err := h.goalUC.ListGoals(r.Context(), actor, usecase.ListGoalsInput{
		Owner:  ownerFromQuery(r, actor),
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list goals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GoalsFromDomain(goals))
}

// AddSavings records saved money toward a goal.
func (h *GoalHandler) AddSavings(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.AddSavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.goalUC.AddSavings(r.Context(), actor, chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add savings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GoalFromDomain(goal))
}
