package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
)

// GoalUseCase handles savings goal business logic.
type GoalUseCase struct {
	goalRepo   GoalRepository
	entityRepo EntityRepository
	idGen      IDGenerator
}

// NewGoalUseCase creates a new GoalUseCase.
func NewGoalUseCase(goalRepo GoalRepository, entityRepo EntityRepository, idGen IDGenerator) *GoalUseCase {
	return &GoalUseCase{
		goalRepo:   goalRepo,
		entityRepo: entityRepo,
		idGen:      idGen,
	}
}

// CreateGoalInput represents input for creating a goal.
type CreateGoalInput struct {
	Owner        domain.OwnerKey
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

// CreateGoal creates a new savings goal.
func (uc *GoalUseCase) CreateGoal(ctx context.Context, actor *domain.User, input CreateGoalInput) (*domain.Goal, error) {
	if !actor.Role.CanWrite() {
		return nil, domain.ErrInsufficientRole
	}
	if err := verifyOwnership(ctx, uc.entityRepo, actor, input.Owner); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	goal := &domain.Goal{
		ID:           uc.idGen.Generate(),
		Owner:        input.Owner,
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		SavedAmount:  decimal.Zero,
		Deadline:     input.Deadline,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// GetGoal retrieves one of the actor's goals by ID.
func (uc *GoalUseCase) GetGoal(ctx context.Context, actor *domain.User, id string) (*domain.Goal, error) {
	goal, err := uc.goalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := verifyOwnership(ctx, uc.entityRepo, actor, goal.Owner); err != nil {
		return nil, err
	}
	return goal, nil
}

// AddSavings records additional saved money toward a goal.
func (uc *GoalUseCase) AddSavings(ctx context.Context, actor *domain.User, id string, amount decimal.Decimal) (*domain.Goal, error) {
	if !actor.Role.CanWrite() {
		return nil, domain.ErrInsufficientRole
	}

	goal, err := uc.goalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := verifyOwnership(ctx, uc.entityRepo, actor, goal.Owner); err != nil {
		return nil, err
	}

	if err := goal.AddSavings(amount); err != nil {
		return nil, err
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// ListGoalsInput represents input for listing goals.
type ListGoalsInput struct {
	Owner  domain.OwnerKey
	Limit  int
	Offset int
}

// ListGoals lists an owner's goals with pagination.
func (uc *GoalUseCase) ListGoals(ctx context.Context, actor *domain.User, input ListGoalsInput) ([]*domain.Goal, error) {
	if err := verifyOwnership(ctx, uc.entityRepo, actor, input.Owner); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.goalRepo.ListByOwner(ctx, input.Owner, limit, offset)
}
