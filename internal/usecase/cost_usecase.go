package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
)

// CostUseCase handles cost record business logic.
type CostUseCase struct {
	costRepo   CostRepository
	entityRepo EntityRepository
	cache      ReportCache
	idGen      IDGenerator
}

// NewCostUseCase creates a new CostUseCase.
func NewCostUseCase(costRepo CostRepository, entityRepo EntityRepository, cache ReportCache, idGen IDGenerator) *CostUseCase {
	return &CostUseCase{
		costRepo:   costRepo,
		entityRepo: entityRepo,
		cache:      cache,
		idGen:      idGen,
	}
}

// CreateCostInput represents input for creating a cost record.
type CreateCostInput struct {
	Owner       domain.OwnerKey
	Amount      decimal.Decimal
	Frequency   string
	IsFixed     bool
	Description string
}

// CreateCost creates a new cost record owned by the actor or one of
// their entities. Frequency defaulting happens here, at the boundary.
func (uc *CostUseCase) CreateCost(ctx context.Context, actor *domain.User, input CreateCostInput) (*domain.Cost, error) {
	if !actor.Role.CanWrite() {
		return nil, domain.ErrInsufficientRole
	}
	if err := uc.checkOwnership(ctx, actor, input.Owner); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cost := &domain.Cost{
		ID:          uc.idGen.Generate(),
		Owner:       input.Owner,
		Amount:      input.Amount,
		Frequency:   domain.ParseFrequency(input.Frequency),
		IsFixed:     input.IsFixed,
		Active:      true,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	cost.Normalize()

	if err := cost.Validate(); err != nil {
		return nil, err
	}

	if err := uc.costRepo.Create(ctx, cost); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, cost.Owner)
	return cost, nil
}

// GetCost retrieves a cost record, enforcing ownership.
func (uc *CostUseCase) GetCost(ctx context.Context, actor *domain.User, id string) (*domain.Cost, error) {
	cost, err := uc.costRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkOwnership(ctx, actor, cost.Owner); err != nil {
		return nil, err
	}
	return cost, nil
}

// UpdateCostInput represents the mutable fields of a cost record.
type UpdateCostInput struct {
	Amount      *decimal.Decimal
	Frequency   *string
	Active      *bool
	Description *string
}

// UpdateCost updates amount, frequency, active flag or description.
func (uc *CostUseCase) UpdateCost(ctx context.Context, actor *domain.User, id string, input UpdateCostInput) (*domain.Cost, error) {
	if !actor.Role.CanWrite() {
		return nil, domain.ErrInsufficientRole
	}

	cost, err := uc.costRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkOwnership(ctx, actor, cost.Owner); err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return nil, err
		}
		cost.Amount = *input.Amount
	}
	if input.Frequency != nil {
		cost.Frequency = domain.ParseFrequency(*input.Frequency)
	}
	if input.Active != nil {
		cost.Active = *input.Active
	}
	if input.Description != nil {
		if err := domain.ValidateDescription(*input.Description); err != nil {
			return nil, err
		}
		cost.Description = *input.Description
	}

	cost.Normalize()
	cost.UpdatedAt = time.Now().UTC()

	if err := uc.costRepo.Update(ctx, cost); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, cost.Owner)
	return cost, nil
}

// DeactivateCost soft-deletes a cost record. active=false is the sole
// soft-delete signal; the record keeps existing for history.
func (uc *CostUseCase) DeactivateCost(ctx context.Context, actor *domain.User, id string) (*domain.Cost, error) {
	inactive := false
	return uc.UpdateCost(ctx, actor, id, UpdateCostInput{Active: &inactive})
}

// DeleteCost permanently removes a cost record. Owner role only.
func (uc *CostUseCase) DeleteCost(ctx context.Context, actor *domain.User, id string) error {
	if !actor.Role.CanDelete() {
		return domain.ErrInsufficientRole
	}

	cost, err := uc.costRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.checkOwnership(ctx, actor, cost.Owner); err != nil {
		return err
	}

	if err := uc.costRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, cost.Owner)
	return nil
}

// ListCostsInput represents input for listing cost records.
type ListCostsInput struct {
	Owner  domain.OwnerKey
	Limit  int
	Offset int
}

// ListCosts lists an owner's cost records with pagination.
func (uc *CostUseCase) ListCosts(ctx context.Context, actor *domain.User, input ListCostsInput) ([]*domain.Cost, error) {
	if err := uc.checkOwnership(ctx, actor, input.Owner); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.costRepo.ListByOwner(ctx, input.Owner, limit, offset)
}

func (uc *CostUseCase) checkOwnership(ctx context.Context, actor *domain.User, owner domain.OwnerKey) error {
	return verifyOwnership(ctx, uc.entityRepo, actor, owner)
}

func (uc *CostUseCase) invalidate(ctx context.Context, owner domain.OwnerKey) {
	if uc.cache == nil {
		return
	}
	// Stale cached totals are tolerable; invalidation failure is not an
	// error the caller can act on.
	_ = uc.cache.InvalidateOwner(ctx, owner)
}
