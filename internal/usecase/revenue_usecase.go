package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
)

// RevenueUseCase handles revenue business logic.
type RevenueUseCase struct {
	revenueRepo RevenueRepository
	entityRepo  EntityRepository
	idGen       IDGenerator
}

// NewRevenueUseCase creates a new RevenueUseCase.
func NewRevenueUseCase(revenueRepo RevenueRepository, entityRepo EntityRepository, idGen IDGenerator) *RevenueUseCase {
	return &RevenueUseCase{
		revenueRepo: revenueRepo,
		entityRepo:  entityRepo,
		idGen:       idGen,
	}
}

// CreateRevenueInput represents input for recording a revenue.
type CreateRevenueInput struct {
	Owner      domain.OwnerKey
	Amount     decimal.Decimal
	Source     string
	ReceivedAt time.Time
}

// CreateRevenue records money received by an owner.
func (uc *RevenueUseCase) CreateRevenue(ctx context.Context, actor *domain.User, input CreateRevenueInput) (*domain.Revenue, error) {
	if !actor.Role.CanWrite() {
		return nil, domain.ErrInsufficientRole
	}
	if err := verifyOwnership(ctx, uc.entityRepo, actor, input.Owner); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	receivedAt := input.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	revenue := &domain.Revenue{
		ID:         uc.idGen.Generate(),
		Owner:      input.Owner,
		Amount:     input.Amount,
		Source:     input.Source,
		ReceivedAt: receivedAt,
		CreatedAt:  time.Now().UTC(),
	}

	if err := revenue.Validate(); err != nil {
		return nil, err
	}

	if err := uc.revenueRepo.Create(ctx, revenue); err != nil {
		return nil, err
	}

	return revenue, nil
}

// DeleteRevenue removes a revenue entry. Owner role only.
func (uc *RevenueUseCase) DeleteRevenue(ctx context.Context, actor *domain.User, id string) error {
	if !actor.Role.CanDelete() {
		return domain.ErrInsufficientRole
	}

	revenue, err := uc.revenueRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := verifyOwnership(ctx, uc.entityRepo, actor, revenue.Owner); err != nil {
		return err
	}

	return uc.revenueRepo.Delete(ctx, id)
}

// ListRevenuesInput represents input for listing revenues.
type ListRevenuesInput struct {
	Owner  domain.OwnerKey
	Limit  int
	Offset int
}

// ListRevenues lists an owner's revenues with pagination.
func (uc *RevenueUseCase) ListRevenues(ctx context.Context, actor *domain.User, input ListRevenuesInput) ([]*domain.Revenue, error) {
	if err := verifyOwnership(ctx, uc.entityRepo, actor, input.Owner); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.revenueRepo.ListByOwner(ctx, input.Owner, limit, offset)
}
