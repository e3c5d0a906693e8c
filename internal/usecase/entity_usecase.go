package usecase

import (
	"context"
	"time"

	"github.com/iho/finboard/internal/domain"
)

// EntityUseCase handles business-entity management.
type EntityUseCase struct {
	entityRepo EntityRepository
	idGen      IDGenerator
}

// NewEntityUseCase creates a new EntityUseCase.
func NewEntityUseCase(entityRepo EntityRepository, idGen IDGenerator) *EntityUseCase {
	return &EntityUseCase{
		entityRepo: entityRepo,
		idGen:      idGen,
	}
}

// CreateEntityInput represents input for registering a business entity.
type CreateEntityInput struct {
	Name string
	Kind domain.EntityKind
}

// CreateEntity registers a business the actor tracks finances for.
// The entity always belongs to the actor.
func (uc *EntityUseCase) CreateEntity(ctx context.Context, actor *domain.User, input CreateEntityInput) (*domain.Entity, error) {
	if !actor.Role.CanWrite() {
		return nil, domain.ErrInsufficientRole
	}

	now := time.Now().UTC()
	entity := &domain.Entity{
		ID:          uc.idGen.Generate(),
		OwnerUserID: actor.ID,
		Name:        input.Name,
		Kind:        input.Kind,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := entity.Validate(); err != nil {
		return nil, err
	}

	if err := uc.entityRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// GetEntity retrieves an entity, enforcing ownership.
func (uc *EntityUseCase) GetEntity(ctx context.Context, actor *domain.User, id string) (*domain.Entity, error) {
	entity, err := uc.entityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity.OwnerUserID != actor.ID {
		return nil, domain.ErrNotOwner
	}
	return entity, nil
}

// ListEntities lists the actor's registered entities.
func (uc *EntityUseCase) ListEntities(ctx context.Context, actor *domain.User) ([]*domain.Entity, error) {
	return uc.entityRepo.ListByUser(ctx, actor.ID)
}
