package usecase

import (
	"context"

	"github.com/iho/finboard/internal/domain"
)

// verifyOwnership checks that the actor may act on records in the given
// owner scope: their own personal records, or entities they registered.
func verifyOwnership(ctx context.Context, entityRepo EntityRepository, actor *domain.User, owner domain.OwnerKey) error {
	switch owner.Type {
	case domain.OwnerUser:
		if owner.ID != actor.ID {
			return domain.ErrNotOwner
		}
		return nil
	case domain.OwnerEntity:
		entity, err := entityRepo.GetByID(ctx, owner.ID)
		if err != nil {
			return err
		}
		if entity.OwnerUserID != actor.ID {
			return domain.ErrNotOwner
		}
		return nil
	default:
		return domain.ErrMissingOwner
	}
}
