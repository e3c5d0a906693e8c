package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finboard/internal/domain"
)

// EntityRepository implements usecase.EntityRepository.
type EntityRepository struct {
	pool *pgxpool.Pool
}

// NewEntityRepository creates a new EntityRepository.
func NewEntityRepository(pool *pgxpool.Pool) *EntityRepository {
	return &EntityRepository{pool: pool}
}

// Create inserts a new business entity.
func (r *EntityRepository) Create(ctx context.Context, entity *domain.Entity) error {
	query := `
		INSERT INTO entities (id, owner_user_id, name, kind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		entity.ID,
		entity.OwnerUserID,
		entity.Name,
		string(entity.Kind),
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	return err
}

// GetByID retrieves a business entity by ID.
func (r *EntityRepository) GetByID(ctx context.Context, id string) (*domain.Entity, error) {
	query := `
		SELECT id, owner_user_id, name, kind, created_at, updated_at
		FROM entities
		WHERE id = $1
	`

	var (
		entity domain.Entity
		kind   string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entity.ID,
		&entity.OwnerUserID,
		&entity.Name,
		&kind,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntityNotFound
		}

		return nil, err
	}

	entity.Kind = domain.EntityKind(kind)
	return &entity, nil
}

// ListByUser lists every entity owned by a user.
func (r *EntityRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Entity, error) {
	query := `
		SELECT id, owner_user_id, name, kind, created_at, updated_at
		FROM entities
		WHERE owner_user_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []*domain.Entity
	for rows.Next() {
		var (
			entity domain.Entity
			kind   string
		)
		err := rows.Scan(
			&entity.ID,
			&entity.OwnerUserID,
			&entity.Name,
			&kind,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entity.Kind = domain.EntityKind(kind)
		entities = append(entities, &entity)
	}

	return entities, rows.Err()
}
