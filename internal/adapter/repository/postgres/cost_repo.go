package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/usecase"
)

// CostRepository implements usecase.CostRepository.
type CostRepository struct {
	pool *pgxpool.Pool
}

// NewCostRepository creates a new CostRepository.
func NewCostRepository(pool *pgxpool.Pool) *CostRepository {
	return &CostRepository{pool: pool}
}

const insertCostQuery = `
	INSERT INTO costs (id, owner_type, owner_id, amount, frequency, is_fixed, active, description, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

const selectCostColumns = `
	id, owner_type, owner_id, amount, frequency, is_fixed, active, description, created_at, updated_at
`

// Create inserts a new cost record.
func (r *CostRepository) Create(ctx context.Context, cost *domain.Cost) error {
	_, err := r.pool.Exec(ctx, insertCostQuery, costArgs(cost)...)
	return err
}

// CreateTx inserts a new cost record inside an open transaction.
func (r *CostRepository) CreateTx(ctx context.Context, tx usecase.Transaction, cost *domain.Cost) error {
	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, insertCostQuery, costArgs(cost)...)
	return err
}

// GetByID retrieves a cost by ID.
func (r *CostRepository) GetByID(ctx context.Context, id string) (*domain.Cost, error) {
	query := `SELECT ` + selectCostColumns + ` FROM costs WHERE id = $1`

	cost, err := scanCost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCostNotFound
		}

		return nil, err
	}

	return cost, nil
}

// Update updates a cost record.
func (r *CostRepository) Update(ctx context.Context, cost *domain.Cost) error {
	query := `
		UPDATE costs
		SET amount = $2, frequency = $3, is_fixed = $4, active = $5, description = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		cost.ID,
		decimalToNumeric(cost.Amount),
		string(cost.Frequency),
		cost.IsFixed,
		cost.Active,
		cost.Description,
		timeToPgTimestamptz(cost.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCostNotFound
	}

	return nil
}

// Delete removes a cost record permanently.
func (r *CostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM costs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCostNotFound
	}

	return nil
}

// ListByOwner lists an owner's costs with pagination, newest first.
func (r *CostRepository) ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Cost, error) {
	query := `
		SELECT ` + selectCostColumns + `
		FROM costs
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, string(owner.Type), owner.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCosts(rows)
}

// ListActiveByOwner lists every active cost of an owner. Reports need
// the full set, so there is no pagination here.
func (r *CostRepository) ListActiveByOwner(ctx context.Context, owner domain.OwnerKey) ([]*domain.Cost, error) {
	query := `
		SELECT ` + selectCostColumns + `
		FROM costs
		WHERE owner_type = $1 AND owner_id = $2 AND active
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, string(owner.Type), owner.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCosts(rows)
}

func costArgs(cost *domain.Cost) []any {
	return []any{
		cost.ID,
		string(cost.Owner.Type),
		cost.Owner.ID,
		decimalToNumeric(cost.Amount),
		string(cost.Frequency),
		cost.IsFixed,
		cost.Active,
		cost.Description,
		timeToPgTimestamptz(cost.CreatedAt),
		timeToPgTimestamptz(cost.UpdatedAt),
	}
}

func scanCost(row pgx.Row) (*domain.Cost, error) {
	var (
		cost      domain.Cost
		ownerType string
		frequency string
		amount    pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&cost.ID,
		&ownerType,
		&cost.Owner.ID,
		&amount,
		&frequency,
		&cost.IsFixed,
		&cost.Active,
		&cost.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	cost.Owner.Type = domain.OwnerType(ownerType)
	cost.Frequency = domain.Frequency(frequency)
	cost.Amount = numericToDecimal(amount)
	cost.CreatedAt = createdAt.Time
	cost.UpdatedAt = updatedAt.Time

	return &cost, nil
}

func collectCosts(rows pgx.Rows) ([]*domain.Cost, error) {
	var costs []*domain.Cost
	for rows.Next() {
		cost, err := scanCost(rows)
		if err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}

	return costs, rows.Err()
}
