package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
)

// RevenueRepository implements usecase.RevenueRepository.
type RevenueRepository struct {
	pool *pgxpool.Pool
}

// NewRevenueRepository creates a new RevenueRepository.
func NewRevenueRepository(pool *pgxpool.Pool) *RevenueRepository {
	return &RevenueRepository{pool: pool}
}

// Create inserts a new revenue record.
func (r *RevenueRepository) Create(ctx context.Context, revenue *domain.Revenue) error {
	query := `
		INSERT INTO revenues (id, owner_type, owner_id, amount, source, received_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		revenue.ID,
		string(revenue.Owner.Type),
		revenue.Owner.ID,
		decimalToNumeric(revenue.Amount),
		revenue.Source,
		timeToPgTimestamptz(revenue.ReceivedAt),
		timeToPgTimestamptz(revenue.CreatedAt),
	)

	return err
}

// GetByID retrieves a revenue by ID.
func (r *RevenueRepository) GetByID(ctx context.Context, id string) (*domain.Revenue, error) {
	query := `
		SELECT id, owner_type, owner_id, amount, source, received_at, created_at
		FROM revenues
		WHERE id = $1
	`

	revenue, err := scanRevenue(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRevenueNotFound
		}

		return nil, err
	}

	return revenue, nil
}

// Delete removes a revenue record.
func (r *RevenueRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM revenues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRevenueNotFound
	}

	return nil
}

// ListByOwner lists an owner's revenues with pagination, newest first.
func (r *RevenueRepository) ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Revenue, error) {
	query := `
		SELECT id, owner_type, owner_id, amount, source, received_at, created_at
		FROM revenues
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY received_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, string(owner.Type), owner.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenues []*domain.Revenue
	for rows.Next() {
		revenue, err := scanRevenue(rows)
		if err != nil {
			return nil, err
		}
		revenues = append(revenues, revenue)
	}

	return revenues, rows.Err()
}

// SumByOwnerBetween totals an owner's revenues received in [from, to).
func (r *RevenueRepository) SumByOwnerBetween(ctx context.Context, owner domain.OwnerKey, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM revenues
		WHERE owner_type = $1 AND owner_id = $2 AND received_at >= $3 AND received_at < $4
	`

	var sum pgtype.Numeric
	err := r.pool.QueryRow(ctx, query,
		string(owner.Type),
		owner.ID,
		timeToPgTimestamptz(from),
		timeToPgTimestamptz(to),
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

func scanRevenue(row pgx.Row) (*domain.Revenue, error) {
	var (
		revenue    domain.Revenue
		ownerType  string
		amount     pgtype.Numeric
		receivedAt pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&revenue.ID,
		&ownerType,
		&revenue.Owner.ID,
		&amount,
		&revenue.Source,
		&receivedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	revenue.Owner.Type = domain.OwnerType(ownerType)
	revenue.Amount = numericToDecimal(amount)
	revenue.ReceivedAt = receivedAt.Time
	revenue.CreatedAt = createdAt.Time

	return &revenue, nil
}
