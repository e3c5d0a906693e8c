package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/finboard/internal/domain"
)

// GoalRepository implements usecase.GoalRepository.
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

// Create inserts a new savings goal.
func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (id, owner_type, owner_id, name, target_amount, saved_amount, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		goal.ID,
		string(goal.Owner.Type),
		goal.Owner.ID,
		goal.Name,
		decimalToNumeric(goal.TargetAmount),
		decimalToNumeric(goal.SavedAmount),
		deadlineToPg(goal.Deadline),
		timeToPgTimestamptz(goal.CreatedAt),
		timeToPgTimestamptz(goal.UpdatedAt),
	)

	return err
}

// GetByID retrieves a goal by ID.
func (r *GoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `
		SELECT id, owner_type, owner_id, name, target_amount, saved_amount, deadline, created_at, updated_at
		FROM goals
		WHERE id = $1
	`

	goal, err := scanGoal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}

		return nil, err
	}

	return goal, nil
}

// Update updates a goal's mutable fields.
func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	query := `
		UPDATE goals
		SET name = $2, target_amount = $3, saved_amount = $4, deadline = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		goal.ID,
		goal.Name,
		decimalToNumeric(goal.TargetAmount),
		decimalToNumeric(goal.SavedAmount),
		deadlineToPg(goal.Deadline),
		timeToPgTimestamptz(goal.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

// ListByOwner lists an owner's goals with pagination.
func (r *GoalRepository) ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Goal, error) {
	query := `
		SELECT id, owner_type, owner_id, name, target_amount, saved_amount, deadline, created_at, updated_at
		FROM goals
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY created_at
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, string(owner.Type), owner.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		goal         domain.Goal
		ownerType    string
		targetAmount pgtype.Numeric
		savedAmount  pgtype.Numeric
		deadline     pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&goal.ID,
		&ownerType,
		&goal.Owner.ID,
		&goal.Name,
		&targetAmount,
		&savedAmount,
		&deadline,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	goal.Owner.Type = domain.OwnerType(ownerType)
	goal.TargetAmount = numericToDecimal(targetAmount)
	goal.SavedAmount = numericToDecimal(savedAmount)
	if deadline.Valid {
		t := deadline.Time
		goal.Deadline = &t
	}
	goal.CreatedAt = createdAt.Time
	goal.UpdatedAt = updatedAt.Time

	return &goal, nil
}

func deadlineToPg(deadline *time.Time) pgtype.Timestamptz {
	if deadline == nil {
		return pgtype.Timestamptz{}
	}

	return timeToPgTimestamptz(*deadline)
}
