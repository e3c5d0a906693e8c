package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
)

// CostRepository defines data access for cost records.
type CostRepository interface {
	Create(ctx context.Context, cost *domain.Cost) error
	CreateTx(ctx context.Context, tx Transaction, cost *domain.Cost) error
	GetByID(ctx context.Context, id string) (*domain.Cost, error)
	Update(ctx context.Context, cost *domain.Cost) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Cost, error)
	ListActiveByOwner(ctx context.Context, owner domain.OwnerKey) ([]*domain.Cost, error)
}

// RevenueRepository defines data access for revenues.
type RevenueRepository interface {
	Create(ctx context.Context, revenue *domain.Revenue) error
	GetByID(ctx context.Context, id string) (*domain.Revenue, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Revenue, error)
	SumByOwnerBetween(ctx context.Context, owner domain.OwnerKey, from, to time.Time) (decimal.Decimal, error)
}

// GoalRepository defines data access for savings goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Goal, error)
}

// EntityRepository defines data access for business entities.
type EntityRepository interface {
	Create(ctx context.Context, entity *domain.Entity) error
	GetByID(ctx context.Context, id string) (*domain.Entity, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Entity, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore deduplicates mutating requests by client key.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// ReportCache caches computed report payloads.
type ReportCache interface {
	// Get returns (nil, nil) on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// InvalidateOwner drops every cached report for an owner.
	InvalidateOwner(ctx context.Context, owner domain.OwnerKey) error
}
