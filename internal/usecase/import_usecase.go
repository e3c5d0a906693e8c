package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
)

// Import errors
var (
	ErrEmptyImport     = errors.New("import batch is empty")
	ErrImportTooLarge  = errors.New("import batch exceeds maximum size")
	ErrMalformedAmount = errors.New("malformed amount")
)

// ImportUseCase ingests legacy cost exports. Historical data arrives
// with loose booleans and free-form frequency strings; everything is
// normalized once here, before any record reaches storage or the
// accrual engine.
type ImportUseCase struct {
	txManager  TransactionManager
	costRepo   CostRepository
	entityRepo EntityRepository
	cache      ReportCache
	idGen      IDGenerator
	retrier    Retrier
}

// NewImportUseCase creates a new ImportUseCase.
func NewImportUseCase(txManager TransactionManager, costRepo CostRepository, entityRepo EntityRepository, cache ReportCache, idGen IDGenerator, retrier Retrier) *ImportUseCase {
	return &ImportUseCase{
		txManager:  txManager,
		costRepo:   costRepo,
		entityRepo: entityRepo,
		cache:      cache,
		idGen:      idGen,
		retrier:    retrier,
	}
}

// ImportRecord is one raw row from a legacy export. IsFixed and Active
// accept whatever the old store produced: 0, "0", "false", nil, true.
type ImportRecord struct {
	Amount      string
	Frequency   string
	IsFixed     any
	Active      any
	Description string
	CreatedAt   time.Time
}

// ImportInput represents a legacy import request.
type ImportInput struct {
	Owner   domain.OwnerKey
	Records []ImportRecord
}

// ImportResult reports what a finished import produced.
type ImportResult struct {
	Imported int
	CostIDs  []string
}

// Import normalizes and inserts a batch of legacy records in a single
// transaction, retried on transient storage failures. A malformed
// amount fails the whole batch; partial imports would be worse than no
// import.
func (uc *ImportUseCase) Import(ctx context.Context, actor *domain.User, input ImportInput) (*ImportResult, error) {
	if !actor.Role.CanWrite() {
		return nil, domain.ErrInsufficientRole
	}
	if err := verifyOwnership(ctx, uc.entityRepo, actor, input.Owner); err != nil {
		return nil, err
	}
	if len(input.Records) == 0 {
		return nil, ErrEmptyImport
	}
	if len(input.Records) > MaxImportBatchSize {
		return nil, fmt.Errorf("%w: %d records, maximum %d", ErrImportTooLarge, len(input.Records), MaxImportBatchSize)
	}

	costs := make([]*domain.Cost, 0, len(input.Records))
	for i, rec := range input.Records {
		cost, err := uc.normalize(input.Owner, rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		costs = append(costs, cost)
	}

	err := uc.retrier.Retry(ctx, func() error {
		return uc.insertAll(ctx, costs)
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateOwner(ctx, input.Owner)
	}

	result := &ImportResult{Imported: len(costs), CostIDs: make([]string, 0, len(costs))}
	for _, c := range costs {
		result.CostIDs = append(result.CostIDs, c.ID)
	}
	return result, nil
}

func (uc *ImportUseCase) normalize(owner domain.OwnerKey, rec ImportRecord) (*domain.Cost, error) {
	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedAmount, rec.Amount)
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	// A missing active flag means the record was never soft-deleted.
	active := true
	if rec.Active != nil {
		active = domain.ParseLooseBool(rec.Active)
	}

	cost := &domain.Cost{
		ID:          uc.idGen.Generate(),
		Owner:       owner,
		Amount:      amount,
		Frequency:   domain.ParseFrequency(rec.Frequency),
		IsFixed:     domain.ParseLooseBool(rec.IsFixed),
		Active:      active,
		Description: rec.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   time.Now().UTC(),
	}
	cost.Normalize()

	if err := cost.Validate(); err != nil {
		return nil, err
	}
	return cost, nil
}

func (uc *ImportUseCase) insertAll(ctx context.Context, costs []*domain.Cost) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	for _, cost := range costs {
		if err := uc.costRepo.CreateTx(ctx, tx, cost); err != nil {
			return fmt.Errorf("insert cost %s: %w", cost.ID, err)
		}
	}

	return tx.Commit(ctx)
}
