package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/usecase"
)

// MockCostRepository is a mock implementation of CostRepository.
type MockCostRepository struct {
	mu    sync.RWMutex
	costs map[string]*domain.Cost

	CreateFunc            func(ctx context.Context, cost *domain.Cost) error
	CreateTxFunc          func(ctx context.Context, tx usecase.Transaction, cost *domain.Cost) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Cost, error)
	UpdateFunc            func(ctx context.Context, cost *domain.Cost) error
	DeleteFunc            func(ctx context.Context, id string) error
	ListByOwnerFunc       func(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Cost, error)
	ListActiveByOwnerFunc func(ctx context.Context, owner domain.OwnerKey) ([]*domain.Cost, error)
}

func NewMockCostRepository() *MockCostRepository {
	return &MockCostRepository{
		costs: make(map[string]*domain.Cost),
	}
}

func (m *MockCostRepository) Create(ctx context.Context, cost *domain.Cost) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cost)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.costs[cost.ID] = cost
	return nil
}

func (m *MockCostRepository) CreateTx(ctx context.Context, tx usecase.Transaction, cost *domain.Cost) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, cost)
	}
	return m.Create(ctx, cost)
}

func (m *MockCostRepository) GetByID(ctx context.Context, id string) (*domain.Cost, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.costs[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCostNotFound
}

func (m *MockCostRepository) Update(ctx context.Context, cost *domain.Cost) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, cost)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.costs[cost.ID]; !ok {
		return domain.ErrCostNotFound
	}
	m.costs[cost.ID] = cost
	return nil
}

func (m *MockCostRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.costs[id]; !ok {
		return domain.ErrCostNotFound
	}
	delete(m.costs, id)
	return nil
}

func (m *MockCostRepository) ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Cost, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, owner, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Cost
	for _, c := range m.costs {
		if c.Owner == owner {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCostRepository) ListActiveByOwner(ctx context.Context, owner domain.OwnerKey) ([]*domain.Cost, error) {
	if m.ListActiveByOwnerFunc != nil {
		return m.ListActiveByOwnerFunc(ctx, owner)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Cost
	for _, c := range m.costs {
		if c.Owner == owner && c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

// MockRevenueRepository is a mock implementation of RevenueRepository.
type MockRevenueRepository struct {
	mu       sync.RWMutex
	revenues map[string]*domain.Revenue

	CreateFunc            func(ctx context.Context, revenue *domain.Revenue) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Revenue, error)
	DeleteFunc            func(ctx context.Context, id string) error
	ListByOwnerFunc       func(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Revenue, error)
	SumByOwnerBetweenFunc func(ctx context.Context, owner domain.OwnerKey, from, to time.Time) (decimal.Decimal, error)
}

func NewMockRevenueRepository() *MockRevenueRepository {
	return &MockRevenueRepository{
		revenues: make(map[string]*domain.Revenue),
	}
}

func (m *MockRevenueRepository) Create(ctx context.Context, revenue *domain.Revenue) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, revenue)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revenues[revenue.ID] = revenue
	return nil
}

func (m *MockRevenueRepository) GetByID(ctx context.Context, id string) (*domain.Revenue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.revenues[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRevenueNotFound
}

func (m *MockRevenueRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.revenues[id]; !ok {
		return domain.ErrRevenueNotFound
	}
	delete(m.revenues, id)
	return nil
}

func (m *MockRevenueRepository) ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Revenue, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, owner, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Revenue
	for _, r := range m.revenues {
		if r.Owner == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRevenueRepository) SumByOwnerBetween(ctx context.Context, owner domain.OwnerKey, from, to time.Time) (decimal.Decimal, error) {
	if m.SumByOwnerBetweenFunc != nil {
		return m.SumByOwnerBetweenFunc(ctx, owner, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, r := range m.revenues {
		if r.Owner == owner && !r.ReceivedAt.Before(from) && r.ReceivedAt.Before(to) {
			sum = sum.Add(r.Amount)
		}
	}
	return sum, nil
}

// MockGoalRepository is a mock implementation of GoalRepository.
type MockGoalRepository struct {
	mu    sync.RWMutex
	goals map[string]*domain.Goal

	CreateFunc      func(ctx context.Context, goal *domain.Goal) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Goal, error)
	UpdateFunc      func(ctx context.Context, goal *domain.Goal) error
	ListByOwnerFunc func(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Goal, error)
}

func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		goals: make(map[string]*domain.Goal),
	}
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, goal)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals[goal.ID] = goal
	return nil
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.goals[id]; ok {
		return g, nil
	}
	return nil, domain.ErrGoalNotFound
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, goal)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.goals[goal.ID]; !ok {
		return domain.ErrGoalNotFound
	}
	m.goals[goal.ID] = goal
	return nil
}

func (m *MockGoalRepository) ListByOwner(ctx context.Context, owner domain.OwnerKey, limit, offset int) ([]*domain.Goal, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, owner, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Goal
	for _, g := range m.goals {
		if g.Owner == owner {
			out = append(out, g)
		}
	}
	return out, nil
}

// MockEntityRepository is a mock implementation of EntityRepository.
type MockEntityRepository struct {
	mu       sync.RWMutex
	entities map[string]*domain.Entity

	CreateFunc     func(ctx context.Context, entity *domain.Entity) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Entity, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Entity, error)
}

func NewMockEntityRepository() *MockEntityRepository {
	return &MockEntityRepository{
		entities: make(map[string]*domain.Entity),
	}
}

func (m *MockEntityRepository) Create(ctx context.Context, entity *domain.Entity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entity)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities[entity.ID] = entity
	return nil
}

func (m *MockEntityRepository) GetByID(ctx context.Context, id string) (*domain.Entity, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entities[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEntityNotFound
}

func (m *MockEntityRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Entity, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Entity
	for _, e := range m.entities {
		if e.OwnerUserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	ListFunc       func(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockReportCache is a mock implementation of ReportCache.
type MockReportCache struct {
	mu     sync.RWMutex
	values map[string][]byte

	GetFunc             func(ctx context.Context, key string) ([]byte, error)
	SetFunc             func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	InvalidateOwnerFunc func(ctx context.Context, owner domain.OwnerKey) error

	Invalidations []domain.OwnerKey
}

func NewMockReportCache() *MockReportCache {
	return &MockReportCache{
		values: make(map[string][]byte),
	}
}

func (m *MockReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MockReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockReportCache) InvalidateOwner(ctx context.Context, owner domain.OwnerKey) error {
	if m.InvalidateOwnerFunc != nil {
		return m.InvalidateOwnerFunc(ctx, owner)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Invalidations = append(m.Invalidations, owner)
	m.values = make(map[string][]byte)
	return nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	Tx *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{Tx: &MockTransaction{}}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return m.Tx, nil
}

// MockRetrier is a mock implementation of Retrier that runs the
// operation once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}
