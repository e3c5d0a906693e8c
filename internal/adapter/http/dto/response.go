package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
)

// CostResponse represents a cost record in API responses.
type CostResponse struct {
	ID          string          `json:"id"`
	OwnerType   string          `json:"owner_type"`
	OwnerID     string          `json:"owner_id"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency"`
	IsFixed     bool            `json:"is_fixed"`
	Active      bool            `json:"active"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CostFromDomain converts a domain cost to a response.
func CostFromDomain(c *domain.Cost) *CostResponse {
	return &CostResponse{
		ID:          c.ID,
		OwnerType:   string(c.Owner.Type),
		OwnerID:     c.Owner.ID,
		Amount:      c.Amount,
		Frequency:   string(c.Frequency),
		IsFixed:     c.IsFixed,
		Active:      c.Active,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CostsFromDomain converts domain costs to responses.
func CostsFromDomain(costs []*domain.Cost) []*CostResponse {
	result := make([]*CostResponse, len(costs))
	for i, c := range costs {
		result[i] = CostFromDomain(c)
	}
	return result
}

// ListCostsResponse wraps a page of cost records.
type ListCostsResponse struct {
	Costs []*CostResponse `json:"costs"`
	Total int64           `json:"total"`
}

// ImportCostsResponse reports a finished legacy import.
type ImportCostsResponse struct {
	Imported int      `json:"imported"`
	CostIDs  []string `json:"cost_ids"`
}

// RevenueResponse represents a revenue in API responses.
type RevenueResponse struct {
	ID         string          `json:"id"`
	OwnerType  string          `json:"owner_type"`
	OwnerID    string          `json:"owner_id"`
	Amount     decimal.Decimal `json:"amount"`
	Source     string          `json:"source,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RevenueFromDomain converts a domain revenue to a response.
func RevenueFromDomain(r *domain.Revenue) *RevenueResponse {
	return &RevenueResponse{
		ID:         r.ID,
		OwnerType:  string(r.Owner.Type),
		OwnerID:    r.Owner.ID,
		Amount:     r.Amount,
		Source:     r.Source,
		ReceivedAt: r.ReceivedAt,
		CreatedAt:  r.CreatedAt,
	}
}

// RevenuesFromDomain converts domain revenues to responses.
func RevenuesFromDomain(revenues []*domain.Revenue) []*RevenueResponse {
	result := make([]*RevenueResponse, len(revenues))
	for i, r := range revenues {
		result[i] = RevenueFromDomain(r)
	}
	return result
}

// ListRevenuesResponse wraps a page of revenues.
type ListRevenuesResponse struct {
	Revenues []*RevenueResponse `json:"revenues"`
	Total    int64              `json:"total"`
}

// GoalResponse represents a savings goal in API responses.
type GoalResponse struct {
	ID           string          `json:"id"`
	OwnerType    string          `json:"owner_type"`
	OwnerID      string          `json:"owner_id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount"`
	Progress     decimal.Decimal `json:"progress"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// GoalFromDomain converts a domain goal to a response.
func GoalFromDomain(g *domain.Goal) *GoalResponse {
	return &GoalResponse{
		ID:           g.ID,
		OwnerType:    string(g.Owner.Type),
		OwnerID:      g.Owner.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		SavedAmount:  g.SavedAmount,
		Progress:     g.Progress(),
		Deadline:     g.Deadline,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// GoalsFromDomain converts domain goals to responses.
func GoalsFromDomain(goals []*domain.Goal) []*GoalResponse {
	result := make([]*GoalResponse, len(goals))
	for i, g := range goals {
		result[i] = GoalFromDomain(g)
	}
	return result
}

// EntityResponse represents a business entity in API responses.
type EntityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// EntityFromDomain converts a domain entity to a response.
func EntityFromDomain(e *domain.Entity) *EntityResponse {
	return &EntityResponse{
		ID:        e.ID,
		Name:      e.Name,
		Kind:      string(e.Kind),
		CreatedAt: e.CreatedAt,
	}
}

// EntitiesFromDomain converts domain entities to responses.
func EntitiesFromDomain(entities []*domain.Entity) []*EntityResponse {
	result := make([]*EntityResponse, len(entities))
	for i, e := range entities {
		result[i] = EntityFromDomain(e)
	}
	return result
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
