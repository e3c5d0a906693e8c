package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/usecase"
)

// CreateCostRequest represents a request to create a cost record.
type CreateCostRequest struct {
	OwnerType   string          `json:"owner_type,omitempty"`
	OwnerID     string          `json:"owner_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency"`
	IsFixed     bool            `json:"is_fixed"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input. An absent owner means the
// actor's personal scope.
func (r *CreateCostRequest) ToUseCaseInput(actor *domain.User) usecase.CreateCostInput {
	return usecase.CreateCostInput{
		Owner:       ownerOrSelf(r.OwnerType, r.OwnerID, actor),
		Amount:      r.Amount,
		Frequency:   r.Frequency,
		IsFixed:     r.IsFixed,
		Description: r.Description,
	}
}

// UpdateCostRequest represents a partial cost update. Only fields
// present in the payload are changed.
type UpdateCostRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Frequency   *string          `json:"frequency,omitempty"`
	Active      *bool            `json:"active,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCostRequest) ToUseCaseInput() usecase.UpdateCostInput {
	return usecase.UpdateCostInput{
		Amount:      r.Amount,
		Frequency:   r.Frequency,
		Active:      r.Active,
		Description: r.Description,
	}
}

// ImportCostRecord is one raw row of a legacy export. The loose types
// pass old representations through untouched.
type ImportCostRecord struct {
	Amount      LooseAmount    `json:"amount"`
	Frequency   LooseFrequency `json:"frequency"`
	IsFixed     LooseBool      `json:"is_fixed"`
	Active      LooseBool      `json:"active"`
	Description string         `json:"description,omitempty"`
	CreatedAt   *time.Time     `json:"created_at,omitempty"`
}

// ImportCostsRequest represents a legacy import request.
type ImportCostsRequest struct {
	OwnerType string             `json:"owner_type,omitempty"`
	OwnerID   string             `json:"owner_id,omitempty"`
	Records   []ImportCostRecord `json:"records"`
}

// ToUseCaseInput converts to use case input.
func (r *ImportCostsRequest) ToUseCaseInput(actor *domain.User) usecase.ImportInput {
	records := make([]usecase.ImportRecord, len(r.Records))
	for i, rec := range r.Records {
		records[i] = usecase.ImportRecord{
			Amount:      string(rec.Amount),
			Frequency:   string(rec.Frequency),
			IsFixed:     rec.IsFixed.Raw(),
			Active:      rec.Active.Raw(),
			Description: rec.Description,
		}
		if rec.CreatedAt != nil {
			records[i].CreatedAt = *rec.CreatedAt
		}
	}
	return usecase.ImportInput{
		Owner:   ownerOrSelf(r.OwnerType, r.OwnerID, actor),
		Records: records,
	}
}

// CreateRevenueRequest represents a request to record a revenue.
type CreateRevenueRequest struct {
	OwnerType  string          `json:"owner_type,omitempty"`
	OwnerID    string          `json:"owner_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Source     string          `json:"source,omitempty"`
	ReceivedAt *time.Time      `json:"received_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRevenueRequest) ToUseCaseInput(actor *domain.User) usecase.CreateRevenueInput {
	input := usecase.CreateRevenueInput{
		Owner:  ownerOrSelf(r.OwnerType, r.OwnerID, actor),
		Amount: r.Amount,
		Source: r.Source,
	}
	if r.ReceivedAt != nil {
		input.ReceivedAt = *r.ReceivedAt
	}
	return input
}

// CreateGoalRequest represents a request to create a savings goal.
type CreateGoalRequest struct {
	OwnerType    string          `json:"owner_type,omitempty"`
	OwnerID      string          `json:"owner_id,omitempty"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateGoalRequest) ToUseCaseInput(actor *domain.User) usecase.CreateGoalInput {
	return usecase.CreateGoalInput{
		Owner:        ownerOrSelf(r.OwnerType, r.OwnerID, actor),
		Name:         r.Name,
		TargetAmount: r.TargetAmount,
		Deadline:     r.Deadline,
	}
}

// AddSavingsRequest represents money put toward a goal.
type AddSavingsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreateEntityRequest represents a request to register a business entity.
type CreateEntityRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntityRequest) ToUseCaseInput() usecase.CreateEntityInput {
	return usecase.CreateEntityInput{
		Name: r.Name,
		Kind: domain.EntityKind(r.Kind),
	}
}

// ownerOrSelf resolves the owner scope of a request. No owner in the
// payload means the actor's own personal records.
func ownerOrSelf(ownerType, ownerID string, actor *domain.User) domain.OwnerKey {
	if ownerID == "" {
		return domain.UserOwner(actor.ID)
	}
	if domain.OwnerType(ownerType) == domain.OwnerEntity {
		return domain.EntityOwner(ownerID)
	}
	return domain.UserOwner(ownerID)
}
