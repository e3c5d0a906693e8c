package domain

import "errors"

var (
	// Cost errors
	ErrCostNotFound     = errors.New("cost not found")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrMissingOwner     = errors.New("record has no owner")

	// Revenue errors
	ErrRevenueNotFound = errors.New("revenue not found")

	// Goal errors
	ErrGoalNotFound    = errors.New("goal not found")
	ErrInvalidGoalName = errors.New("goal name cannot be empty")

	// Entity errors
	ErrEntityNotFound    = errors.New("entity not found")
	ErrInvalidEntityName = errors.New("entity name cannot be empty")
	ErrInvalidEntityKind = errors.New("invalid entity kind")

	// Ownership errors
	ErrNotOwner = errors.New("record belongs to a different owner")
)
