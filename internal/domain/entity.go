package domain

import "time"

// EntityKind classifies a business entity.
type EntityKind string

const (
	EntityCompany   EntityKind = "company"
	EntityFreelance EntityKind = "freelance"
)

// Entity is a business a user tracks finances for, separate from their
// personal records.
type Entity struct {
	ID          string
	OwnerUserID string
	Name        string
	Kind        EntityKind
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields an entity must carry before it is persisted.
func (e *Entity) Validate() error {
	if e.Name == "" {
		return ErrInvalidEntityName
	}
	if e.Kind != EntityCompany && e.Kind != EntityFreelance {
		return ErrInvalidEntityKind
	}
	if e.OwnerUserID == "" {
		return ErrMissingOwner
	}
	return nil
}
