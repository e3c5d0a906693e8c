package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iho/finboard/internal/domain"
)

// UserUseCase handles registration and authentication.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
}

func NewUserUseCase(userRepo UserRepository, idGen IDGenerator) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, idGen: idGen}
}

// RegisterUserInput carries the fields needed to create an account.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
}

// RegisterUser creates a user with a bcrypt-hashed password. The first
// account in an empty household becomes the owner; everyone after that
// may only register as member or viewer, the owner grants further roles
// through UpdateUserRole.
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleMember
	}
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	existing, err := uc.userRepo.List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	switch {
	case len(existing) == 0:
		role = domain.RoleOwner
	case role == domain.RoleOwner:
		return nil, domain.ErrInvalidRole
	}

	_, err = uc.userRepo.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          input.Email,
		Name:           input.Name,
		HashedPassword: hashedPassword,
		Role:           role,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// UpdateUserRole changes another member's role. Only the household
// owner can do this, and owners cannot demote themselves.
func (uc *UserUseCase) UpdateUserRole(ctx context.Context, actor *domain.User, userID string, role domain.Role) (*domain.User, error) {
	if !actor.Role.CanDelete() {
		return nil, domain.ErrInsufficientRole
	}
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}
	if actor.ID == userID && role != domain.RoleOwner {
		return nil, domain.ErrInvalidRole
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// Authenticate checks credentials and returns the user. Unknown emails,
// deactivated accounts and wrong passwords all come back as
// domain.ErrUnauthorized so callers cannot probe which one failed.
func (uc *UserUseCase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	user.HashedPassword = ""
	return user, nil
}

// GetUser fetches a user by ID with the password hash stripped.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
