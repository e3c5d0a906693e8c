package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/usecase"
	"github.com/iho/finboard/internal/usecase/mocks"
)

func TestEntityUseCase_CreateEntity(t *testing.T) {
	tests := []struct {
		name    string
		actor   *domain.User
		input   usecase.CreateEntityInput
		wantErr error
	}{
		{
			name:  "company",
			actor: member("user-1"),
			input: usecase.CreateEntityInput{Name: "Acme LLC", Kind: domain.EntityCompany},
		},
		{
			name:  "freelance",
			actor: member("user-1"),
			input: usecase.CreateEntityInput{Name: "Side gig", Kind: domain.EntityFreelance},
		},
		{
			name:    "viewer denied",
			actor:   viewer("user-1"),
			input:   usecase.CreateEntityInput{Name: "Acme LLC", Kind: domain.EntityCompany},
			wantErr: domain.ErrInsufficientRole,
		},
		{
			name:    "empty name",
			actor:   member("user-1"),
			input:   usecase.CreateEntityInput{Kind: domain.EntityCompany},
			wantErr: domain.ErrInvalidEntityName,
		},
		{
			name:    "unknown kind",
			actor:   member("user-1"),
			input:   usecase.CreateEntityInput{Name: "Acme LLC", Kind: domain.EntityKind("nonprofit")},
			wantErr: domain.ErrInvalidEntityKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewEntityUseCase(mocks.NewMockEntityRepository(), mocks.NewMockIDGenerator())

			entity, err := uc.CreateEntity(context.Background(), tt.actor, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", entity.OwnerUserID)
			assert.NotEmpty(t, entity.ID)
		})
	}
}

func TestEntityUseCase_GetEntity_ForeignDenied(t *testing.T) {
	uc := usecase.NewEntityUseCase(mocks.NewMockEntityRepository(), mocks.NewMockIDGenerator())
	ctx := context.Background()

	entity, err := uc.CreateEntity(ctx, member("user-1"), usecase.CreateEntityInput{
		Name: "Acme LLC",
		Kind: domain.EntityCompany,
	})
	require.NoError(t, err)

	_, err = uc.GetEntity(ctx, member("user-2"), entity.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	got, err := uc.GetEntity(ctx, member("user-1"), entity.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ID, got.ID)
}

func TestEntityUseCase_ListEntities(t *testing.T) {
	uc := usecase.NewEntityUseCase(mocks.NewMockEntityRepository(), mocks.NewMockIDGenerator())
	ctx := context.Background()

	for _, name := range []string{"Acme LLC", "Side gig"} {
		_, err := uc.CreateEntity(ctx, member("user-1"), usecase.CreateEntityInput{
			Name: name,
			Kind: domain.EntityFreelance,
		})
		require.NoError(t, err)
	}
	_, err := uc.CreateEntity(ctx, member("user-2"), usecase.CreateEntityInput{
		Name: "Other Co",
		Kind: domain.EntityCompany,
	})
	require.NoError(t, err)

	entities, err := uc.ListEntities(ctx, member("user-1"))
	require.NoError(t, err)
	assert.Len(t, entities, 2)
}
