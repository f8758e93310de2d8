package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/application/usecase"
	"github.com/jhoicas/miinventory-api/internal/domain"
)

func TestUserUseCase_CreateNormalizaEmailYGuardaPerfil(t *testing.T) {
	s := newStore()
	uc := usecase.NewUserUseCase(s.users)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:    "Luis",
		Email:   "  Luis@Example.COM ",
		Age:     31,
		Profile: &dto.ProfileDTO{FirstName: "Luis", Phone: "300"},
	})
	require.NoError(t, err)
	assert.Equal(t, "luis@example.com", out.Email)
	assert.Equal(t, "300", out.Profile.Phone)

	found, err := uc.GetByEmail(context.Background(), "LUIS@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, out.ID, found.ID)
}

func TestUserUseCase_CreateRechaza(t *testing.T) {
	s := newStore()
	s.seed()
	uc := usecase.NewUserUseCase(s.users)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Name: "X", Email: "no-es-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "X", Email: "x@example.com", Age: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "Otra Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserUseCase_Update(t *testing.T) {
	s := newStore()
	s.seed()
	uc := usecase.NewUserUseCase(s.users)
	ctx := context.Background()

	out, err := uc.Update(ctx, "U", dto.UpdateUserRequest{Age: ptr(40)})
	require.NoError(t, err)
	assert.Equal(t, 40, out.Age)
	assert.Equal(t, "Ana", out.Name)

	out, err = uc.Update(ctx, "NO", dto.UpdateUserRequest{Age: ptr(1)})
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = uc.Update(ctx, "U", dto.UpdateUserRequest{Name: ptr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
