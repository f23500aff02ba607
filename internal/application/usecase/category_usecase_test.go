package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

func newUseCase(opts ...entity.CategoryOption) *usecase.CategoryUseCase {
	repo := memory.NewCategoryRepository()
	return usecase.NewCategoryUseCase(repo, repo, opts...)
}

func TestCategoryUseCase_Create(t *testing.T) {
	fixed := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	uc := newUseCase(entity.WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Livros", Description: strPtr("")})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Livros", out.Name)
	assert.Equal(t, "", out.Description)
	assert.True(t, out.Active)
	assert.Equal(t, fixed, out.CreatedAt)

	got, err := uc.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestCategoryUseCase_CreateInactiva(t *testing.T) {
	uc := newUseCase()
	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{
		Name: "Livros", Description: strPtr("x"), Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, out.Active)
}

func TestCategoryUseCase_CreatePropagaValidationError(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Livros"})
	assert.ErrorIs(t, err, domain.ErrCategoryDescriptionNull)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "  ", Description: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrCategoryNameEmpty)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items, "una categoría inválida no debe persistirse")
}

func TestCategoryUseCase_GetByIDNoEncontrada(t *testing.T) {
	uc := newUseCase()
	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_Update(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Livros", Description: strPtr("Descricao")})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateCategoryRequest{Name: "Revistas"})
	require.NoError(t, err)
	assert.Equal(t, "Revistas", out.Name)
	assert.Equal(t, "Descricao", out.Description, "sin descripción se conserva la anterior")

	out, err = uc.Update(ctx, created.ID, dto.UpdateCategoryRequest{Name: "Revistas", Description: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", out.Description)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestCategoryUseCase_UpdateInvalidoNoPersiste(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Livros", Description: strPtr("Descricao")})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, dto.UpdateCategoryRequest{
		Name: "Revistas", Description: strPtr(strings.Repeat("a", 1001)),
	})
	assert.ErrorIs(t, err, domain.ErrCategoryDescriptionTooLong)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCategoryUseCase_UpdateNoEncontrada(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateCategoryRequest{Name: "Revistas"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_ActivateDeactivate(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Livros", Description: strPtr("x")})
	require.NoError(t, err)

	out, err := uc.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, out.Active)

	out, err = uc.Activate(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, out.Active)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
}

func TestCategoryUseCase_ListPaginada(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	uc := newUseCase(entity.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}))
	ctx := context.Background()
	for _, name := range []string{"Primera", "Segunda", "Tercera"} {
		_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: name, Description: strPtr("")})
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Tercera", out.Items[0].Name, "más reciente primero")
	assert.Equal(t, "Segunda", out.Items[1].Name)
	assert.Equal(t, 3, out.Page.Total)

	out, err = uc.List(ctx, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Primera", out.Items[0].Name)

	out, err = uc.List(ctx, dto.PageRequest{Limit: 500, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, dto.MaxPageLimit, out.Page.Limit)
}

func TestCategoryUseCase_Delete(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Livros", Description: strPtr("x")})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
