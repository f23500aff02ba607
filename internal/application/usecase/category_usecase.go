package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CategoryTxRunner ejecuta una unidad de trabajo sobre categorías de forma serializada
// (transacción en PostgreSQL, mutex en memoria).
type CategoryTxRunner interface {
	RunCategory(ctx context.Context, fn func(repo repository.CategoryRepository) error) error
}

// CategoryUseCase casos de uso para categorías. Los errores de validación de la entidad
// (*domain.ValidationError) se propagan sin modificar.
type CategoryUseCase struct {
	repo       repository.CategoryRepository
	tx         CategoryTxRunner
	entityOpts []entity.CategoryOption
}

// NewCategoryUseCase construye el caso de uso. opts se aplican a cada categoría creada
// (por ejemplo entity.WithClock en tests).
func NewCategoryUseCase(repo repository.CategoryRepository, tx CategoryTxRunner, opts ...entity.CategoryOption) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx, entityOpts: opts}
}

// Create crea una nueva categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	opts := append([]entity.CategoryOption{}, uc.entityOpts...)
	if in.Active != nil {
		opts = append(opts, entity.WithActive(*in.Active))
	}
	category, err := entity.NewCategory(in.Name, in.Description, opts...)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update cambia nombre y, si viene, descripción.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	return uc.mutate(ctx, id, func(c *entity.Category) error {
		return c.Update(in.Name, in.Description)
	})
}

// Activate activa una categoría.
func (uc *CategoryUseCase) Activate(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	return uc.mutate(ctx, id, (*entity.Category).Activate)
}

// Deactivate desactiva una categoría.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	return uc.mutate(ctx, id, (*entity.Category).Deactivate)
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// mutate carga, modifica y persiste la categoría dentro de una misma unidad de trabajo.
func (uc *CategoryUseCase) mutate(ctx context.Context, id string, fn func(*entity.Category) error) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := uc.tx.RunCategory(ctx, func(repo repository.CategoryRepository) error {
		category, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(category); err != nil {
			return err
		}
		if err := repo.Update(ctx, category); err != nil {
			return err
		}
		out = toCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}
