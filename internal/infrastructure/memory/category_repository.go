package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ usecase.CategoryTxRunner      = (*CategoryRepo)(nil)
)

// CategoryRepo guarda categorías en memoria (STORAGE_DRIVER=memory y tests).
// Almacena copias: los llamadores nunca comparten una instancia con el repositorio.
type CategoryRepo struct {
	mu      sync.RWMutex
	entries map[string]entity.Category

	// txMu serializa las unidades de trabajo de RunCategory.
	txMu sync.Mutex
}

// NewCategoryRepository crea un repositorio vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{entries: make(map[string]entity.Category)}
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[category.ID()]; exists {
		return domain.ErrDuplicate
	}
	r.entries[category.ID()] = *category
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.entries[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[category.ID()]; !exists {
		return domain.ErrNotFound
	}
	r.entries[category.ID()] = *category
	return nil
}

// List ordena como el adaptador PostgreSQL: created_at descendente y luego id.
// limit <= 0 devuelve una página vacía y un offset negativo cuenta desde 0.
func (r *CategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, int, error) {
	r.mu.RLock()
	all := make([]*entity.Category, 0, len(r.entries))
	for _, c := range r.entries {
		c := c
		all = append(all, &c)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt().Equal(all[j].CreatedAt()) {
			return all[i].CreatedAt().After(all[j].CreatedAt())
		}
		return all[i].ID() < all[j].ID()
	})

	total := len(all)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= total {
		return []*entity.Category{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return domain.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// RunCategory ejecuta fn en exclusión mutua con otras unidades de trabajo.
// No hay rollback: fn solo persiste después de validar la entidad.
func (r *CategoryRepo) RunCategory(_ context.Context, fn func(repo repository.CategoryRepository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(r)
}
