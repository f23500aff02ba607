package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Límites de longitud de Category (en caracteres Unicode).
const (
	CategoryNameMinLength        = 3
	CategoryNameMaxLength        = 255
	CategoryDescriptionMaxLength = 1000
)

// Category representa una categoría del catálogo (productos o contenidos).
// Sus campos son privados: solo se modifica a través de Activate, Deactivate y Update,
// que nunca dejan la entidad en un estado inválido.
type Category struct {
	id          string
	name        string
	description *string
	active      bool
	createdAt   time.Time
}

// CategoryOption ajusta la construcción de una Category.
type CategoryOption func(*categoryOptions)

type categoryOptions struct {
	active bool
	now    func() time.Time
	newID  func() string
}

// WithActive fija el estado inicial (por defecto activa).
func WithActive(active bool) CategoryOption {
	return func(o *categoryOptions) { o.active = active }
}

// WithClock inyecta el reloj usado para CreatedAt.
func WithClock(now func() time.Time) CategoryOption {
	return func(o *categoryOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator inyecta el generador de identificadores.
func WithIDGenerator(newID func() string) CategoryOption {
	return func(o *categoryOptions) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// NewCategory crea una categoría válida o devuelve un *domain.ValidationError.
// description nil equivale a una descripción ausente y es rechazada.
// CreatedAt se trunca a microsegundos, la precisión de TIMESTAMPTZ.
func NewCategory(name string, description *string, opts ...CategoryOption) (*Category, error) {
	o := categoryOptions{
		active: true,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := Category{
		id:          o.newID(),
		name:        name,
		description: cloneString(description),
		active:      o.active,
		createdAt:   o.now().Truncate(time.Microsecond),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.id == "" {
		return nil, fmt.Errorf("id de categoría vacío: %w", domain.ErrInvalidInput)
	}
	return &c, nil
}

// RestoreCategory reconstruye una categoría ya persistida (repositorios).
func RestoreCategory(id, name, description string, active bool, createdAt time.Time) (*Category, error) {
	if id == "" || createdAt.IsZero() {
		return nil, fmt.Errorf("categoría persistida sin id o fecha de creación: %w", domain.ErrInvalidInput)
	}
	c := Category{
		id:          id,
		name:        name,
		description: &description,
		active:      active,
		createdAt:   createdAt,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Category) ID() string           { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) IsActive() bool       { return c.active }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// Description devuelve la descripción; una Category válida siempre la tiene.
func (c *Category) Description() string {
	if c.description == nil {
		return ""
	}
	return *c.description
}

// Activate marca la categoría como activa.
func (c *Category) Activate() error {
	return c.commit(func(next *Category) { next.active = true })
}

// Deactivate marca la categoría como inactiva.
func (c *Category) Deactivate() error {
	return c.commit(func(next *Category) { next.active = false })
}

// Update reemplaza el nombre y, si description no es nil, la descripción.
// Un puntero a "" es una descripción explícita y válida.
func (c *Category) Update(name string, description *string) error {
	return c.commit(func(next *Category) {
		next.name = name
		if description != nil {
			next.description = cloneString(description)
		}
	})
}

// commit aplica mutate sobre una copia y solo la adopta si sigue siendo válida.
func (c *Category) commit(mutate func(next *Category)) error {
	next := *c
	mutate(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Validate evalúa las reglas en orden fijo y devuelve la primera violada.
// No corrige valores: el nombre se guarda tal cual, aunque se evalúe recortado.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.name) == "" {
		return domain.RuleCategoryNameEmpty.Err()
	}
	nameLen := utf8.RuneCountInString(c.name)
	if nameLen < CategoryNameMinLength {
		return domain.RuleCategoryNameTooShort.Err()
	}
	if nameLen > CategoryNameMaxLength {
		return domain.RuleCategoryNameTooLong.Err()
	}
	if c.description == nil {
		return domain.RuleCategoryDescriptionNull.Err()
	}
	if utf8.RuneCountInString(*c.description) > CategoryDescriptionMaxLength {
		return domain.RuleCategoryDescriptionTooLong.Err()
	}
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
