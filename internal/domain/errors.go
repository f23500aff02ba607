package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// ValidationRule identifica una regla de validación de Category.
type ValidationRule int

// Reglas de Category, en el orden en que se evalúan.
const (
	RuleCategoryNameEmpty ValidationRule = iota + 1
	RuleCategoryNameTooShort
	RuleCategoryNameTooLong
	RuleCategoryDescriptionNull
	RuleCategoryDescriptionTooLong
)

var ruleMessages = map[ValidationRule]string{
	RuleCategoryNameEmpty:          "name must not be empty or null.",
	RuleCategoryNameTooShort:       "name must be longer than 3 characters.",
	RuleCategoryNameTooLong:        "name may have at most 255 characters.",
	RuleCategoryDescriptionNull:    "description must not be null.",
	RuleCategoryDescriptionTooLong: "description may have at most 1000 characters.",
}

// Err devuelve un *ValidationError nuevo para la regla.
func (r ValidationRule) Err() *ValidationError {
	return &ValidationError{rule: r, message: ruleMessages[r]}
}

// ValidationError indica que una entidad violó una de sus reglas de validación.
// Es inmutable: cada violación produce una instancia nueva.
type ValidationError struct {
	rule    ValidationRule
	message string
}

func (e *ValidationError) Error() string { return e.message }

// Message identifica exactamente la primera regla incumplida.
func (e *ValidationError) Message() string { return e.message }

func (e *ValidationError) Rule() ValidationRule { return e.rule }

// Is hace que errors.Is coincida con ErrInvalidInput y con el sentinel de la misma regla.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	t, ok := target.(*ValidationError)
	return ok && t.rule == e.rule
}

// Sentinels para errors.Is; Validate nunca los devuelve directamente.
var (
	ErrCategoryNameEmpty          = RuleCategoryNameEmpty.Err()
	ErrCategoryNameTooShort       = RuleCategoryNameTooShort.Err()
	ErrCategoryNameTooLong        = RuleCategoryNameTooLong.Err()
	ErrCategoryDescriptionNull    = RuleCategoryDescriptionNull.Err()
	ErrCategoryDescriptionTooLong = RuleCategoryDescriptionTooLong.Err()
)
