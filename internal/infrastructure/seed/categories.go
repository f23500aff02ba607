// Package seed convierte listados de categorías (CSV) en scripts SQL de carga inicial.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// RowError describe una fila rechazada y la regla que incumplió.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("línea %d: %v", e.Line, e.Err)
}

// NewReader decodifica input según charset ("", "utf-8", "iso-8859-1", "windows-1252").
func NewReader(input io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", "utf-8", "utf8":
		return input, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
}

// ParseCategories lee filas "name;description[;active]" y construye cada categoría con
// entity.NewCategory. Las filas inválidas se devuelven en rejected sin detener el proceso.
// Con hasHeader la primera fila se descarta sin mirar su contenido.
// Un nombre repetido dentro del archivo se rechaza: la carga se identifica por nombre.
func ParseCategories(r io.Reader, hasHeader bool, opts ...entity.CategoryOption) (categories []*entity.Category, rejected []RowError, err error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	seen := make(map[string]int)
	line := 0
	for {
		record, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		line++
		if readErr != nil {
			return nil, nil, fmt.Errorf("leer CSV: %w", readErr)
		}
		if line == 1 && hasHeader {
			continue
		}
		if len(record) < 2 || len(record) > 3 {
			rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("se esperaban 2 o 3 columnas, hay %d", len(record))})
			continue
		}

		rowOpts := append([]entity.CategoryOption{}, opts...)
		if len(record) == 3 {
			active, parseErr := strconv.ParseBool(strings.TrimSpace(record[2]))
			if parseErr != nil {
				rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("active inválido: %q", record[2])})
				continue
			}
			rowOpts = append(rowOpts, entity.WithActive(active))
		}

		description := record[1]
		c, newErr := entity.NewCategory(record[0], &description, rowOpts...)
		if newErr != nil {
			rejected = append(rejected, RowError{Line: line, Err: newErr})
			continue
		}
		if first, dup := seen[c.Name()]; dup {
			rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("nombre repetido (línea %d)", first)})
			continue
		}
		seen[c.Name()] = line
		categories = append(categories, c)
	}
	return categories, rejected, nil
}

// WriteSQL escribe un INSERT por categoría que no hace nada si ya existe una con el
// mismo nombre, así el script puede ejecutarse varias veces aunque los ids sean nuevos.
func WriteSQL(w io.Writer, categories []*entity.Category) error {
	if _, err := io.WriteString(w, "-- Carga inicial de categorías\n-- Generado por cmd/seed_categories\n\n"); err != nil {
		return err
	}
	for _, c := range categories {
		name := escapeSQL(c.Name())
		_, err := fmt.Fprintf(w,
			"INSERT INTO categories (id, name, description, active, created_at)\nSELECT '%s', '%s', '%s', %t, '%s'\nWHERE NOT EXISTS (SELECT 1 FROM categories WHERE name = '%s');\n",
			c.ID(), name, escapeSQL(c.Description()), c.IsActive(),
			c.CreatedAt().UTC().Format("2006-01-02 15:04:05.999999Z07:00"), name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
