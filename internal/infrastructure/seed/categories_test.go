package seed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

func TestParseCategories(t *testing.T) {
	input := "name;description;active\n" +
		"Livros;Romances e contos\n" +
		"Revistas;;false\n" +
		"Ab;curta\n" +
		"   ;vazio\n" +
		"Jogos\n" +
		"Filmes;x;talvez\n"

	cats, rejected, err := ParseCategories(strings.NewReader(input), true)
	require.NoError(t, err)

	require.Len(t, cats, 2)
	assert.Equal(t, "Livros", cats[0].Name())
	assert.Equal(t, "Romances e contos", cats[0].Description())
	assert.True(t, cats[0].IsActive())
	assert.Equal(t, "Revistas", cats[1].Name())
	assert.Equal(t, "", cats[1].Description())
	assert.False(t, cats[1].IsActive())

	require.Len(t, rejected, 4)
	assert.Equal(t, 4, rejected[0].Line)
	assert.ErrorIs(t, rejected[0].Err, domain.ErrCategoryNameTooShort)
	assert.Equal(t, 5, rejected[1].Line)
	assert.ErrorIs(t, rejected[1].Err, domain.ErrCategoryNameEmpty)
	assert.Equal(t, 6, rejected[2].Line)
	assert.Equal(t, 7, rejected[3].Line)
	assert.Contains(t, rejected[0].Error(), "línea 4")
}

func TestParseCategories_SinEncabezado(t *testing.T) {
	input := "name;una categoría llamada name\n" +
		"Livros;Romances\n"

	cats, rejected, err := ParseCategories(strings.NewReader(input), false)
	require.NoError(t, err)
	require.Empty(t, rejected)
	require.Len(t, cats, 2)
	assert.Equal(t, "name", cats[0].Name())

	// Con encabezado la primera fila se descarta aunque no diga "name".
	cats, _, err = ParseCategories(strings.NewReader("nombre;descripción\nLivros;x\n"), true)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Livros", cats[0].Name())
}

func TestParseCategories_NombreRepetido(t *testing.T) {
	input := "Livros;a\nRevistas;b\nLivros;c\n"

	cats, rejected, err := ParseCategories(strings.NewReader(input), false)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	require.Len(t, rejected, 1)
	assert.Equal(t, 3, rejected[0].Line)
	assert.Contains(t, rejected[0].Error(), "línea 1")
}

func TestNewReader_Latin1(t *testing.T) {
	// "Eletrônicos;Descrição" en ISO-8859-1.
	latin1 := []byte{'E', 'l', 'e', 't', 'r', 0xF4, 'n', 'i', 'c', 'o', 's', ';', 'D', 'e', 's', 'c', 'r', 'i', 0xE7, 0xE3, 'o', '\n'}

	r, err := NewReader(bytes.NewReader(latin1), "ISO-8859-1")
	require.NoError(t, err)
	cats, rejected, err := ParseCategories(r, false)
	require.NoError(t, err)
	require.Empty(t, rejected)
	require.Len(t, cats, 1)
	assert.Equal(t, "Eletrônicos", cats[0].Name())
	assert.Equal(t, "Descrição", cats[0].Description())
}

func TestNewReader_CharsetNoSoportado(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestWriteSQL(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	desc := "D'Artagnan"
	c, err := entity.NewCategory("Livros", &desc,
		entity.WithClock(func() time.Time { return fixed }),
		entity.WithIDGenerator(func() string { return "11111111-1111-1111-1111-111111111111" }),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSQL(&buf, []*entity.Category{c}))

	out := buf.String()
	assert.Contains(t, out, "SELECT '11111111-1111-1111-1111-111111111111', 'Livros', 'D''Artagnan', true, '2024-01-02 03:04:05Z'")
	assert.Contains(t, out, "WHERE NOT EXISTS (SELECT 1 FROM categories WHERE name = 'Livros');")
	assert.NotContains(t, out, "ON CONFLICT (id)")
}

func TestWriteSQL_RepetirCargaNoDuplicaNombres(t *testing.T) {
	// Dos ejecuciones generan ids distintos; el guard por nombre es igual en ambas.
	var first, second bytes.Buffer
	for _, buf := range []*bytes.Buffer{&first, &second} {
		cats, _, err := ParseCategories(strings.NewReader("O'Brien;x\n"), false)
		require.NoError(t, err)
		require.NoError(t, WriteSQL(buf, cats))
	}

	assert.NotEqual(t, first.String(), second.String())
	guard := "WHERE NOT EXISTS (SELECT 1 FROM categories WHERE name = 'O''Brien');"
	assert.Contains(t, first.String(), guard)
	assert.Contains(t, second.String(), guard)
}
