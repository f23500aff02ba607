// seed_categories genera un script SQL de carga inicial de categorías a partir de un CSV
// "name;description[;active]". Cada fila se valida con las mismas reglas que la API;
// las filas rechazadas se informan por stderr con la regla incumplida.
//
// Uso: go run ./cmd/seed_categories [-header] [-charset iso-8859-1] [-out ruta.sql] [categorias.csv]
// Por defecto lee categorias.csv en UTF-8 y escribe seeds/categorias_seed.sql.
// El script se aplica a mano (psql -f) y puede repetirse: omite los nombres ya cargados.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Catalogo-api/internal/infrastructure/seed"
)

func main() {
	charset := flag.String("charset", "utf-8", "codificación del CSV (utf-8, iso-8859-1, windows-1252)")
	outFlag := flag.String("out", "", "ruta del script SQL de salida")
	header := flag.Bool("header", false, "la primera fila del CSV es un encabezado")
	flag.Parse()

	csvPath := "categorias.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r, err := seed.NewReader(f, *charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Charset: %v\n", err)
		os.Exit(1)
	}
	categories, rejected, err := seed.ParseCategories(r, *header)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Procesar CSV: %v\n", err)
		os.Exit(1)
	}
	for _, rowErr := range rejected {
		fmt.Fprintf(os.Stderr, "Rechazada %v\n", rowErr)
	}

	outPath := *outFlag
	if outPath == "" {
		outPath = filepath.Join(findModuleRoot(), "seeds", "categorias_seed.sql")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := seed.WriteSQL(out, categories); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d categorías, %d rechazadas\n", outPath, len(categories), len(rejected))
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
