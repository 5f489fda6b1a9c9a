// Package csvio loads the external reference inputs (instructor roster,
// building dictionary overrides) and exports parsed schedule data as CSV.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

// LoadDocentes reads the newline-delimited instructor roster. Order is
// preserved: the matcher resolves against the roster first-match-wins.
func LoadDocentes(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leyendo lista de docentes %s: %w", path, err)
	}

	var docentes []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			docentes = append(docentes, line)
		}
	}
	return docentes, nil
}

// LoadEdificios reads a building dictionary override from CSV. Rows sharing
// an edificio fold into one entry; declaration order in the file becomes the
// match order.
func LoadEdificios(path string, delim rune) ([]model.Edificio, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo diccionario de edificios %s: %w", path, err)
	}
	defer f.Close()

	rows := []*model.EdificioCSVRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("interpretando diccionario de edificios %s: %w", path, err)
	}

	var edificios []model.Edificio
	indice := make(map[string]int)

	for _, row := range rows {
		nombre := strings.TrimSpace(row.Edificio)
		if nombre == "" {
			continue
		}

		i, visto := indice[nombre]
		if !visto {
			edificios = append(edificios, model.Edificio{
				Nombre:  nombre,
				Aliases: splitAliases(row.EdificioAliases),
			})
			i = len(edificios) - 1
			indice[nombre] = i
		}

		if salon := strings.TrimSpace(row.Salon); salon != "" {
			edificios[i].Salones = append(edificios[i].Salones, model.Salon{
				Nombre:  salon,
				Aliases: splitAliases(row.SalonAliases),
			})
		}
	}

	return edificios, nil
}

func splitAliases(raw string) []string {
	var aliases []string
	for _, a := range strings.Split(raw, "|") {
		if a = strings.TrimSpace(a); a != "" {
			aliases = append(aliases, a)
		}
	}
	return aliases
}
