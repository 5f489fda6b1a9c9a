package matcher

import (
	"fmt"

	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

// DefaultEdificios returns the alias dictionary for the Facultad Tecnológica
// campus, in the match order the dictionary was curated around. Callers that
// need a different campus inject their own dictionary.
func DefaultEdificios() []model.Edificio {
	return []model.Edificio{
		{
			Nombre:  "TECHNE",
			Aliases: []string{"TECHNE", "TECNE", "TECHNE BUILDING"},
			Salones: []model.Salon{
				{Nombre: "LABORATORIO OPTICA Y MODERNA", Aliases: []string{"LAB OPTICA", "LABORATORIO OPTICA"}},
				{Nombre: "LABORATORIO DE BASES DE DATOS AVANZADAS", Aliases: []string{"LAB BASES DATOS", "LABORATORIO BASES"}},
				{Nombre: "LABORATORIO DE SISTEMAS DISTRIBUIDOS", Aliases: []string{"LAB SISTEMAS", "LABORATORIO SISTEMAS"}},
				{Nombre: "LABORATORIO REDES Y TELEMATICA", Aliases: []string{"LAB REDES", "LABORATORIO REDES"}},
				{Nombre: "LABORATORIO DE INGENIERIA DE SOFTWARE", Aliases: []string{"LAB SOFTWARE", "LABORATORIO SOFTWARE"}},
				{Nombre: "LABORATORIO FISICA MECANICA 1", Aliases: []string{"LAB FISICA 1"}},
				{Nombre: "LABORATORIO FISICA MECANICA 3", Aliases: []string{"LAB FISICA 3"}},
				{Nombre: "LABORATORIO DE ELECTROMAGNETISMO/CIENCIAS BASICAS", Aliases: []string{"LAB ELECTROMAGNETISMO", "LABORATORIO DE ELECTROMAGNETISMO /CIENCIAS BASICAS"}},
				{Nombre: "LABORATORIO DE SIMULACION Y REALIDAD VIRTUAL", Aliases: []string{"LAB SIMULACION"}},
				{Nombre: "LABORATORIO DE INTELIGENCIA ARTIFICIAL", Aliases: []string{"LAB IA"}},
				{Nombre: "SALA DE INFORMATICA 1", Aliases: []string{"SALA INFO 1", "INFORMATICA 1"}},
				{Nombre: "SALA DE INFORMATICA 2", Aliases: []string{"SALA INFO 2", "INFORMATICA 2"}},
				{Nombre: "SALA DE INFORMATICA 3", Aliases: []string{"SALA INFO 3", "INFORMATICA 3"}},
				{Nombre: "SALA DE SOFTWARE DE CIENCIAS BASICAS", Aliases: []string{"SALA SOFTWARE", "SOFTWARE CIENCIAS"}},
			},
		},
		{
			Nombre:  "BLOQUE 1-2-3-4",
			Aliases: []string{"BLOQUE 1, 2, 3 Y 4", "BLOQUE 1-4", "B-1", "B-2", "B-3"},
			Salones: append(
				aulasDeBloques(),
				// Salón genérico sin bloque declarado en el PDF.
				model.Salon{Nombre: "AULA 503", Aliases: []string{"AULA 503", "BLOQUE 1, 2, 3 Y 4 AULA 503"}},
			),
		},
		{
			Nombre:  "BLOQUE 9",
			Aliases: []string{"BLOQUE 9", "BLQ 9"},
			Salones: aulasNumeradas([]int{101, 102, 103, 104, 105, 106, 201, 202, 203, 204, 205, 206}),
		},
		{
			Nombre:  "BLOQUE 11-12",
			Aliases: []string{"BLOQUE 11-12", "BLOQUE 11 Y 12"},
			Salones: []model.Salon{
				{Nombre: "SALON 1", Aliases: []string{"SALON 1"}},
				{Nombre: "SALON 2", Aliases: []string{"SALON 2"}},
				{Nombre: "AULA DE INFORMATICA 1", Aliases: []string{"AULA DE INFORMATICA 2"}},
				{Nombre: "AULA DE INFORMATICA 2", Aliases: []string{"AULA DE INFORMATICA 2"}},
				{Nombre: "AULA MULTIPLE 1", Aliases: []string{"MULTIPLE 1", "AULA MULT 1"}},
				{Nombre: "AULA MULTIPLE 2", Aliases: []string{"MULTIPLE 2", "AULA MULT 2"}},
			},
		},
		{
			Nombre:  "BLOQUE 13 - CAFETERIA",
			Aliases: []string{"BLOQUE 13 - CAFETERIA", "BLOQUE 13", "CAFETERIA"},
			Salones: []model.Salon{
				{Nombre: "SALA DE INFORMATICA 4", Aliases: []string{"SALA INFO 4", "INFORMATICA 4"}},
				{Nombre: "SALA DE INFORMATICA 5", Aliases: []string{"SALA INFO 5", "INFORMATICA 5"}},
				{Nombre: "SALA DE INFORMATICA 6", Aliases: []string{"SALA INFO 6", "INFORMATICA 6"}},
				{Nombre: "SALA DE INFORMATICA 7", Aliases: []string{"SALA INFO 7", "INFORMATICA 7"}},
			},
		},
		{
			Nombre:  "BLOQUE 5",
			Aliases: []string{"BLOQUE 5", "BLQ 5"},
			Salones: []model.Salon{
				{Nombre: "LABORATORIO DE FISICA", Aliases: []string{"LAB FISICA"}},
				{Nombre: "SALA DE SOFTWARE CIENCIAS BASICAS", Aliases: []string{"SALA SOFTWARE CIENCIAS"}},
				{Nombre: "SALON 105", Aliases: []string{"SALON 105", "AULA 105"}},
			},
		},
	}
}

// aulasDeBloques enumerates the numbered aulas of bloques B-1 through B-4.
// B-1 to B-3 have five floors of four aulas each; B-4 only three.
func aulasDeBloques() []model.Salon {
	var salones []model.Salon
	pisos := map[string]int{"B-1": 5, "B-2": 5, "B-3": 5, "B-4": 3}
	for _, bloque := range []string{"B-1", "B-2", "B-3", "B-4"} {
		for piso := 1; piso <= pisos[bloque]; piso++ {
			for aula := 1; aula <= 4; aula++ {
				numero := piso*100 + aula
				nombre := fmt.Sprintf("%s AULA %d", bloque, numero)
				salones = append(salones, model.Salon{
					Nombre:  nombre,
					Aliases: []string{nombre, fmt.Sprintf("AULA %d %s", numero, bloque)},
				})
			}
		}
	}
	return salones
}

func aulasNumeradas(numeros []int) []model.Salon {
	salones := make([]model.Salon, 0, len(numeros))
	for _, n := range numeros {
		nombre := fmt.Sprintf("AULA %d", n)
		salones = append(salones, model.Salon{Nombre: nombre, Aliases: []string{nombre}})
	}
	return salones
}
