package model

import "time"

// DiaSemana is the day-of-week token as it appears in the source document.
type DiaSemana string

const (
	Lunes     DiaSemana = "LUNES"
	Martes    DiaSemana = "MARTES"
	Miercoles DiaSemana = "MIERCOLES"
	Jueves    DiaSemana = "JUEVES"
	Viernes   DiaSemana = "VIERNES"
	Sabado    DiaSemana = "SABADO"
	Domingo   DiaSemana = "DOMINGO"
)

// Dias lists the valid day tokens in document order.
var Dias = []DiaSemana{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

// ParseDia maps a raw token to a DiaSemana. Unrecognized tokens report false.
func ParseDia(token string) (DiaSemana, bool) {
	for _, d := range Dias {
		if token == string(d) {
			return d, true
		}
	}
	return "", false
}

// DiaDe maps a timestamp's weekday (Sunday=0 .. Saturday=6) to its DiaSemana.
func DiaDe(t time.Time) DiaSemana {
	porWeekday := []DiaSemana{Domingo, Lunes, Martes, Miercoles, Jueves, Viernes, Sabado}
	return porWeekday[int(t.Weekday())]
}
