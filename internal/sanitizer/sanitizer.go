// Package sanitizer repairs the raw schedule dump before parsing: it fixes
// the systematic encoding corruption and rejoins records the PDF text
// extraction wrapped across several physical lines.
package sanitizer

import (
	"regexp"
	"strings"
)

var (
	// A schedule record starts with a numeric code followed by an uppercase word.
	horarioStartRe = regexp.MustCompile(`^\d+\s+[A-Z]`)
	// Day token followed by an hour range, e.g. "MARTES 8-10".
	diaHoraRe = regexp.MustCompile(`\b(LUNES|MARTES|MIERCOLES|JUEVES|VIERNES|SABADO)\s+\d+-\d+\b`)
	// At least one location keyword.
	ubicacionRe = regexp.MustCompile(`\b(TECNOLOGICA|BLOQUE|TECHNE|AULA|LABORATORIO)\b`)
	// Ends in a run of two or more uppercase words, the shape of a person name.
	nombreFinalRe = regexp.MustCompile(`\b[A-ZÑ]{2,}\s+[A-ZÑ]{2,}(\s+[A-ZÑ]{2,})*\s*$`)
)

var prefijosEstructura = []string{
	"PROYECTO CURRICULAR",
	"ESPACIO ACADEMICO",
	"GRP.",
	"INSCRITOS",
	"Cod. Espacio Academico",
}

// Sanitize repairs encoding artifacts and reconstructs wrapped schedule
// lines. The result is newline-separated logical records; running Sanitize
// on its own output changes nothing.
func Sanitize(raw string) string {
	// The source document corrupts every Ñ into a literal '?'.
	repaired := strings.ReplaceAll(raw, "?", "Ñ")

	var lines []string
	for _, l := range strings.Split(repaired, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	var out []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if esLineaEstructura(line) {
			out = append(out, line)
			continue
		}

		if esInicioHorario(line) {
			completa := line
			j := i + 1
			for j < len(lines) && !esLineaCompleta(completa) && esContinuacion(lines[j]) {
				completa += " " + lines[j]
				j++
			}
			out = append(out, completa)
			i = j - 1
			continue
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func esLineaEstructura(line string) bool {
	for _, p := range prefijosEstructura {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func esInicioHorario(line string) bool {
	return horarioStartRe.MatchString(line)
}

// esLineaCompleta reports whether an accumulated record already carries day,
// hour range, a location keyword and a trailing name-shaped suffix. That
// suffix is the only reliable end-of-record signal in the dump.
func esLineaCompleta(line string) bool {
	return diaHoraRe.MatchString(line) &&
		ubicacionRe.MatchString(line) &&
		nombreFinalRe.MatchString(line)
}

func esContinuacion(line string) bool {
	return !esLineaEstructura(line) && !esInicioHorario(line)
}
