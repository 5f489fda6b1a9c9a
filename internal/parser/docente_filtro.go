package parser

import (
	"strings"
	"unicode/utf8"
)

// palabrasUbicacion is the closed vocabulary of location/subject tokens that
// can precede the docente name in the combined fragment. Instructor names are
// the only open vocabulary, which is what the pre-filter exploits.
var palabrasUbicacion = map[string]struct{}{
	"TECNOLOGICA": {}, "BLOQUE": {}, "AULA": {}, "SALA": {}, "LABORATORIO": {},
	"DE": {}, "Y": {}, "TECHNE": {}, "OPTICA": {}, "MODERNA": {}, "BASES": {},
	"DATOS": {}, "AVANZADAS": {}, "SISTEMAS": {}, "DISTRIBUIDOS": {}, "REDES": {},
	"TELEMATICA": {}, "INGENIERIA": {}, "SOFTWARE": {}, "INFORMATICA": {},
	"CIENCIAS": {}, "BASICAS": {}, "FISICA": {}, "MECANICA": {},
	"ELECTROMAGNETISMO": {}, "SIMULACION": {}, "REALIDAD": {}, "VIRTUAL": {},
	"INTELIGENCIA": {}, "ARTIFICIAL": {},
	"1": {}, "2": {}, "3": {}, "4": {}, "5": {}, "6": {}, "7": {}, "8": {},
	"9": {}, "10": {}, "11": {}, "12": {}, "13": {},
	"B-1": {}, "B-2": {}, "B-3": {},
	"MULTIPLE": {}, "CAFETERIA": {},
}

// extraerParteDocente drops the location prefix of the combined fragment and
// keeps the trailing words that form the instructor name. The fragment has no
// delimiter, so the cut point is the first pair of consecutive name-shaped
// words outside the location vocabulary. Without such a pair the trailing
// four words are used.
func extraerParteDocente(texto string) string {
	words := strings.Split(texto, " ")

	inicio := -1
	for i := 0; i < len(words)-1; i++ {
		if _, esUbicacion := palabrasUbicacion[words[i]]; esUbicacion {
			continue
		}
		if pareceNombre(words[i]) && pareceNombre(words[i+1]) {
			inicio = i
			break
		}
	}

	if inicio == -1 {
		if len(words) > 4 {
			words = words[len(words)-4:]
		}
		return strings.Join(words, " ")
	}

	return strings.Join(words[inicio:], " ")
}

// pareceNombre accepts uppercase words of three or more letters, allowing the
// Ñ and the '?' corruption marker.
func pareceNombre(word string) bool {
	return utf8.RuneCountInString(word) >= 3 && nombreAptoRe.MatchString(word)
}
