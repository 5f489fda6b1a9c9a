package matcher

import "strings"

// DocenteMatcher resolves corrupted instructor fragments against a roster of
// canonical names. The roster is supplied at construction; an empty roster is
// a legitimate degraded state in which nothing ever resolves.
type DocenteMatcher struct {
	docentes []string
}

func NewDocenteMatcher(docentes []string) *DocenteMatcher {
	return &DocenteMatcher{docentes: docentes}
}

// FindDocente returns the first roster name contained in the fragment, in
// roster order, or "" when no name matches. The corruption pattern is whole
// words glued to unrelated trailing tokens, so containment of every
// significant word beats edit-distance matching here.
func (m *DocenteMatcher) FindDocente(texto string) string {
	if strings.TrimSpace(texto) == "" {
		return ""
	}

	normalizado := normalizeText(texto)

	for _, docente := range m.docentes {
		if contieneDocente(normalizado, normalizeText(docente)) {
			return docente
		}
		// Safety net for names the containment heuristic misses.
		if docente == texto {
			return docente
		}
	}

	return ""
}

// contieneDocente checks that every word of the candidate longer than two
// letters (connectors like DE or LA are excluded) appears somewhere in the
// fragment, and that the first two of those words are not reversed.
func contieneDocente(texto, docente string) bool {
	var palabras []string
	for _, p := range strings.Split(docente, " ") {
		if len(p) > 2 {
			palabras = append(palabras, p)
		}
	}

	for _, p := range palabras {
		if !strings.Contains(texto, p) {
			return false
		}
	}

	if len(palabras) >= 2 {
		primera := strings.Index(texto, palabras[0])
		segunda := strings.Index(texto, palabras[1])
		return primera >= 0 && segunda > primera
	}

	return true
}
