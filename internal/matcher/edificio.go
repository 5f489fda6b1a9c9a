package matcher

import (
	"regexp"
	"strings"

	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

// Sentinels for unresolved locations. Callers treat them as valid-but-unknown
// data, not as failures. SalonDesconocido marks a known building whose room
// did not resolve; with no building match both fields get EdificioDesconocido.
const (
	EdificioDesconocido = "DESCONOCIDO"
	SalonDesconocido    = "SALON DESCONOCIDO"
)

var (
	aulaGenericaRe = regexp.MustCompile(`AULA\s+(\d+)`)
	salaGenericaRe = regexp.MustCompile(`SALA.*?(\d+)`)
)

// EdificioMatcher resolves a raw location fragment to a canonical
// (edificio, salón) pair using an injected alias dictionary. Matching is
// substring containment in declaration order, first match wins; the
// dictionary is curated around that order.
type EdificioMatcher struct {
	edificios []model.Edificio
}

func NewEdificioMatcher(edificios []model.Edificio) *EdificioMatcher {
	return &EdificioMatcher{edificios: edificios}
}

// ExtractLocation resolves the building and room named in the fragment.
func (m *EdificioMatcher) ExtractLocation(texto string) model.Ubicacion {
	normalizado := normalizeLocation(texto)

	edificio := m.findEdificio(normalizado)
	if edificio == nil {
		return model.Ubicacion{Edificio: EdificioDesconocido, Salon: EdificioDesconocido}
	}

	return model.Ubicacion{
		Edificio: edificio.Nombre,
		Salon:    findSalon(normalizado, edificio),
	}
}

func (m *EdificioMatcher) findEdificio(texto string) *model.Edificio {
	for i := range m.edificios {
		e := &m.edificios[i]
		if strings.Contains(texto, e.Nombre) {
			return e
		}
		for _, alias := range e.Aliases {
			if strings.Contains(texto, alias) {
				return e
			}
		}
	}
	return nil
}

func findSalon(texto string, edificio *model.Edificio) string {
	for _, salon := range edificio.Salones {
		if strings.Contains(texto, salon.Nombre) {
			return salon.Nombre
		}
		for _, alias := range salon.Aliases {
			if strings.Contains(texto, alias) {
				return salon.Nombre
			}
		}
	}

	// Generic patterns for rooms the dictionary does not declare.
	if m := aulaGenericaRe.FindStringSubmatch(texto); m != nil {
		return "AULA " + m[1]
	}
	if m := salaGenericaRe.FindStringSubmatch(texto); m != nil {
		return "SALA " + m[1]
	}

	return SalonDesconocido
}

func normalizeLocation(texto string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(strings.ToUpper(texto)), " "))
}
