// Package parser reconstructs the Universidad schedule tree from a sanitized
// text dump. It drives a line-classification state machine and delegates
// location and instructor resolution to the matchers.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dfrodriguez/docente-localizador/internal/matcher"
	"github.com/dfrodriguez/docente-localizador/internal/sanitizer"
	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

const (
	// Sede is the campus keyword that splits a schedule line into
	// course data and the combined location+instructor fragment.
	Sede = "TECNOLOGICA"
	// NombreFacultad is the single faculty the source document covers.
	NombreFacultad = "FACULTAD TECNOLÓGICA"
)

var (
	inicioNumericoRe = regexp.MustCompile(`^\d+\s+`)
	diaConocidoRe    = regexp.MustCompile(`\b(LUNES|MARTES|MIERCOLES|JUEVES|VIERNES|SABADO)\b`)
	rangoHorasRe     = regexp.MustCompile(`^(\d+)-(\d+)$`)
	contieneRangoRe  = regexp.MustCompile(`\d+-\d+`)
	grupoRe          = regexp.MustCompile(`^GRP\.\s*(.+)`)
	inscritosRe      = regexp.MustCompile(`INSCRITOS\s+(\d+)`)
	nombreAptoRe     = regexp.MustCompile(`^[A-ZÑ?]+$`)
)

// Diagnostic records one skipped schedule line.
type Diagnostic struct {
	Linea  int
	Texto  string
	Motivo string
}

// Report aggregates per-line parse diagnostics. A non-empty report is not an
// error: the offending lines were skipped and the rest of the dump parsed.
type Report struct {
	Omitidas []Diagnostic
}

// Parser is safe for a single Parse call at a time; parsing state lives in
// the call, not in the struct, so a Parser may be reused sequentially.
type Parser struct {
	edificios *matcher.EdificioMatcher
	docentes  *matcher.DocenteMatcher
	logger    *zap.Logger
}

func New(edificios *matcher.EdificioMatcher, docentes *matcher.DocenteMatcher, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{edificios: edificios, docentes: docentes, logger: logger}
}

// estado holds the currently open tree context while scanning lines.
type estado struct {
	facultad   *model.Facultad
	carrera    *model.Carrera
	asignatura *model.Asignatura
	grupo      *model.Grupo
}

// Parse sanitizes the dump and builds the schedule tree. Malformed schedule
// lines are skipped and reported; nothing here is fatal.
func (p *Parser) Parse(content string) (*model.Universidad, *Report) {
	lines := splitLines(sanitizer.Sanitize(content))

	u := &model.Universidad{FechaActualizacion: time.Now()}
	st := &estado{}
	report := &Report{}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case strings.HasPrefix(line, "PROYECTO CURRICULAR"):
			p.cerrarTodo(u, st)
			st.carrera = parseCarrera(line)
			st.facultad = u.GetOrCreateFacultad(NombreFacultad)

		case strings.HasPrefix(line, "ESPACIO ACADEMICO"):
			p.cerrarAsignaturaYGrupo(st)
			st.asignatura = &model.Asignatura{
				Nombre: strings.TrimSpace(strings.TrimPrefix(line, "ESPACIO ACADEMICO")),
			}

		case strings.HasPrefix(line, "GRP."):
			p.cerrarGrupo(st)
			inscritosLine := ""
			if i+1 < len(lines) {
				inscritosLine = lines[i+1]
				i++ // the enrollment line belongs to this group
			}
			st.grupo = parseGrupo(line, inscritosLine)

		case esLineaHorario(line) && st.grupo != nil && st.asignatura != nil:
			bloque, motivo := p.parseBloque(line, st.asignatura)
			if bloque == nil {
				report.Omitidas = append(report.Omitidas, Diagnostic{Linea: i + 1, Texto: line, Motivo: motivo})
				p.logger.Warn("línea de horario omitida",
					zap.Int("linea", i+1),
					zap.String("motivo", motivo),
					zap.String("texto", line))
				continue
			}
			st.grupo.Bloques = append(st.grupo.Bloques, bloque)
		}
	}

	p.cerrarTodo(u, st)
	return u, report
}

// esLineaHorario matches schedule lines: leading numeric code, a known day,
// an hour range and the campus keyword.
func esLineaHorario(line string) bool {
	return inicioNumericoRe.MatchString(line) &&
		diaConocidoRe.MatchString(line) &&
		contieneRangoRe.MatchString(line) &&
		strings.Contains(line, Sede)
}

func (p *Parser) parseBloque(line string, asignatura *model.Asignatura) (*model.BloqueHorario, string) {
	parts := strings.Fields(line)
	codigo := parts[0]

	dia, ok := buscarDia(parts)
	if !ok {
		return nil, "día no reconocido"
	}

	inicio, fin, ok := buscarRango(parts)
	if !ok {
		return nil, "rango de horas no reconocido"
	}

	sedeIdx := -1
	for i, part := range parts {
		if part == Sede {
			sedeIdx = i
			break
		}
	}
	if sedeIdx == -1 {
		return nil, "sede no encontrada"
	}

	// Only a line that will actually produce a block back-fills the code;
	// rejected lines leave it for the close-time fallback.
	if asignatura.Codigo == "" {
		asignatura.Codigo = codigo
	}

	// Everything from the campus keyword onward is location plus docente,
	// with no delimiter between the two.
	fragmento := strings.Join(parts[sedeIdx:], " ")
	ubicacion := p.edificios.ExtractLocation(fragmento)
	docente := p.docentes.FindDocente(extraerParteDocente(fragmento))

	return &model.BloqueHorario{
		CodigoAsignatura: codigo,
		Dia:              dia,
		HoraInicio:       inicio,
		HoraFin:          fin,
		Sede:             Sede,
		Edificio:         ubicacion.Edificio,
		Salon:            ubicacion.Salon,
		Docente:          docente,
	}, ""
}

func buscarDia(parts []string) (model.DiaSemana, bool) {
	for _, part := range parts {
		if dia, ok := model.ParseDia(part); ok {
			return dia, true
		}
	}
	return "", false
}

func buscarRango(parts []string) (int, int, bool) {
	for _, part := range parts {
		if m := rangoHorasRe.FindStringSubmatch(part); m != nil {
			inicio, err1 := strconv.Atoi(m[1])
			fin, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil {
				continue
			}
			return inicio, fin, true
		}
	}
	return 0, 0, false
}

func parseCarrera(line string) *model.Carrera {
	nombre := strings.TrimSpace(strings.TrimPrefix(line, "PROYECTO CURRICULAR"))
	if nombre == "" {
		nombre = line
	}
	return &model.Carrera{Nombre: nombre, Codigo: codigoCarrera(nombre)}
}

// codigoCarrera derives the fixed program code from the program name.
func codigoCarrera(nombre string) string {
	switch {
	case strings.Contains(nombre, "TELEMATICA"):
		return "678"
	case strings.Contains(nombre, "SISTEMATIZACION"):
		return "578"
	default:
		return "000"
	}
}

func parseGrupo(grupoLine, inscritosLine string) *model.Grupo {
	grupo := &model.Grupo{}
	if m := grupoRe.FindStringSubmatch(grupoLine); m != nil {
		grupo.Numero = strings.TrimSpace(m[1])
	}
	if m := inscritosRe.FindStringSubmatch(inscritosLine); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			grupo.Inscritos = n
		}
	}
	return grupo
}

func (p *Parser) cerrarGrupo(st *estado) {
	if st.grupo != nil && st.asignatura != nil {
		st.asignatura.Grupos = append(st.asignatura.Grupos, st.grupo)
	}
	st.grupo = nil
}

func (p *Parser) cerrarAsignaturaYGrupo(st *estado) {
	p.cerrarGrupo(st)

	if st.asignatura != nil && st.carrera != nil {
		if st.asignatura.Codigo == "" && len(st.asignatura.Grupos) > 0 {
			st.asignatura.Codigo = codigoAsignaturaFallback(st.carrera, st.asignatura)
		}
		st.carrera.Asignaturas = append(st.carrera.Asignaturas, st.asignatura)
	}
	st.asignatura = nil
}

// codigoAsignaturaFallback resolves a still-empty asignatura code when the
// asignatura closes: first block's code if any block was recorded, otherwise
// synthesized from the carrera code and a name prefix.
func codigoAsignaturaFallback(carrera *model.Carrera, asignatura *model.Asignatura) string {
	for _, grupo := range asignatura.Grupos {
		if len(grupo.Bloques) > 0 && grupo.Bloques[0].CodigoAsignatura != "" {
			return grupo.Bloques[0].CodigoAsignatura
		}
	}
	prefijo := asignatura.Nombre
	if len(prefijo) > 3 {
		prefijo = prefijo[:3]
	}
	return carrera.Codigo + "-" + prefijo
}

func (p *Parser) cerrarTodo(u *model.Universidad, st *estado) {
	p.cerrarAsignaturaYGrupo(st)

	if st.carrera != nil && st.facultad != nil {
		st.facultad.Carreras = append(st.facultad.Carreras, st.carrera)
	}
	st.carrera = nil
}

func splitLines(content string) []string {
	var lines []string
	for _, l := range strings.Split(content, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
