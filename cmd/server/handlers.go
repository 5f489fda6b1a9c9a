package main

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dfrodriguez/docente-localizador/internal/csvio"
	"github.com/dfrodriguez/docente-localizador/internal/matcher"
	"github.com/dfrodriguez/docente-localizador/internal/parser"
	"github.com/dfrodriguez/docente-localizador/internal/queries"
	"github.com/dfrodriguez/docente-localizador/pkg/geo"
	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

// snapshotStore keeps parsed Universidad snapshots by id. Snapshots are
// immutable after construction, so reads need no coordination beyond the map
// lock.
type snapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]*model.Universidad
	logger    *zap.Logger
}

func newSnapshotStore(logger *zap.Logger) *snapshotStore {
	return &snapshotStore{
		snapshots: make(map[string]*model.Universidad),
		logger:    logger,
	}
}

// handlePostHorarios receives the schedule dump and the instructor roster as
// multipart files, parses them and stores the snapshot under a fresh id.
func (s *snapshotStore) handlePostHorarios(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	horarios := firstFile(form, "horarios")
	docentesFile := firstFile(form, "docentes")
	if horarios == nil || docentesFile == nil {
		ctx.String(http.StatusBadRequest, "se requieren los archivos 'horarios' y 'docentes'")
		return
	}

	content, err := readUpload(horarios)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	roster, err := readUpload(docentesFile)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	var docentes []string
	for _, line := range strings.Split(roster, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			docentes = append(docentes, line)
		}
	}

	p := parser.New(
		matcher.NewEdificioMatcher(matcher.DefaultEdificios()),
		matcher.NewDocenteMatcher(docentes),
		s.logger,
	)
	universidad, report := p.Parse(content)

	id := uuid.NewString()
	s.mu.Lock()
	s.snapshots[id] = universidad
	s.mu.Unlock()

	s.logger.Info("horario cargado",
		zap.String("id", id),
		zap.Int("docentes", len(docentes)),
		zap.Int("lineas_omitidas", len(report.Omitidas)))

	ctx.JSON(http.StatusOK, gin.H{
		"id":             id,
		"lineasOmitidas": len(report.Omitidas),
		"facultades":     len(universidad.Facultades),
		"actualizado":    universidad.FechaActualizacion,
	})
}

func (s *snapshotStore) handleListHorarios(ctx *gin.Context) {
	s.mu.RLock()
	ids := make([]string, 0, len(s.snapshots))
	for id := range s.snapshots {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	ctx.JSON(http.StatusOK, gin.H{"horarioIds": ids})
}

func (s *snapshotStore) handleGetActivos(ctx *gin.Context) {
	s.query(ctx, queries.DocentesActivos)
}

func (s *snapshotStore) handleGetProximos(ctx *gin.Context) {
	s.query(ctx, queries.ProximosDocentes)
}

func (s *snapshotStore) query(ctx *gin.Context, q func(*model.Universidad, time.Time) []model.DocenteActivo) {
	universidad, ok := s.lookup(ctx)
	if !ok {
		return
	}

	t := time.Now()
	if raw := ctx.Query("t"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.String(http.StatusBadRequest, "parámetro t inválido, se espera RFC3339")
			return
		}
		t = parsed
	}

	docentes := q(universidad, t)
	ctx.JSON(http.StatusOK, gin.H{
		"docentes": docentes,
		"bloques":  queries.AgruparPorBloques(docentes),
	})
}

func (s *snapshotStore) handleExport(ctx *gin.Context) {
	universidad, ok := s.lookup(ctx)
	if !ok {
		return
	}

	data, err := csvio.ExportBloquesString(universidad)
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}

// handleEdificios lists the campus buildings. With lat and lon query
// parameters each entry carries the distance from that point.
func handleEdificios(ctx *gin.Context) {
	rawLat := ctx.Query("lat")
	rawLon := ctx.Query("lon")

	var origen *geo.Coordinates
	if rawLat != "" || rawLon != "" {
		lat, errLat := strconv.ParseFloat(rawLat, 64)
		lon, errLon := strconv.ParseFloat(rawLon, 64)
		if errLat != nil || errLon != nil {
			ctx.String(http.StatusBadRequest, "parámetros lat/lon inválidos")
			return
		}
		origen = &geo.Coordinates{Latitude: lat, Longitude: lon}
	}

	edificios := geo.AllEdificios()
	out := make([]gin.H, 0, len(edificios))
	for _, e := range edificios {
		entry := gin.H{
			"codigo":  e.Codigo,
			"nombre":  e.Nombre,
			"lat":     e.Latitude,
			"lon":     e.Longitude,
			"aliases": e.Aliases,
		}
		if origen != nil {
			d := geo.Distance(*origen, geo.Coordinates{Latitude: e.Latitude, Longitude: e.Longitude})
			entry["distancia"] = geo.FormatDistance(d)
			entry["proximidad"] = geo.Proximity(d)
		}
		out = append(out, entry)
	}

	ctx.JSON(http.StatusOK, gin.H{"edificios": out})
}

func (s *snapshotStore) lookup(ctx *gin.Context) (*model.Universidad, bool) {
	id := ctx.Param("id")

	s.mu.RLock()
	universidad, ok := s.snapshots[id]
	s.mu.RUnlock()

	if !ok {
		ctx.Status(http.StatusNotFound)
		return nil, false
	}
	return universidad, true
}

func firstFile(form *multipart.Form, name string) *multipart.FileHeader {
	files := form.File[name]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func readUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
