package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dfrodriguez/docente-localizador/internal/csvio"
	"github.com/dfrodriguez/docente-localizador/internal/matcher"
	"github.com/dfrodriguez/docente-localizador/internal/parser"
	"github.com/dfrodriguez/docente-localizador/internal/pdfio"
	"github.com/dfrodriguez/docente-localizador/internal/queries"
	"github.com/dfrodriguez/docente-localizador/pkg/model"
)

// Program parameters
type Configuration struct {
	HorariosFile  string
	DocentesFile  string
	EdificiosFile string
	ExportFile    string
	Delim         rune
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		HorariosFile:  "./res/horarios.txt",
		DocentesFile:  "./res/docentes.txt",
		EdificiosFile: "",
		ExportFile:    "horarios.csv",
		Delim:         ',',
	}
}

func main() {
	cfg := NewDefaultConfiguration()
	flag.StringVar(&cfg.HorariosFile, "horarios", cfg.HorariosFile, "schedule dump (.txt or .pdf)")
	flag.StringVar(&cfg.DocentesFile, "docentes", cfg.DocentesFile, "newline-delimited instructor roster")
	flag.StringVar(&cfg.EdificiosFile, "edificios", cfg.EdificiosFile, "optional building dictionary override (CSV)")
	flag.StringVar(&cfg.ExportFile, "export", cfg.ExportFile, "CSV export path")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	content, err := pdfio.ReadHorarioFile(cfg.HorariosFile)
	if err != nil {
		logger.Fatal("no se pudo leer el archivo de horarios", zap.Error(err))
	}

	docentes, err := csvio.LoadDocentes(cfg.DocentesFile)
	if err != nil {
		// An empty roster degrades to "docente no identificado" everywhere.
		logger.Warn("no se pudo cargar la lista de docentes", zap.Error(err))
	}

	edificios := matcher.DefaultEdificios()
	if cfg.EdificiosFile != "" {
		edificios, err = csvio.LoadEdificios(cfg.EdificiosFile, cfg.Delim)
		if err != nil {
			logger.Fatal("no se pudo cargar el diccionario de edificios", zap.Error(err))
		}
	}

	p := parser.New(matcher.NewEdificioMatcher(edificios), matcher.NewDocenteMatcher(docentes), logger)

	start := time.Now()
	universidad, report := p.Parse(content)
	logger.Info("horarios procesados",
		zap.Duration("duracion", time.Since(start)),
		zap.Int("lineas_omitidas", len(report.Omitidas)))

	csvio.PrintBloques(universidad)

	ahora := time.Now()
	imprimirDocentes("Docentes en clase ahora", queries.DocentesActivos(universidad, ahora))
	imprimirDocentes("Docentes próximos (1-3 horas)", queries.ProximosDocentes(universidad, ahora))

	outPath, err := csvio.ExportBloques(universidad, cfg.ExportFile)
	if err != nil {
		logger.Fatal("no se pudo exportar", zap.Error(err))
	}
	fmt.Println("Exported output to: " + outPath)
}

func imprimirDocentes(titulo string, docentes []model.DocenteActivo) {
	fmt.Printf("\n%s (%d)\n", titulo, len(docentes))
	for _, b := range queries.AgruparPorBloques(docentes) {
		fmt.Printf("  [%s]\n", b.Horario)
		for _, d := range b.Docentes {
			nombre := d.Docente
			if nombre == "" {
				nombre = "(docente no identificado)"
			}
			fmt.Printf("    %-35s %-40s %s - %s\n", nombre, d.Asignatura, d.Edificio, d.Salon)
		}
	}
}
