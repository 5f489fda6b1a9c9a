// Package pdfio extracts the raw schedule text from the source PDF. The
// extraction mirrors what the university portal's copy-paste produces,
// including the wrapped lines the sanitizer later repairs.
package pdfio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText concatenates the plain text of every page. Pages that fail to
// decode are skipped, matching the lossy nature of the source documents.
func ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("abriendo PDF %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ReadHorarioFile loads a schedule dump from either a .pdf or a plain text
// file.
func ReadHorarioFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return ExtractText(path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("leyendo archivo de horarios %s: %w", path, err)
	}
	return string(content), nil
}
