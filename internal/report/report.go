// Package report renders already aggregated tables into downloadable artifacts.
// Rendering never touches the database or the object store.
package report

import (
	"fmt"
	"strings"

	"github.com/samandr77/microservices/mro/internal/entity"
)

const (
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeHTML = "text/html; charset=utf-8"
	MimeText = "text/plain; charset=utf-8"

	filenameTimeLayout = "20060102-150405"
)

func Render(data entity.ReportData, format entity.ReportFormat) (entity.Artifact, error) {
	var (
		body []byte
		mime string
		err  error
	)

	switch format {
	case entity.ReportFormatXLSX:
		body, err = renderXLSX(data)
		mime = MimeXLSX
	case entity.ReportFormatHTML:
		body, err = renderHTML(data)
		mime = MimeHTML
	case entity.ReportFormatText:
		body, err = renderText(data)
		mime = MimeText
	default:
		return entity.Artifact{}, fmt.Errorf("%w: %q", entity.ErrUnsupportedFormat, format)
	}

	if err != nil {
		return entity.Artifact{}, fmt.Errorf("render %s report: %w", format, err)
	}

	return entity.Artifact{
		Body:     body,
		MimeType: mime,
		Filename: Filename(data, format),
	}, nil
}

func Filename(data entity.ReportData, format entity.ReportFormat) string {
	ext := string(format)
	if format == entity.ReportFormatText {
		ext = "txt"
	}

	kind := strings.TrimSpace(string(data.Kind))
	if kind == "" {
		kind = "report"
	}

	return fmt.Sprintf("%s-%s.%s", kind, data.GeneratedAt.UTC().Format(filenameTimeLayout), ext)
}

// cell returns the value at i or an empty string for short rows.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}

	return ""
}
