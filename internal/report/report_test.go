package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/internal/report"
)

func testData() entity.ReportData {
	return entity.ReportData{
		Kind:        entity.ReportStock,
		Title:       "Stock inventory",
		CompanyName: "Acme Aero",
		GeneratedBy: "Jane Doe",
		GeneratedAt: time.Date(2024, 3, 13, 14, 30, 5, 0, time.UTC),
		Summary:     []entity.ReportSummaryLine{{Label: "Items", Value: "2"}},
		Columns:     []string{"Part number", "Quantity", "Location"},
		Rows: [][]string{
			{"PN-100", "4", "Hangar <A>"},
			{"PN-200", "1"},
		},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name         string
		format       entity.ReportFormat
		wantMime     string
		wantFilename string
		errFn        require.ErrorAssertionFunc
	}{
		{
			name:         "xlsx",
			format:       entity.ReportFormatXLSX,
			wantMime:     report.MimeXLSX,
			wantFilename: "stock-20240313-143005.xlsx",
			errFn:        require.NoError,
		},
		{
			name:         "html",
			format:       entity.ReportFormatHTML,
			wantMime:     report.MimeHTML,
			wantFilename: "stock-20240313-143005.html",
			errFn:        require.NoError,
		},
		{
			name:         "text",
			format:       entity.ReportFormatText,
			wantMime:     report.MimeText,
			wantFilename: "stock-20240313-143005.txt",
			errFn:        require.NoError,
		},
		{
			name:   "pdf is unsupported",
			format: "pdf",
			errFn: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, entity.ErrUnsupportedFormat)
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			a, err := report.Render(testData(), tt.format)
			tt.errFn(t, err)

			if err != nil {
				return
			}

			r.Equal(tt.wantMime, a.MimeType)
			r.Equal(tt.wantFilename, a.Filename)
			r.NotEmpty(a.Body)
		})
	}
}

func TestRender_XLSXContent(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	a, err := report.Render(testData(), entity.ReportFormatXLSX)
	r.NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(a.Body))
	r.NoError(err)

	defer f.Close()

	r.Equal([]string{"Data", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Data")
	r.NoError(err)
	r.Len(rows, 3)
	r.Equal([]string{"Part number", "Quantity", "Location"}, rows[0])
	r.Equal([]string{"PN-100", "4", "Hangar <A>"}, rows[1])
	r.Equal([]string{"PN-200", "1"}, rows[2])

	v, err := f.GetCellValue("Summary", "B1")
	r.NoError(err)
	r.Equal("Stock inventory", v)
}

func TestRender_HTMLEscapes(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	a, err := report.Render(testData(), entity.ReportFormatHTML)
	r.NoError(err)

	body := string(a.Body)
	r.Contains(body, "<th>Part number</th>")
	r.Contains(body, "Hangar &lt;A&gt;")
	r.NotContains(body, "Hangar <A>")
}

func TestRender_TextAligned(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	data := testData()
	data.Rows = append(data.Rows, []string{"PN\t300", "2", "Shelf\n3"})

	a, err := report.Render(data, entity.ReportFormatText)
	r.NoError(err)

	lines := strings.Split(strings.TrimRight(string(a.Body), "\n"), "\n")
	r.Equal("Stock inventory", lines[0])
	r.Contains(string(a.Body), "Items: 2")

	table := lines[len(lines)-4:]
	r.True(strings.HasPrefix(table[0], "Part number"))
	r.Equal(strings.Index(table[0], "Quantity"), strings.Index(table[1], "4"))
	r.Contains(table[3], "PN 300")
	r.Contains(table[3], "Shelf 3")
}

func TestRender_EmptyRows(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	data := testData()
	data.Rows = nil

	for _, format := range []entity.ReportFormat{entity.ReportFormatXLSX, entity.ReportFormatHTML, entity.ReportFormatText} {
		a, err := report.Render(data, format)
		r.NoError(err)
		r.NotEmpty(a.Body)
	}
}
