package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samandr77/microservices/mro/internal/entity"
)

func renderText(data entity.ReportData) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, data.Title)
	fmt.Fprintf(&buf, "%s, generated %s\n", data.CompanyName, data.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))

	if len(data.Summary) > 0 {
		fmt.Fprintln(&buf)

		for _, l := range data.Summary {
			fmt.Fprintf(&buf, "%s: %s\n", l.Label, l.Value)
		}
	}

	fmt.Fprintln(&buf)

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(data.Columns, "\t"))

	for _, row := range data.Rows {
		values := make([]string, len(data.Columns))

		for i := range data.Columns {
			values[i] = sanitizeTabs(cell(row, i))
		}

		fmt.Fprintln(w, strings.Join(values, "\t"))
	}

	err := w.Flush()
	if err != nil {
		return nil, fmt.Errorf("flush table: %w", err)
	}

	return buf.Bytes(), nil
}

func sanitizeTabs(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
