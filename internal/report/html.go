package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/samandr77/microservices/mro/internal/entity"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"cell": cell,
	"date": func(d entity.ReportData) string { return d.GeneratedAt.UTC().Format("2006-01-02 15:04 MST") },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:Arial,Helvetica,sans-serif;font-size:12px;margin:24px}
table{border-collapse:collapse;width:100%}
th,td{border:1px solid #999;padding:4px 6px;text-align:left}
th{background:#e6f3ff}
dl{display:grid;grid-template-columns:max-content auto;gap:2px 12px}
dt{font-weight:bold}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.CompanyName}}, generated {{date .}}{{if .GeneratedBy}} by {{.GeneratedBy}}{{end}}</p>
{{- if .Summary}}
<dl>
{{- range .Summary}}
<dt>{{.Label}}</dt><dd>{{.Value}}</dd>
{{- end}}
</dl>
{{- end}}
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- $cols := .Columns}}
{{- range .Rows}}
{{- $row := .}}
<tr>{{range $i, $c := $cols}}<td>{{cell $row $i}}</td>{{end}}</tr>
{{- else}}
<tr><td colspan="{{len .Columns}}">No data</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

func renderHTML(data entity.ReportData) ([]byte, error) {
	var buf bytes.Buffer

	err := htmlTemplate.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	return buf.Bytes(), nil
}
