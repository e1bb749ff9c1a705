package report

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/mro/internal/entity"
)

const (
	dataSheet    = "Data"
	summarySheet = "Summary"

	minColWidth = 10
	maxColWidth = 60
)

func renderXLSX(data entity.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(dataSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	err = f.DeleteSheet("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	widths := make([]int, len(data.Columns))

	for col, header := range data.Columns {
		widths[col] = utf8.RuneCountInString(header)

		err = setCell(f, dataSheet, col+1, 1, header)
		if err != nil {
			return nil, err
		}
	}

	if len(data.Columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(data.Columns), 1)
		if err != nil {
			return nil, fmt.Errorf("header range: %w", err)
		}

		err = f.SetCellStyle(dataSheet, "A1", last, headerStyle)
		if err != nil {
			return nil, fmt.Errorf("set header style: %w", err)
		}
	}

	for rowIdx, row := range data.Rows {
		for col := range data.Columns {
			v := cell(row, col)
			if v == "" {
				continue
			}

			widths[col] = max(widths[col], utf8.RuneCountInString(v))

			err = setCell(f, dataSheet, col+1, rowIdx+2, v)
			if err != nil {
				return nil, err
			}
		}
	}

	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}

		err = f.SetColWidth(dataSheet, name, name, float64(min(max(w+2, minColWidth), maxColWidth)))
		if err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	err = f.SetPanes(dataSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return nil, fmt.Errorf("freeze panes: %w", err)
	}

	err = writeSummarySheet(f, data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	_, err = f.WriteTo(&buf)
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, data entity.ReportData) error {
	_, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	lines := []entity.ReportSummaryLine{
		{Label: "Report", Value: data.Title},
		{Label: "Company", Value: data.CompanyName},
		{Label: "Generated by", Value: data.GeneratedBy},
		{Label: "Generated at", Value: data.GeneratedAt.UTC().Format("2006-01-02 15:04:05 MST")},
	}
	lines = append(lines, data.Summary...)

	for i, l := range lines {
		err = setCell(f, summarySheet, 1, i+1, l.Label)
		if err != nil {
			return err
		}

		err = setCell(f, summarySheet, 2, i+1, l.Value)
		if err != nil {
			return err
		}
	}

	err = f.SetColWidth(summarySheet, "A", "A", 24)
	if err != nil {
		return fmt.Errorf("set summary width: %w", err)
	}

	return f.SetColWidth(summarySheet, "B", "B", 48)
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}

	err = f.SetCellValue(sheet, name, value)
	if err != nil {
		return fmt.Errorf("set cell %s: %w", name, err)
	}

	return nil
}
