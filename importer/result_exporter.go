package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"airwayserver/matching"
)

// resultHeaders заголовки листа результатов сопоставления
var resultHeaders = []string{"Size (mm)", "Type", "OD (mm)", "Gap (mm)", "Model", "Manufacturer", "Verdict"}

// buildResultWorkbook формирует книгу Excel с результатами сопоставления
func buildResultWorkbook(view matching.ResultView) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Compatibility"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range resultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range view.Rows {
		values := []interface{}{row.Size, row.Type, row.OuterMM, row.GapMM, row.Model, row.Manufacturer, string(row.Verdict)}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range resultHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 16)
	}

	f.SetActiveSheet(index)
	return f, nil
}

// ExportResultView выгружает представление результатов в файл Excel
func ExportResultView(view matching.ResultView, path string) error {
	f, err := buildResultWorkbook(view)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// WriteResultView пишет книгу Excel с результатами в поток, например в HTTP ответ
func WriteResultView(view matching.ResultView, w io.Writer) error {
	f, err := buildResultWorkbook(view)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
