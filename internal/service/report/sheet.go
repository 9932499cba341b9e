package report

import (
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// sheet writes cells by column/row index and keeps the first error it hits.
type sheet struct {
	file *excelize.File
	name string
	err  error
}

func (s *sheet) cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil && s.err == nil {
		s.err = err
	}
	return name
}

func (s *sheet) set(col, row int, value any) {
	if s.err != nil {
		return
	}
	s.err = s.file.SetCellValue(s.name, s.cell(col, row), value)
}

func (s *sheet) merge(col1, row1, col2, row2 int) {
	if s.err != nil {
		return
	}
	s.err = s.file.MergeCell(s.name, s.cell(col1, row1), s.cell(col2, row2))
}

func (s *sheet) style(col1, row1, col2, row2, styleID int) {
	if s.err != nil {
		return
	}
	s.err = s.file.SetCellStyle(s.name, s.cell(col1, row1), s.cell(col2, row2), styleID)
}

func (s *sheet) newStyle(style *excelize.Style) int {
	if s.err != nil {
		return 0
	}
	id, err := s.file.NewStyle(style)
	s.err = err
	return id
}

func (s *sheet) boldStyle() int {
	return s.newStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
}

func (s *sheet) fillStyle(color string, bold bool) int {
	return s.newStyle(&excelize.Style{
		Font: &excelize.Font{Bold: bold},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
}

// setup renames the default sheet, writes the merged title on row 1 and the styled header on row 2.
func (s *sheet) setup(title string, titleCols int, headers []string, widths []float64) {
	if s.err == nil {
		s.err = s.file.SetSheetName("Sheet1", s.name)
	}

	s.set(1, 1, title)
	s.merge(1, 1, titleCols, 1)
	s.style(1, 1, 1, 1, s.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 20},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}))

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			s.err = err
			return
		}
		if s.err == nil {
			s.err = s.file.SetColWidth(s.name, col, col, width)
		}
	}

	for i, header := range headers {
		s.set(i+1, 2, header)
	}
	s.style(1, 2, titleCols, 2, s.fillStyle(colorLightGray, true))
}

func (s *sheet) export(fileName string) (report.FileExport, error) {
	if s.err != nil {
		return report.FileExport{}, fmt.Errorf("failed to build workbook: %w", s.err)
	}
	buf, err := s.file.WriteToBuffer()
	if err != nil {
		return report.FileExport{}, fmt.Errorf("failed to write workbook: %w", err)
	}
	return report.FileExport{
		FileName:    fileName,
		ContentType: report.ContentTypeXLSX,
		Content:     buf.Bytes(),
	}, nil
}
