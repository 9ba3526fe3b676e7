package exporter

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	headerFillColor = "#ADD8E6"
	columnPadding   = 2
	numFmtThousands = 3 // #,##0
)

// styleKey 样式组合，同一组合在一个工作簿内只注册一次
type styleKey struct {
	header bool
	title  bool
	bold   bool
	border bool
	number bool
}

type styleSet struct {
	f     *excelize.File
	cache map[styleKey]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{f: f, cache: make(map[styleKey]int)}
}

func (s *styleSet) get(key styleKey) (int, error) {
	if id, ok := s.cache[key]; ok {
		return id, nil
	}

	style := &excelize.Style{}
	switch {
	case key.title:
		style.Font = &excelize.Font{Bold: true, Size: 14}
		style.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	case key.header:
		style.Font = &excelize.Font{Bold: true}
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1}
		style.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	case key.bold:
		style.Font = &excelize.Font{Bold: true}
	}
	if key.border {
		style.Border = []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		}
	}
	if key.number {
		style.NumFmt = numFmtThousands
	}

	id, err := s.f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("创建样式失败: %w", err)
	}
	s.cache[key] = id
	return id, nil
}

// applyStyle 对矩形区域应用样式（行列均 1 起）
func (s *styleSet) applyStyle(sheet string, key styleKey, col1, row1, col2, row2 int) error {
	id, err := s.get(key)
	if err != nil {
		return err
	}
	hcell, err := excelize.CoordinatesToCellName(col1, row1)
	if err != nil {
		return err
	}
	vcell, err := excelize.CoordinatesToCellName(col2, row2)
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(sheet, hcell, vcell, id)
}

// renderedLen 单元格显示长度（按字符数计）
func renderedLen(v interface{}) int {
	switch val := v.(type) {
	case nil:
		return 0
	case string:
		return utf8.RuneCountInString(val)
	default:
		return utf8.RuneCountInString(fmt.Sprint(val))
	}
}

var thousandsPrinter = message.NewPrinter(language.English)

// formatThousands 按 #,##0 渲染整数，非整数原样返回
func formatThousands(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return thousandsPrinter.Sprintf("%d", n)
	case int64:
		return thousandsPrinter.Sprintf("%d", n)
	default:
		return v
	}
}

// displayRows 把 numberCols 中的整数换成千分位文本，用于计算列宽
func displayRows(rows [][]interface{}, numberCols ...int) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		copied := append([]interface{}(nil), row...)
		for _, c := range numberCols {
			if c < len(copied) {
				copied[c] = formatThousands(copied[c])
			}
		}
		out[i] = copied
	}
	return out
}

// columnWidths 计算每列最长显示值 + 固定留白
func columnWidths(rows [][]interface{}) []float64 {
	var maxLen []int
	for _, row := range rows {
		for i, v := range row {
			for len(maxLen) <= i {
				maxLen = append(maxLen, 0)
			}
			if n := renderedLen(v); n > maxLen[i] {
				maxLen[i] = n
			}
		}
	}

	widths := make([]float64, len(maxLen))
	for i, n := range maxLen {
		widths[i] = float64(n + columnPadding)
	}
	return widths
}

// autoFitColumns 按内容设置列宽
func autoFitColumns(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, w := range columnWidths(rows) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("设置 %s 列宽失败: %w", sheet, err)
		}
	}
	return nil
}

// writeRows 从 startRow 开始逐行写入
func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("写入 %s 第 %d 行失败: %w", sheet, startRow+i, err)
		}
	}
	return nil
}

func stringsToRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
