package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"baljuseo/internal/model"
)

var summaryHeaders = []string{"상품", "수량", "단가", "합계"}

// writeSummarySheet 写入发注整理表
//
// styled 为 true 时在表格上方加合并标题行，并给表格（含合计行）加边框。
func writeSummarySheet(f *excelize.File, styles *styleSet, sheet string, report model.SummaryReport, styled bool) error {
	headerRow := 1
	if styled {
		headerRow = 2
	}

	body := report.Rows()
	rows := make([][]interface{}, 0, len(body)+1)
	rows = append(rows, stringsToRow(summaryHeaders))
	rows = append(rows, body...)

	if err := writeRows(f, sheet, headerRow, rows); err != nil {
		return err
	}

	cols := len(summaryHeaders)
	firstData := headerRow + 1
	totalRow := headerRow + len(rows) - 1
	lastEntry := totalRow - 1

	if styled {
		lastCol, err := excelize.ColumnNumberToName(cols)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, "A1", model.SheetSummary); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, "A1", fmt.Sprintf("%s1", lastCol)); err != nil {
			return fmt.Errorf("合并 %s 标题失败: %w", sheet, err)
		}
		if err := styles.applyStyle(sheet, styleKey{title: true}, 1, 1, cols, 1); err != nil {
			return err
		}
		if err := f.SetRowHeight(sheet, 1, 24); err != nil {
			return err
		}
	}

	if err := styles.applyStyle(sheet, styleKey{header: true, border: styled}, 1, headerRow, cols, headerRow); err != nil {
		return err
	}

	if lastEntry >= firstData {
		if err := styles.applyStyle(sheet, styleKey{border: styled}, 1, firstData, 2, lastEntry); err != nil {
			return err
		}
		if err := styles.applyStyle(sheet, styleKey{border: styled, number: true}, 3, firstData, cols, lastEntry); err != nil {
			return err
		}
	}

	if err := styles.applyStyle(sheet, styleKey{bold: true, border: styled}, 1, totalRow, 2, totalRow); err != nil {
		return err
	}
	if err := styles.applyStyle(sheet, styleKey{bold: true, border: styled, number: true}, 3, totalRow, cols, totalRow); err != nil {
		return err
	}

	// 단가 / 합계 以 #,##0 显示
	return autoFitColumns(f, sheet, displayRows(rows, 2, 3))
}
