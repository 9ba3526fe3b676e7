package exporter

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"baljuseo/internal/model"
)

// writeOrderSheet 写入发注书：表头（底色/加粗/居中）+ 按给定顺序的数据行 + 自动列宽
func writeOrderSheet(f *excelize.File, styles *styleSet, sheet string, headers []string, lines []model.OrderLine) error {
	rows := make([][]interface{}, 0, len(lines)+1)
	rows = append(rows, stringsToRow(headers))
	for _, line := range lines {
		rows = append(rows, line.Values)
	}

	if err := writeRows(f, sheet, 1, rows); err != nil {
		return err
	}

	if len(headers) > 0 {
		if err := styles.applyStyle(sheet, styleKey{header: true}, 1, 1, len(headers), 1); err != nil {
			return fmt.Errorf("设置 %s 表头样式失败: %w", sheet, err)
		}
	}

	return autoFitColumns(f, sheet, rows)
}

// sortLinesByLabel 按商品标签升序稳定排序（相同标签保持输入顺序），不修改入参
func sortLinesByLabel(lines []model.OrderLine) []model.OrderLine {
	sorted := make([]model.OrderLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Label < sorted[j].Label
	})
	return sorted
}
