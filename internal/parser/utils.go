package parser

import (
	"math"
	"strconv"
	"strings"
)

// cellAt 按列索引取单元格，行尾空单元格被 excelize 省略时返回空串
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// IsBlankRow 整行单元格均为空白
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ParseQuantity 将数量单元格转换为整数
// 支持 "3"、" 3 "、"3.0"，小数部分非零或非数字时返回 ErrInvalidQuantity
func ParseQuantity(value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, ErrInvalidQuantity
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, ErrInvalidQuantity
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, ErrInvalidQuantity
	}
	return int(f), nil
}
