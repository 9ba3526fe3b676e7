package parser

import (
	"baljuseo/internal/model"
)

// RowMapper 行映射器：按表头名称取输入列，输出固定顺序的发注行
type RowMapper struct {
	columns  []model.OutputColumn
	colIndex map[string]int // 输入表头 → 列索引
	labelCol int            // 상품모델 在输出中的位置
}

// NewRowMapper 创建行映射器
// 表头索引在每次上传时只解析一次；任一必需表头缺失即返回 *HeaderError
func NewRowMapper(header []string, columns []model.OutputColumn) (*RowMapper, error) {
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		// 重复表头以第一次出现为准
		if _, ok := colIndex[name]; !ok {
			colIndex[name] = i
		}
	}

	for _, col := range columns {
		if col.Kind == model.ColumnConstant {
			continue
		}
		if _, ok := colIndex[col.Source]; !ok {
			return nil, &HeaderError{Header: col.Source}
		}
	}

	labelCol := -1
	for i, col := range columns {
		if col.Kind == model.ColumnNormalized {
			// 상품명与상품모델相同，取最后一个规范化列作为排序键
			labelCol = i
		}
	}

	return &RowMapper{
		columns:  columns,
		colIndex: colIndex,
		labelCol: labelCol,
	}, nil
}

// Headers 输出表头
func (m *RowMapper) Headers() []string {
	return model.Headers(m.columns)
}

// Map 映射单行，rowNum 为输入表中的行号（1 起，含表头）
func (m *RowMapper) Map(row []string, rowNum int) (model.OrderLine, error) {
	line := model.OrderLine{
		RowNum: rowNum,
		Values: make([]interface{}, len(m.columns)),
	}

	for i, col := range m.columns {
		switch col.Kind {
		case model.ColumnConstant:
			line.Values[i] = col.Constant
		case model.ColumnNormalized:
			line.Values[i] = NormalizeOption(cellAt(row, m.colIndex[col.Source]))
		case model.ColumnQuantity:
			raw := cellAt(row, m.colIndex[col.Source])
			qty, err := ParseQuantity(raw)
			if err != nil {
				return model.OrderLine{}, &CellError{Row: rowNum, Column: col.Source, Value: raw, Err: err}
			}
			line.Quantity = qty
			line.Values[i] = qty
		default:
			line.Values[i] = cellAt(row, m.colIndex[col.Source])
		}
	}

	if m.labelCol >= 0 {
		line.Label, _ = line.Values[m.labelCol].(string)
	}

	return line, nil
}
