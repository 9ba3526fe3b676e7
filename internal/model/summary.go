package model

// PriceTable 商品标签 → 单价（원）
//
// 启动时由配置加载，之后只读。
type PriceTable struct {
	prices map[string]int64
}

// NewPriceTable 创建单价表（复制传入的映射）
func NewPriceTable(prices map[string]int64) PriceTable {
	copied := make(map[string]int64, len(prices))
	for label, price := range prices {
		copied[label] = price
	}
	return PriceTable{prices: copied}
}

// Price 查询单价，未登记的标签返回 0
func (t PriceTable) Price(label string) int64 {
	return t.prices[label]
}

// Has 是否登记了该标签
func (t PriceTable) Has(label string) bool {
	_, ok := t.prices[label]
	return ok
}

// Len 已登记标签数量
func (t PriceTable) Len() int {
	return len(t.prices)
}

// SummaryEntry 汇总表中的一行
type SummaryEntry struct {
	Label     string `json:"label"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

// SummaryReport 汇总结果
type SummaryReport struct {
	Entries []SummaryEntry `json:"entries"` // 按首次出现顺序
	Total   SummaryEntry   `json:"total"`   // 合计行：Label 与 UnitPrice 为空
}

// Rows 渲染为表格行，合计行的标签与单价留空
func (r SummaryReport) Rows() [][]interface{} {
	rows := make([][]interface{}, 0, len(r.Entries)+1)
	for _, e := range r.Entries {
		rows = append(rows, []interface{}{e.Label, e.Quantity, e.UnitPrice, e.LineTotal})
	}
	rows = append(rows, []interface{}{"", r.Total.Quantity, "", r.Total.LineTotal})
	return rows
}
