package calculator

import (
	"baljuseo/internal/model"
)

// Summary 按商品标签汇总数量与金额
type Summary struct {
	prices model.PriceTable
	order  []string       // 首次出现顺序
	totals map[string]int // 标签 → 累计数量
}

// NewSummary 创建汇总器
func NewSummary(prices model.PriceTable) *Summary {
	return &Summary{
		prices: prices,
		totals: make(map[string]int),
	}
}

// Accumulate 累加一行的数量
func (s *Summary) Accumulate(label string, quantity int) {
	if _, ok := s.totals[label]; !ok {
		s.order = append(s.order, label)
	}
	s.totals[label] += quantity
}

// Finalize 生成汇总结果
// 未登记单价的标签按 0 计价，仍保留该行
func (s *Summary) Finalize() model.SummaryReport {
	report := model.SummaryReport{
		Entries: make([]model.SummaryEntry, 0, len(s.order)),
	}

	for _, label := range s.order {
		qty := s.totals[label]
		price := s.prices.Price(label)
		entry := model.SummaryEntry{
			Label:     label,
			Quantity:  qty,
			UnitPrice: price,
			LineTotal: int64(qty) * price,
		}
		report.Entries = append(report.Entries, entry)

		report.Total.Quantity += entry.Quantity
		report.Total.LineTotal += entry.LineTotal
	}

	return report
}

// UnpricedLabels 汇总中没有登记单价的标签
func (s *Summary) UnpricedLabels() []string {
	var out []string
	for _, label := range s.order {
		if !s.prices.Has(label) {
			out = append(out, label)
		}
	}
	return out
}
