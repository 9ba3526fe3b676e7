package converter

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"baljuseo/internal/calculator"
	"baljuseo/internal/exporter"
	"baljuseo/internal/model"
	"baljuseo/internal/parser"
)

// Converter 配送清单 → 发注书 转换器
//
// 单次转换内的所有状态（表头索引、汇总、输出行）都是局部的，Converter 本身可被多个请求共用。
type Converter struct {
	profile model.Profile
	prices  model.PriceTable
	now     func() time.Time
}

// NewConverter 创建转换器
func NewConverter(profile model.Profile, prices model.PriceTable) *Converter {
	return &Converter{
		profile: profile,
		prices:  prices,
		now:     time.Now,
	}
}

// Profile 当前输出版本
func (c *Converter) Profile() model.Profile {
	return c.profile
}

// Prices 单价表
func (c *Converter) Prices() model.PriceTable {
	return c.prices
}

// Result 转换结果
type Result struct {
	ID             string
	File           *excelize.File
	FileName       string
	SourceSheet    string
	Lines          int
	Summary        model.SummaryReport
	UnpricedLabels []string
	Duration       time.Duration
}

// Close 释放输出工作簿
func (r *Result) Close() error {
	if r == nil || r.File == nil {
		return nil
	}
	return r.File.Close()
}

// Convert 从上传流读取工作簿并转换
func (c *Converter) Convert(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parser.ErrInvalidWorkbook, err)
	}
	defer f.Close()

	return c.ConvertWorkbook(f)
}

// ConvertFile 转换本地文件
func (c *Converter) ConvertFile(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parser.ErrInvalidWorkbook, err)
	}
	defer f.Close()

	return c.ConvertWorkbook(f)
}

// ConvertWorkbook 转换已打开的工作簿（读取活动工作表）
// 任一行出错即中止，不返回部分结果
func (c *Converter) ConvertWorkbook(f *excelize.File) (*Result, error) {
	start := c.now()
	id := uuid.New().String()

	sheet := sourceSheet(f)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", parser.ErrInvalidWorkbook)
	}

	// 读存储值而非显示文本：数字订单号不能变成科学计数法，#,##0 的数量不能带逗号
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", parser.ErrInvalidWorkbook, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: %w", sheet, parser.ErrMissingHeader)
	}

	mapper, err := parser.NewRowMapper(rows[0], model.OrderColumns(c.profile))
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	summary := calculator.NewSummary(c.prices)
	lines := make([]model.OrderLine, 0, len(rows)-1)

	// 只去掉表尾的空行；中间的空行按普通数据行处理，数量为空即报错
	last := len(rows) - 1
	for last > 0 && parser.IsBlankRow(rows[last]) {
		last--
	}

	for i, row := range rows[1 : last+1] {
		line, err := mapper.Map(row, i+2)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		lines = append(lines, line)
		summary.Accumulate(line.Label, line.Quantity)
	}

	report := summary.Finalize()

	out, err := exporter.NewExporter(c.profile).Export(exporter.ExportOptions{
		Headers: mapper.Headers(),
		Lines:   lines,
		Summary: report,
	})
	if err != nil {
		return nil, fmt.Errorf("生成发注书失败: %w", err)
	}

	result := &Result{
		ID:             id,
		File:           out,
		FileName:       c.profile.FileName(start),
		SourceSheet:    sheet,
		Lines:          len(lines),
		Summary:        report,
		UnpricedLabels: summary.UnpricedLabels(),
		Duration:       c.now().Sub(start),
	}

	log.Printf("[convert %s] sheet=%q rows=%d labels=%d quantity=%d total=%d (%s)",
		id, sheet, result.Lines, len(report.Entries), report.Total.Quantity, report.Total.LineTotal, result.Duration)
	if len(result.UnpricedLabels) > 0 {
		log.Printf("[convert %s] 未登记单价的标签按 0 计价: %v", id, result.UnpricedLabels)
	}

	return result, nil
}

// sourceSheet 活动工作表，取不到时退回第一个工作表
func sourceSheet(f *excelize.File) string {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name
	}
	if list := f.GetSheetList(); len(list) > 0 {
		return list[0]
	}
	return ""
}

// IsInputError 错误是否由上传内容本身引起（缺表头、数量非法、文件损坏）
func IsInputError(err error) bool {
	return errors.Is(err, parser.ErrMissingHeader) ||
		errors.Is(err, parser.ErrInvalidQuantity) ||
		errors.Is(err, parser.ErrInvalidWorkbook)
}
