package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"baljuseo/internal/model"
)

// Exporter 发注书工作簿生成器
//
// 只负责排版：不做任何校验，失败只可能来自 excelize 本身。
type Exporter struct {
	profile model.Profile
}

// NewExporter 创建导出器
func NewExporter(profile model.Profile) *Exporter {
	return &Exporter{
		profile: profile,
	}
}

// ExportOptions 导出内容
type ExportOptions struct {
	Headers []string
	Lines   []model.OrderLine
	Summary model.SummaryReport
}

// Export 生成工作簿：발주서 / 발주 정리표 / 발주서_크기순（按版本开关）
func (e *Exporter) Export(opts ExportOptions) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.fill(f, opts); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func (e *Exporter) fill(f *excelize.File, opts ExportOptions) error {
	styles := newStyleSet(f)

	if err := f.SetSheetName(f.GetSheetName(0), model.SheetOrder); err != nil {
		return fmt.Errorf("重命名工作表失败: %w", err)
	}
	if err := writeOrderSheet(f, styles, model.SheetOrder, opts.Headers, opts.Lines); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", model.SheetOrder, err)
	}

	if e.profile.SummarySheet {
		if _, err := f.NewSheet(model.SheetSummary); err != nil {
			return fmt.Errorf("创建 %s 失败: %w", model.SheetSummary, err)
		}
		if err := writeSummarySheet(f, styles, model.SheetSummary, opts.Summary, e.profile.SummaryStyling); err != nil {
			return fmt.Errorf("写入 %s 失败: %w", model.SheetSummary, err)
		}
	}

	if e.profile.SortedSheet {
		if _, err := f.NewSheet(model.SheetSorted); err != nil {
			return fmt.Errorf("创建 %s 失败: %w", model.SheetSorted, err)
		}
		if err := writeOrderSheet(f, styles, model.SheetSorted, opts.Headers, sortLinesByLabel(opts.Lines)); err != nil {
			return fmt.Errorf("写入 %s 失败: %w", model.SheetSorted, err)
		}
	}

	return nil
}
