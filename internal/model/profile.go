package model

import (
	"fmt"
	"time"
)

// 输出工作表名称
const (
	SheetOrder   = "발주서"
	SheetSummary = "발주 정리표"
	SheetSorted  = "발주서_크기순"
)

// LatestVersion 当前最新的输出版本
const LatestVersion = 4

// Profile 输出版本特性
//
// 历史上的四个版本只在列、工作表、样式和文件名日期上有差异，统一用开关表示。
type Profile struct {
	Version        int
	UnitColumns    bool // 박스단위 / 부피단위 两列
	SummarySheet   bool // 발주 정리표
	SummaryStyling bool // 정리표 标题行 + 边框
	SortedSheet    bool // 발주서_크기순
	BoxUnit        int
	VolumeUnit     int
	DateLayout     string
	Location       *time.Location
	BusinessName   string
}

// ProfileForVersion 返回指定版本的默认特性
func ProfileForVersion(version int) (Profile, error) {
	p := Profile{
		Version:    version,
		BoxUnit:    1,
		VolumeUnit: 60,
		DateLayout: "20060102",
		Location:   time.Local,
	}

	switch version {
	case 1:
	case 2:
		p.SummarySheet = true
	case 3:
		p.SummarySheet = true
		p.SummaryStyling = true
	case 4:
		p.SummarySheet = true
		p.SummaryStyling = true
		p.SortedSheet = true
		p.UnitColumns = true
	default:
		return Profile{}, fmt.Errorf("unsupported version: %d", version)
	}

	if version >= 3 {
		p.DateLayout = "2006-01-02"
		if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
			p.Location = loc
		} else {
			p.Location = time.FixedZone("KST", 9*60*60)
		}
	}

	return p, nil
}

// SheetNames 按输出顺序列出工作表
func (p Profile) SheetNames() []string {
	names := []string{SheetOrder}
	if p.SummarySheet {
		names = append(names, SheetSummary)
	}
	if p.SortedSheet {
		names = append(names, SheetSorted)
	}
	return names
}

// DateStamp 按版本的时区与格式生成日期戳
func (p Profile) DateStamp(now time.Time) string {
	loc := p.Location
	if loc == nil {
		loc = time.Local
	}
	layout := p.DateLayout
	if layout == "" {
		layout = "20060102"
	}
	return now.In(loc).Format(layout)
}

// FileName 下载文件名：발주서_{日期}_{商号}.xlsx
func (p Profile) FileName(now time.Time) string {
	name := SheetOrder + "_" + p.DateStamp(now)
	if p.BusinessName != "" {
		name += "_" + p.BusinessName
	}
	return name + ".xlsx"
}
