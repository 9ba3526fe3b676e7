package parser

import "strings"

// sizeRule 选项文本中的尺寸关键字 → 规范尺寸
type sizeRule struct {
	Keyword string
	Size    string
}

// sizeRules 按声明顺序匹配，先命中者生效
var sizeRules = []sizeRule{
	{Keyword: "대(14mm~16mm)", Size: "14mm이상"},
	{Keyword: "특대(16mm~18mm)", Size: "16mm이상"},
	{Keyword: "왕특(18mm이상)", Size: "18mm이상"},
}

// weightSeparator 重量位于最后一个分隔符之后
const weightSeparator = "_"

// NormalizeOption 将登记选项文本规范为 "{尺寸} {重量}"
//
// 匹配为精确子串匹配（不区分大小写处理、不去空白）。未命中任何尺寸关键字时原样返回。
//
//	NormalizeOption("대(14mm~16mm)_택배_600g") == "14mm이상 600g"
func NormalizeOption(raw string) string {
	for _, rule := range sizeRules {
		if !strings.Contains(raw, rule.Keyword) {
			continue
		}
		segments := strings.Split(raw, weightSeparator)
		weight := strings.TrimSpace(segments[len(segments)-1])
		return rule.Size + " " + weight
	}
	return raw
}

// IsKnownOption 选项文本是否命中尺寸关键字
func IsKnownOption(raw string) bool {
	for _, rule := range sizeRules {
		if strings.Contains(raw, rule.Keyword) {
			return true
		}
	}
	return false
}
