package api

import (
	"fmt"
	"net/url"
	"strings"
)

// buildContentDisposition 生成附件下载头
// filename 为 ASCII 兜底名，filename* 按 RFC 5987 携带韩文原名
func buildContentDisposition(fileName, fallback string) string {
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", asciiFileName(fallback), url.PathEscape(fileName))
}

func asciiFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "download.xlsx"
	}
	return b.String()
}
