package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Version      int      `json:"version"`      // 输出版本
	Sheets       []string `json:"sheets"`       // 输出工作表
	UnitColumns  bool     `json:"unitColumns"`  // 是否输出 박스단위/부피단위
	BusinessName string   `json:"businessName"` // 文件名后缀
	Timezone     string   `json:"timezone"`     // 文件名日期所用时区
	PriceCount   int      `json:"priceCount"`   // 已登记单价的标签数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	p := h.converter.Profile()

	tz := ""
	if p.Location != nil {
		tz = p.Location.String()
	}

	c.JSON(http.StatusOK, StatusResponse{
		Version:      p.Version,
		Sheets:       p.SheetNames(),
		UnitColumns:  p.UnitColumns,
		BusinessName: p.BusinessName,
		Timezone:     tz,
		PriceCount:   h.converter.Prices().Len(),
	})
}
