package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"baljuseo/internal/converter"
)

// Handler 发注书转换 API 处理器
type Handler struct {
	converter *converter.Converter
	maxUpload int64
	now       func() time.Time
}

// NewHandler 创建处理器
func NewHandler(conv *converter.Converter, maxUpload int64) *Handler {
	return &Handler{
		converter: conv,
		maxUpload: maxUpload,
		now:       time.Now,
	}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	// 上传并下载发注书
	router.POST("/convert", h.Convert)
	// 系统状态
	router.GET("/api/status", h.GetStatus)
}
