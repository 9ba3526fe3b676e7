package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"baljuseo/internal/api"
	"baljuseo/internal/config"
	"baljuseo/internal/converter"
)

//go:embed web
var staticFiles embed.FS

// Server HTTP服务器
type Server struct {
	router  *gin.Engine
	handler *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	profile, err := cfg.Profile()
	if err != nil {
		return nil, err
	}
	prices := cfg.PriceTable()
	log.Printf("发注书版本 v%d，工作表 %v，单价 %d 项", profile.Version, profile.SheetNames(), prices.Len())

	conv := converter.NewConverter(profile, prices)

	s := &Server{
		router:  gin.Default(),
		handler: api.NewHandler(conv, cfg.MaxUploadBytes()),
	}
	s.router.MaxMultipartMemory = cfg.MaxUploadBytes()

	s.setupRoutes()

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	sub, _ := fs.Sub(staticFiles, "web")

	// 首页：上传表单
	s.router.GET("/", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	s.handler.RegisterRoutes(s.router)
}

// Handler 返回 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
