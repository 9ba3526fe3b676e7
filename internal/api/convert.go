package api

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"baljuseo/internal/converter"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Convert 上传配送清单，返回发注书
// POST /convert
func (h *Handler) Convert(c *gin.Context) {
	if h.maxUpload > 0 {
		// 多留 1MB 给 multipart 边界与其他字段
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "파일이 너무 큽니다"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드할 파일을 선택해 주세요"})
		return
	}
	defer file.Close()

	if h.maxUpload > 0 && header.Size > h.maxUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일이 너무 큽니다"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ".xlsx 파일만 지원합니다"})
		return
	}

	result, err := h.converter.Convert(file)
	if err != nil {
		if converter.IsInputError(err) {
			log.Printf("转换失败（上传内容有误） %s: %v", header.Filename, err)
		} else {
			log.Printf("转换失败 %s: %v", header.Filename, err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "변환 실패: " + err.Error()})
		return
	}
	defer result.Close()

	// 先完整写入内存，失败时不会向客户端输出半个文件
	buf, err := result.File.WriteToBuffer()
	if err != nil {
		log.Printf("[convert %s] 写入发注书失败: %v", result.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일 생성 실패"})
		return
	}

	profile := h.converter.Profile()
	fallback := "purchase-order-" + profile.DateStamp(h.now()) + ".xlsx"

	c.Header("Content-Disposition", buildContentDisposition(result.FileName, fallback))
	c.Header("X-Conversion-Id", result.ID)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
