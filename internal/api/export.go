package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/service/excel"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/store"
)

// ExportRequest 导出请求（可选日期范围）
type ExportRequest struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`
}

// Export 导出日历事件为 Excel，返回一次性下载地址
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	// 空请求体等同于导出全部
	_ = c.ShouldBindJSON(&req)

	var opts store.EventQueryOptions
	if req.From != "" {
		from, err := time.ParseInLocation("2006-01-02", req.From, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 from 参数"})
			return
		}
		opts.From = &from
	}
	if req.To != "" {
		to, err := time.ParseInLocation("2006-01-02", req.To, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 to 参数"})
			return
		}
		opts.To = &to
	}

	events, err := h.store.ListEvents(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询事件失败"})
		return
	}

	exporter := excel.NewExporter(h.vocab.PackagingCodes)
	file, err := exporter.ExportEvents(events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成导出文件失败: " + err.Error()})
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("fulfillment_calendar_%s.xlsx", time.Now().Format("20060102_150405"))
	exportPath := filepath.Join(h.exportDir, filename)
	if err := file.SaveAs(exportPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入导出文件失败: " + err.Error()})
		return
	}

	token := h.downloads.put(exportPath, filename, 10*time.Minute)

	c.JSON(http.StatusOK, gin.H{
		"total":       len(events),
		"filename":    filename,
		"downloadUrl": "/api/export/download/" + token,
	})
}

// DownloadExport 下载导出文件（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 token"})
		return
	}

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接已失效"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件不存在"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(item.filePath)

	h.downloads.delete(token)
	_ = os.Remove(item.filePath)
}
