package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/store"
)

// Handler API 处理器
type Handler struct {
	store     *store.Store
	vocab     model.IngestVocabulary
	exportDir string
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(store *store.Store, vocab model.IngestVocabulary, exportDir string) *Handler {
	return &Handler{
		store:     store,
		vocab:     vocab,
		exportDir: exportDir,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 生效中的摄取词表
	router.GET("/config", h.GetConfig)

	// 数据导入
	router.POST("/import", h.Import)

	// 日历事件查询
	router.GET("/events", h.ListEvents)
	router.GET("/events/:id", h.GetEvent)

	// 日历导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
