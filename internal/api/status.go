package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // 是否已初始化（有数据）
	TotalEvents    int    `json:"totalEvents"`    // 事件总数
	FirstEventDate string `json:"firstEventDate"` // 最早事件日期
	LastEventDate  string `json:"lastEventDate"`  // 最晚事件日期
	LastImportTime string `json:"lastImportTime"` // 最后导入时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count, err := h.store.CountEvents()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{
			Initialized: false,
		})
		return
	}

	response := StatusResponse{
		Initialized: count > 0,
		TotalEvents: count,
	}

	if first, last, ok, err := h.store.EventDateRange(); err == nil && ok {
		response.FirstEventDate = first
		response.LastEventDate = last
	}

	if lastImport, err := h.store.LastImportTime(); err == nil {
		response.LastImportTime = lastImport
	}

	c.JSON(http.StatusOK, response)
}
