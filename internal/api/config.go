package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

// ConfigResponse 生效中的摄取词表
type ConfigResponse struct {
	Fields         model.FieldVocabulary `json:"fields"`
	PackagingCodes []string              `json:"packagingCodes"`
}

// GetConfig 获取摄取词表
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		Fields:         h.vocab.Fields,
		PackagingCodes: h.vocab.PackagingCodes,
	})
}
