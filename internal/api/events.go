package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/parser"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/store"
)

// EventSummary 日历视图用的事件摘要
type EventSummary struct {
	ID      string           `json:"id"`
	OrderID string           `json:"orderId"`
	Title   string           `json:"title"`
	Date    string           `json:"date"`  // YYYY-MM-DD
	Start   time.Time        `json:"start"` // 当日零点
	End     time.Time        `json:"end"`   // 当日 23:59:59
	Stats   model.EventStats `json:"stats"`
	Summary string           `json:"summary"`
}

// EventDetail 事件详情：摘要 + 行项目 + 分类视图 + 源行回引
type EventDetail struct {
	EventSummary
	Items      []model.LineItem       `json:"items"`
	Classified []model.ClassifiedItem `json:"classified"`
	Source     *model.RawRow          `json:"source,omitempty"`
}

func (h *Handler) eventSummary(event *model.OrderEvent) EventSummary {
	stats := parser.ComputeStats(event.Items, h.vocab.PackagingCodes)
	return EventSummary{
		ID:      event.ID,
		OrderID: event.OrderID,
		Title:   event.Title(),
		Date:    event.Date.Format("2006-01-02"),
		Start:   event.Start(),
		End:     event.End(),
		Stats:   stats,
		Summary: stats.Summary(),
	}
}

// ListEvents 查询日历事件
// GET /api/events?from=YYYY-MM-DD&to=YYYY-MM-DD&orderId=xxx
func (h *Handler) ListEvents(c *gin.Context) {
	var opts store.EventQueryOptions

	if raw := c.Query("from"); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 from 参数"})
			return
		}
		opts.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 to 参数"})
			return
		}
		opts.To = &to
	}
	if raw := c.Query("orderId"); raw != "" {
		opts.OrderID = &raw
	}

	events, err := h.store.ListEvents(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询事件失败"})
		return
	}

	summaries := make([]EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, h.eventSummary(event))
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  len(summaries),
		"events": summaries,
	})
}

// GetEvent 查询单个事件详情
// GET /api/events/:id
func (h *Handler) GetEvent(c *gin.Context) {
	event, err := h.store.GetEvent(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "事件不存在"})
		return
	}

	c.JSON(http.StatusOK, EventDetail{
		EventSummary: h.eventSummary(event),
		Items:        event.Items,
		Classified:   parser.ClassifyItems(event.Items),
		Source:       event.Source,
	})
}
