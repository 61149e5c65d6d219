package model

import (
	"fmt"
	"time"
)

// LineItem 行项目：名称 + 数量
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`          // 恒 >= 1，源文本无数量时默认 1
	RawText  string `json:"rawText,omitempty"` // 解析前的原始片段
}

// ClassifiedItem 分类后的行项目：机器码前缀 + 人读标题
// 按需投影计算，不随事件落库，分类规则演进后随取随新
type ClassifiedItem struct {
	SKU      string `json:"sku"`
	Title    string `json:"title"` // 永不为空，兜底为原始名称
	Quantity int    `json:"quantity"`
}

// OrderEvent 规范化后的配送事件：一个 (订单, 解析日期) 组合对应一条
// 一行源数据产出一条事件；当条目单元格内嵌多个日期标签时按标签拆成多条
type OrderEvent struct {
	ID      string     `json:"id"`
	OrderID string     `json:"orderId"`
	Date    time.Time  `json:"date"` // 当日零点（本地时区），事件归属日的唯一口径
	Items   []LineItem `json:"items"`
	Source  *RawRow    `json:"source,omitempty"` // 只读回引，仅用于展示，不再参与推导
}

// Title 日历展示标题
func (e *OrderEvent) Title() string {
	return e.OrderID
}

// Start 当日起点
func (e *OrderEvent) Start() time.Time {
	return e.Date
}

// End 当日终点（23:59:59）
func (e *OrderEvent) End() time.Time {
	return e.Date.AddDate(0, 0, 1).Add(-time.Second)
}

// EventStats 事件聚合统计
type EventStats struct {
	Units   int `json:"units"`   // 总件数
	Hampers int `json:"hampers"` // 包装（礼篮）件数
}

// Summary 摘要行
func (s EventStats) Summary() string {
	return fmt.Sprintf("Hampers: %d • Units: %d", s.Hampers, s.Units)
}
