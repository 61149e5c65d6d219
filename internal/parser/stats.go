package parser

import "github.com/hardikgolchha89/fulfillment-calendar/internal/model"

// ComputeStats 事件聚合统计：总件数与包装（礼篮）件数
// 每次调用重新计算，不做缓存，分类规则可独立于已存事件演进
func ComputeStats(items []model.LineItem, packagingCodes []string) model.EventStats {
	var stats model.EventStats
	for _, item := range items {
		stats.Units += item.Quantity
		if IsPackagingSKU(Classify(item).SKU, packagingCodes) {
			stats.Hampers += item.Quantity
		}
	}
	return stats
}
