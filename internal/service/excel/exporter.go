package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/parser"
)

const exportSheet = "Calendar"

// Exporter 日历导出器：把规范化事件写回一份干净的 Excel
type Exporter struct {
	packagingCodes []string
}

// NewExporter 创建导出器
func NewExporter(packagingCodes []string) *Exporter {
	return &Exporter{packagingCodes: packagingCodes}
}

// ExportEvents 写出事件列表，调用方负责 SaveAs 与 Close
// 事件按入参顺序写出（存储层已按日期升序返回）
func (e *Exporter) ExportEvents(events []*model.OrderEvent) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Order Number", "Delivery Date", "Items", "Units", "Hampers", "Summary"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, event := range events {
		stats := parser.ComputeStats(event.Items, e.packagingCodes)
		values := []interface{}{
			event.OrderID,
			event.Date.Format("2006-01-02"),
			formatItems(event.Items),
			stats.Units,
			stats.Hampers,
			stats.Summary(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	return f, nil
}

// formatItems 行项目拼为单元格文本，沿用 "名称 - 数量" 片段格式
func formatItems(items []model.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s - %d", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
