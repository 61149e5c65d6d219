package importer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/loader"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/parser"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/store"
)

// Coordinator 导入协调器：读取文件 -> 批级校验 -> 逐行物化 -> 落库
type Coordinator struct {
	store *store.Store
	vocab model.IngestVocabulary
}

// NewCoordinator 创建导入协调器
func NewCoordinator(store *store.Store, vocab model.IngestVocabulary) *Coordinator {
	return &Coordinator{
		store: store,
		vocab: vocab,
	}
}

// ImportOptions 导入选项
type ImportOptions struct {
	FilePath      string
	ClearExisting bool // 是否清空现有事件（重导整份导出时用）
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"` // start/info/warning/error/done
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ImportReport 导入报告
type ImportReport struct {
	Filename       string        `json:"filename"`
	TotalRows      int           `json:"totalRows"`
	ImportedEvents int           `json:"importedEvents"`
	SkippedRows    int           `json:"skippedRows"`    // 缺订单号或日期全部无法解析的行
	DroppedGroups  int           `json:"droppedGroups"`  // 日期标签解析失败而被丢弃的分组数
	Duration       time.Duration `json:"duration"`
}

// Import 执行导入，返回进度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	startTime := time.Now()
	filename := filepath.Base(opts.FilePath)

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "start",
		Message:   "开始导入订单导出文件",
		Data:      map[string]string{"filename": filename},
		Timestamp: time.Now(),
	})

	rows, headers, err := loader.LoadFile(opts.FilePath)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("读取文件失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "info",
		Message:   fmt.Sprintf("读取到 %d 行数据", len(rows)),
		Data:      map[string]interface{}{"total_rows": len(rows)},
		Timestamp: time.Now(),
	})

	// 批级校验：必需列缺失时整批中止，不处理任何行
	materializer := parser.NewMaterializer(c.vocab)
	if err := materializer.ValidateHeaders(headers); err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("缺少必需列，整批中止: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	report := &ImportReport{
		Filename:  filename,
		TotalRows: len(rows),
	}

	var events []*model.OrderEvent
	for _, row := range rows {
		rowEvents, dropped := materializer.MaterializeRow(row)
		report.DroppedGroups += dropped
		if len(rowEvents) == 0 {
			report.SkippedRows++
			continue
		}
		events = append(events, rowEvents...)
	}
	report.ImportedEvents = len(events)

	if report.SkippedRows > 0 {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("跳过 %d 行（缺订单号或日期无法解析）", report.SkippedRows),
			Timestamp: time.Now(),
		})
	}
	if report.DroppedGroups > 0 {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("丢弃 %d 个日期标签无法解析的条目分组", report.DroppedGroups),
			Timestamp: time.Now(),
		})
	}

	logID, err := c.store.CreateImportLog(filename)
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("创建导入日志失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	if opts.ClearExisting {
		if err := c.store.ClearEvents(); err != nil {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("清空旧事件失败: %v", err),
				Timestamp: time.Now(),
			})
		}
	}

	if err := c.store.BatchInsertEvents(events, logID); err != nil {
		_ = c.store.UpdateImportLog(logID, report.TotalRows, 0, report.SkippedRows, report.DroppedGroups, "error", err.Error())
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("批量写入失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}

	report.Duration = time.Since(startTime)

	if err := c.store.UpdateImportLog(logID, report.TotalRows, report.ImportedEvents, report.SkippedRows, report.DroppedGroups, "done", ""); err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("更新导入日志失败: %v", err),
			Timestamp: time.Now(),
		})
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "done",
		Message:   "导入完成",
		Data:      report,
		Timestamp: time.Now(),
	})
}

// sendProgress 发送进度事件（通道已满时丢弃）
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
	}
}
