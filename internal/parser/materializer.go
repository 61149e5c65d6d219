package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

// 片段前置日期标签：DD-MM-YY- 整形式（两位-两位-两位再跟一个连字符）
var dateTagPattern = regexp.MustCompile(`^(\d{2}-\d{2}-\d{2})-(.*)$`)

// Materializer 事件物化器：RawRow -> 0..N 条配送事件的纯函数式转换
type Materializer struct {
	vocab model.IngestVocabulary
}

// NewMaterializer 创建事件物化器
func NewMaterializer(vocab model.IngestVocabulary) *Materializer {
	return &Materializer{vocab: vocab}
}

// ValidateHeaders 批级校验：订单号列与配送日期列必须在任一同义词下可解析
// 校验失败属批级错误，调用方应在处理任何行之前中止整批
func (m *Materializer) ValidateHeaders(headers []string) error {
	idx := NewHeaderIndex(headers)
	var missing []string
	if _, ok := idx.Resolve(m.vocab.Fields.OrderID); !ok {
		missing = append(missing, "order id")
	}
	if _, ok := idx.Resolve(m.vocab.Fields.DeliveryDate); !ok {
		missing = append(missing, "delivery date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// MaterializeBatch 物化整批：先批级校验，再逐行独立处理
// 返回事件列表与被丢弃的日期分组总数；行级失败只体现为结果缺席
func (m *Materializer) MaterializeBatch(headers []string, rows []*model.RawRow) ([]*model.OrderEvent, int, error) {
	if err := m.ValidateHeaders(headers); err != nil {
		return nil, 0, err
	}

	var all []*model.OrderEvent
	var dropped int
	for _, row := range rows {
		events, d := m.MaterializeRow(row)
		all = append(all, events...)
		dropped += d
	}
	return all, dropped, nil
}

// MaterializeRow 物化单行，返回事件与被丢弃的日期分组数
// 无订单号的行无条件跳过；日期全部无法解析的行同样跳过，均不报错
func (m *Materializer) MaterializeRow(row *model.RawRow) (events []*model.OrderEvent, dropped int) {
	idx := NewHeaderIndex(row.Headers)

	orderID := strings.TrimSpace(resolveValue(row, idx, m.vocab.Fields.OrderID))
	if orderID == "" {
		return nil, 0
	}

	itemsCell := resolveValue(row, idx, m.vocab.Fields.Items)
	fragments := SplitFragments(itemsCell)

	// 片段级日期标签分组，保持标签首次出现的顺序
	type dateGroup struct {
		tag       string
		remainder []string
	}
	var groups []*dateGroup
	groupIndex := make(map[string]*dateGroup)
	for _, frag := range fragments {
		matched := dateTagPattern.FindStringSubmatch(frag)
		if matched == nil {
			continue
		}
		g, ok := groupIndex[matched[1]]
		if !ok {
			g = &dateGroup{tag: matched[1]}
			groupIndex[matched[1]] = g
			groups = append(groups, g)
		}
		g.remainder = append(g.remainder, matched[2])
	}

	if len(groups) > 0 {
		for _, g := range groups {
			date, ok := NormalizeDate(g.tag)
			if !ok {
				// 标签解析失败整组丢弃，同行其余分组不受影响，只计数
				dropped++
				continue
			}
			// 分组余量回拼成单元格再走线下文法，结果视作预计算条目
			items := ParseOfflineItems(strings.Join(g.remainder, ","))
			events = append(events, m.newEvent(orderID, date, items, row))
		}
		return events, dropped
	}

	// 无内嵌日期分组：整行单事件，日期取配送日期列
	date, ok := NormalizeDate(resolveValue(row, idx, m.vocab.Fields.DeliveryDate))
	if !ok {
		return nil, 0
	}

	items := ParseOfflineItems(itemsCell)
	if len(items) == 0 {
		items = ParseNotes(resolveValue(row, idx, m.vocab.Fields.Notes))
	}

	return []*model.OrderEvent{m.newEvent(orderID, date, items, row)}, 0
}

func (m *Materializer) newEvent(orderID string, date time.Time, items []model.LineItem, row *model.RawRow) *model.OrderEvent {
	return &model.OrderEvent{
		ID:      uuid.New().String(),
		OrderID: orderID,
		Date:    date,
		Items:   items,
		Source:  row,
	}
}

func resolveValue(row *model.RawRow, idx HeaderIndex, candidates []string) string {
	if raw, ok := idx.Resolve(candidates); ok {
		return row.Get(raw)
	}
	return ""
}
