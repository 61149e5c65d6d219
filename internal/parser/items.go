package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

var (
	// 片段末尾的数量后缀：「<空格>-<空格><整数>」
	qtySuffixPattern = regexp.MustCompile(`^(.*) - (\d+)$`)

	// 备注行文法规则表：按序尝试，先中先赢；标记符为 - 或 *，x 不区分大小写
	notesMarkerQtyPattern = regexp.MustCompile(`^[-*]\s+(\d+)\s*[xX]\s+(.+)$`)
	notesQtyPattern       = regexp.MustCompile(`^(\d+)\s*[xX]\s+(.+)$`)
	notesMarkerPattern    = regexp.MustCompile(`^[-*]\s+(.+)$`)
)

// SplitFragments 把条目单元格切分为片段：换行必切，引号外的逗号才切
func SplitFragments(cell string) []string {
	var fragments []string
	var buf strings.Builder
	inQuote := false

	flush := func() {
		frag := strings.TrimSpace(buf.String())
		if frag != "" {
			fragments = append(fragments, frag)
		}
		buf.Reset()
	}

	for _, r := range cell {
		switch {
		case r == '"':
			inQuote = !inQuote
			buf.WriteRune(r)
		case r == '\n':
			flush()
		case r == ',' && !inQuote:
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return fragments
}

// ParseOfflineItems 线下条目文法：片段末尾的「 - N」为数量后缀，
// 其余文本（含前置编码）原样作为名称，不做进一步裁剪
func ParseOfflineItems(cell string) []model.LineItem {
	var items []model.LineItem
	for _, frag := range SplitFragments(cell) {
		items = append(items, parseOfflineFragment(frag))
	}
	return Consolidate(items)
}

func parseOfflineFragment(frag string) model.LineItem {
	item := model.LineItem{Name: frag, Quantity: 1, RawText: frag}
	if m := qtySuffixPattern.FindStringSubmatch(frag); m != nil {
		if qty, err := strconv.Atoi(m[2]); err == nil && qty >= 1 {
			item.Name = strings.TrimSpace(m[1])
			item.Quantity = qty
		}
	}
	return item
}

// ParseNotes 备注文法：逐行按规则表匹配，未命中任何规则的行忽略
// 仅在主条目字段为空或解析出零条时作为兜底使用
func ParseNotes(cell string) []model.LineItem {
	var items []model.LineItem
	for _, line := range strings.Split(cell, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := notesMarkerQtyPattern.FindStringSubmatch(line); m != nil {
			items = append(items, notesItem(m[2], m[1], line))
			continue
		}
		if m := notesQtyPattern.FindStringSubmatch(line); m != nil {
			items = append(items, notesItem(m[2], m[1], line))
			continue
		}
		if m := notesMarkerPattern.FindStringSubmatch(line); m != nil {
			items = append(items, notesItem(m[1], "", line))
		}
	}
	return Consolidate(items)
}

func notesItem(name, qtyText, raw string) model.LineItem {
	qty := 1
	if qtyText != "" {
		if n, err := strconv.Atoi(qtyText); err == nil && n >= 1 {
			qty = n
		}
	}
	return model.LineItem{Name: strings.TrimSpace(name), Quantity: qty, RawText: raw}
}

// Consolidate 按名称（不区分大小写）合并数量，保留首次出现的大小写拼写
// 幂等：合并结果再次合并不变
func Consolidate(items []model.LineItem) []model.LineItem {
	merged := make([]model.LineItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		key := strings.ToLower(item.Name)
		if i, ok := index[key]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[key] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
