package parser

import (
	"strings"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

// NormalizeHeader 规范化表头：去 BOM、小写、下划线/连字符转空格、压缩空白
// 两个表头相等当且仅当规范化结果相等（不做编辑距离等模糊匹配）
func NormalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.Join(strings.Fields(name), " ")
}

// HeaderIndex 规范化表头 -> 原始表头
type HeaderIndex map[string]string

// NewHeaderIndex 为一组表头构建索引，规范化后同名的表头保留先出现者
func NewHeaderIndex(headers []string) HeaderIndex {
	idx := make(HeaderIndex, len(headers))
	for _, h := range headers {
		key := NormalizeHeader(h)
		if key == "" {
			continue
		}
		if _, ok := idx[key]; !ok {
			idx[key] = h
		}
	}
	return idx
}

// Resolve 依次尝试候选表头（靠前优先），返回命中的原始表头
func (idx HeaderIndex) Resolve(candidates []string) (string, bool) {
	for _, cand := range candidates {
		if raw, ok := idx[NormalizeHeader(cand)]; ok {
			return raw, true
		}
	}
	return "", false
}

// ResolveField 从行中取第一个命中候选表头的原值
func ResolveField(row *model.RawRow, candidates []string) (string, bool) {
	if raw, ok := NewHeaderIndex(row.Headers).Resolve(candidates); ok {
		return row.Get(raw), true
	}
	return "", false
}
