package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

var hyphenSplitPattern = regexp.MustCompile(`\s*-\s*`)

// Classify 把条目名称拆为机器码前缀（SKU）与人读标题
// 自左向右扫描连字符分隔的 token：标题未开始且 token 不含小写字母时归入 SKU，
// 首个含小写字母的 token 起全部归入标题；全程未出现标题时 SKU 为整个名称，
// 标题兜底为原始名称（永不为空）
func Classify(item model.LineItem) model.ClassifiedItem {
	tokens := hyphenSplitPattern.Split(item.Name, -1)

	var skuTokens, titleTokens []string
	for _, tok := range tokens {
		if len(titleTokens) == 0 && !containsLower(tok) {
			skuTokens = append(skuTokens, tok)
			continue
		}
		titleTokens = append(titleTokens, tok)
	}

	classified := model.ClassifiedItem{
		SKU:      strings.Join(skuTokens, "-"),
		Title:    strings.Join(titleTokens, " - "),
		Quantity: item.Quantity,
	}
	if classified.Title == "" {
		classified.Title = item.Name
	}
	return classified
}

// ClassifyItems 按需计算整组条目的分类视图
func ClassifyItems(items []model.LineItem) []model.ClassifiedItem {
	out := make([]model.ClassifiedItem, 0, len(items))
	for _, item := range items {
		out = append(out, Classify(item))
	}
	return out
}

// IsPackagingSKU 判断 SKU 是否计入包装（礼篮）口径：
// SKU 的首个整 token 命中包装码集合（不区分大小写；子串不算）
func IsPackagingSKU(sku string, codes []string) bool {
	head, _, _ := strings.Cut(sku, "-")
	for _, code := range codes {
		if strings.EqualFold(head, code) {
			return true
		}
	}
	return false
}

func containsLower(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}
