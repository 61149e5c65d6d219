package model

// RawRow 原始数据行：表头 -> 单元格原文
// 未被识别的列原样保留，供详情页透传展示；行本身只读，规范化产物另建副本
type RawRow struct {
	Index   int               `json:"index"`   // 源文件行号（表头为第 1 行，数据从 2 起）
	Headers []string          `json:"headers"` // 原始表头顺序
	Cells   map[string]string `json:"cells"`   // 原始表头 -> 单元格原文
}

// Get 按原始表头取单元格值
func (r *RawRow) Get(header string) string {
	if r == nil || r.Cells == nil {
		return ""
	}
	return r.Cells[header]
}
