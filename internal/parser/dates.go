package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// 电子表格日期序列号（1900 纪元，25569 = 1970-01-01 UTC）的合理窗口：
// 取两位年份写法能表达的 2000-01-01 ~ 2099-12-31，窗口外的数字
// （如数量列）不当作日期处理
const (
	serialEpochOffset = 25569
	serialMin         = 36526 // 2000-01-01
	serialMax         = 73050 // 2099-12-31
)

var strictDMYPattern = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{2})$`)

// NormalizeDate 把原始单元格值规范化为当日零点（本地时区）的日期
// 按严格优先级尝试，先中先赢：数字序列号（转 DD-MM-YY 字符串后复用同一条
// 严格规则，数字与字符串两条入口不可能出现日月转置分歧）→ 严格 DD-MM-YY →
// ISO YYYY-MM-DD 前缀 → 固定格式兜底；全部失败返回 false，绝不回填默认日期
func NormalizeDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	// 1. 数字序列号；窗口外的数值不是日期，继续按字符串规则尝试
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if t, ok := normalizeSerial(serial); ok {
			return t, true
		}
	}

	// 2. 严格两位 DD-MM-YY
	if t, ok := parseStrictDMY(value); ok {
		return t, true
	}

	// 3. ISO 8601 完整日期前缀
	if t, ok := parseISOPrefix(value); ok {
		return t, true
	}

	// 4. 固定格式兜底（历史数据：四位年份或斜杠分隔）
	for _, layout := range []string{"02-01-06", "02-01-2006", "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return startOfDay(t), true
		}
	}

	return time.Time{}, false
}

// normalizeSerial 序列号转日期：小数部分（时刻）直接舍弃
func normalizeSerial(serial float64) (time.Time, bool) {
	days := int64(serial)
	if days < serialMin || days > serialMax {
		return time.Time{}, false
	}
	utc := time.Unix((days-serialEpochOffset)*86400, 0).UTC()
	return parseStrictDMY(utc.Format("02-01-06"))
}

// parseStrictDMY 严格两位日-月-年：只认 DD-MM-YY 整串，两位年份映射为 2000+YY
// 逐字段校验后再按真实日历复核（拒绝如 4月31日）
func parseStrictDMY(value string) (time.Time, bool) {
	m := strictDMYPattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	yy, _ := strconv.Atoi(m[3])
	year := 2000 + yy
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date 会把溢出的日份进位到下个月，复核各字段防止静默接受
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// parseISOPrefix 仅接受完整日历日期前缀 YYYY-MM-DD，不接受其他 ISO 变体
func parseISOPrefix(value string) (time.Time, bool) {
	if len(value) < 10 || value[4] != '-' || value[7] != '-' {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", value[:10], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
