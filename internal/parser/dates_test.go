package parser

import (
	"fmt"
	"testing"
	"time"
)

func mustDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestNormalizeDate_StrictDMY(t *testing.T) {
	t.Parallel()

	got, ok := NormalizeDate("10-03-25")
	if !ok {
		t.Fatalf("expected parse success")
	}
	// 日-月-年口径：3月10日，绝不是美式的10月3日
	if !got.Equal(mustDate(2025, time.March, 10)) {
		t.Fatalf("unexpected date: %v", got)
	}
}

func TestNormalizeDate_InvalidFields(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"32-01-25", // 日超界
		"10-13-25", // 月超界
		"31-04-25", // 4月没有31日
		"29-02-25", // 2025 非闰年
		"00-01-25",
	} {
		if _, ok := NormalizeDate(in); ok {
			t.Fatalf("expected %q to be unparseable", in)
		}
	}
}

func TestNormalizeDate_ISOPrefix(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"2025-03-10", "2025-03-10T08:30:00", "2025-03-10 08:30"} {
		got, ok := NormalizeDate(in)
		if !ok {
			t.Fatalf("expected %q to parse", in)
		}
		if !got.Equal(mustDate(2025, time.March, 10)) {
			t.Fatalf("%q -> unexpected date %v", in, got)
		}
	}

	if _, ok := NormalizeDate("2025-3-10"); ok {
		t.Fatalf("expected loose ISO variant to be rejected by the ISO rule path")
	}
}

func TestNormalizeDate_FixedFallbacks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want time.Time
	}{
		{"10-03-2025", mustDate(2025, time.March, 10)},
		{"10/03/2025", mustDate(2025, time.March, 10)},
	}
	for _, c := range cases {
		got, ok := NormalizeDate(c.in)
		if !ok {
			t.Fatalf("expected %q to parse", c.in)
		}
		if !got.Equal(c.want) {
			t.Fatalf("%q -> %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeDate_SerialAgreesWithString(t *testing.T) {
	t.Parallel()

	// 数字入口与字符串入口必须给出同一天
	for _, serial := range []int64{serialMin, 45726, 60000, serialMax} {
		utc := time.Unix((serial-serialEpochOffset)*86400, 0).UTC()
		asString := utc.Format("02-01-06")

		fromSerial, ok := NormalizeDate(fmt.Sprintf("%d", serial))
		if !ok {
			t.Fatalf("serial %d should parse", serial)
		}
		fromString, ok := NormalizeDate(asString)
		if !ok {
			t.Fatalf("string %q should parse", asString)
		}
		if !fromSerial.Equal(fromString) {
			t.Fatalf("serial %d (%s): %v != %v", serial, asString, fromSerial, fromString)
		}
	}
}

func TestNormalizeDate_SerialKnownDate(t *testing.T) {
	t.Parallel()

	// 45726 = 2025-03-10；小数部分为时刻，直接舍弃
	for _, in := range []string{"45726", "45726.75"} {
		got, ok := NormalizeDate(in)
		if !ok {
			t.Fatalf("expected %q to parse", in)
		}
		if !got.Equal(mustDate(2025, time.March, 10)) {
			t.Fatalf("%q -> unexpected date %v", in, got)
		}
	}
}

func TestNormalizeDate_SerialWindow(t *testing.T) {
	t.Parallel()

	// 窗口外的数字（如数量列）不当作日期
	for _, in := range []string{"2", "500", "36525", "73051", "-5"} {
		if _, ok := NormalizeDate(in); ok {
			t.Fatalf("expected %q outside serial window to be unparseable", in)
		}
	}

	got, ok := NormalizeDate("36526")
	if !ok || !got.Equal(mustDate(2000, time.January, 1)) {
		t.Fatalf("window lower bound: got %v ok=%v", got, ok)
	}
}

func TestNormalizeDate_Unparseable(t *testing.T) {
	t.Parallel()

	// 单位数写法不属于任何固定格式
	for _, in := range []string{"", "  ", "next tuesday", "13-2025", "10.03.2025", "5-1-25"} {
		if _, ok := NormalizeDate(in); ok {
			t.Fatalf("expected %q to be unparseable", in)
		}
	}
}
