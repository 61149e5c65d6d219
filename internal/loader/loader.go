package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

// LoadFile 按扩展名选择加载器读取订单导出文件
func LoadFile(path string) ([]*model.RawRow, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return LoadCSV(f)
	}
	return LoadWorkbook(f)
}

// LoadWorkbook 读取 xlsx：取第一个有数据的工作表，首行为表头
// 单元格按原始值读取（RawCellValue），日期样式的单元格返回序列号原文，
// 数字与字符串入口由日期规范化统一消歧
func LoadWorkbook(r io.Reader) ([]*model.RawRow, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil || len(rows) == 0 {
			continue
		}
		headers := trimBOM(rows[0])
		return buildRows(headers, rows[1:]), headers, nil
	}

	return nil, nil, errors.New("no sheet with data")
}

// buildRows 把数据行装配为 RawRow，整行为空的跳过
func buildRows(headers []string, data [][]string) []*model.RawRow {
	rows := make([]*model.RawRow, 0, len(data))
	for i, record := range data {
		cells := make(map[string]string, len(headers))
		empty := true
		for j, h := range headers {
			value := ""
			if j < len(record) {
				value = strings.TrimSpace(record[j])
			}
			cells[h] = value
			if value != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, &model.RawRow{
			Index:   i + 2, // 表头为第 1 行
			Headers: headers,
			Cells:   cells,
		})
	}
	return rows
}

func trimBOM(headers []string) []string {
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	return headers
}
