package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

// LoadCSV 读取 CSV：首行为表头，容忍行宽不齐与 UTF-8 BOM
func LoadCSV(r io.Reader) ([]*model.RawRow, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errors.New("empty csv")
	}

	headers := trimBOM(records[0])
	return buildRows(headers, records[1:]), headers, nil
}
