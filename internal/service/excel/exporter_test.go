package excel

import (
	"testing"
	"time"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

func TestExportEvents(t *testing.T) {
	t.Parallel()

	events := []*model.OrderEvent{
		{
			ID:      "ev-1",
			OrderID: "HC-1",
			Date:    time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
			Items: []model.LineItem{
				{Name: "PKG-BOX-Deluxe Hamper", Quantity: 2},
				{Name: "Card", Quantity: 1},
			},
		},
	}

	exporter := NewExporter([]string{"PKG", "HAMP", "BOX", "BAG"})
	f, err := exporter.ExportEvents(events)
	if err != nil {
		t.Fatalf("export events: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if rows[0][0] != "Order Number" || rows[0][5] != "Summary" {
		t.Fatalf("unexpected headers: %v", rows[0])
	}
	row := rows[1]
	if row[0] != "HC-1" || row[1] != "2025-03-10" {
		t.Fatalf("unexpected row: %v", row)
	}
	if row[2] != "PKG-BOX-Deluxe Hamper - 2, Card - 1" {
		t.Fatalf("unexpected items cell: %q", row[2])
	}
	if row[3] != "3" || row[4] != "2" {
		t.Fatalf("unexpected stats: units=%q hampers=%q", row[3], row[4])
	}
	if row[5] != "Hampers: 2 • Units: 3" {
		t.Fatalf("unexpected summary: %q", row[5])
	}
}

func TestExportEvents_Empty(t *testing.T) {
	t.Parallel()

	f, err := NewExporter(nil).ExportEvents(nil)
	if err != nil {
		t.Fatalf("export events: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
