package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fulfillment-calendar.db")
	st, err := New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testEvent(id, orderID string, date time.Time, items ...model.LineItem) *model.OrderEvent {
	return &model.OrderEvent{
		ID:      id,
		OrderID: orderID,
		Date:    date,
		Items:   items,
		Source: &model.RawRow{
			Index:   2,
			Headers: []string{"Order Number"},
			Cells:   map[string]string{"Order Number": orderID},
		},
	}
}

func TestBatchInsertAndListEvents(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	mar10 := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	mar11 := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.Local)

	events := []*model.OrderEvent{
		testEvent("ev-2", "HC-2", mar11, model.LineItem{Name: "Card", Quantity: 1}),
		testEvent("ev-1", "HC-1", mar10,
			model.LineItem{Name: "PKG-BOX-Deluxe Hamper", Quantity: 2, RawText: "PKG-BOX-Deluxe Hamper - 2"},
			model.LineItem{Name: "Card", Quantity: 1},
		),
	}
	if err := st.BatchInsertEvents(events, 1); err != nil {
		t.Fatalf("insert events: %v", err)
	}

	listed, err := st.ListEvents(EventQueryOptions{})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 events, got %d", len(listed))
	}
	// 日期升序
	if listed[0].ID != "ev-1" || listed[1].ID != "ev-2" {
		t.Fatalf("unexpected order: %s, %s", listed[0].ID, listed[1].ID)
	}
	if !listed[0].Date.Equal(mar10) {
		t.Fatalf("unexpected date: %v", listed[0].Date)
	}
	// 行项目保持解析顺序
	if len(listed[0].Items) != 2 || listed[0].Items[0].Name != "PKG-BOX-Deluxe Hamper" {
		t.Fatalf("unexpected items: %+v", listed[0].Items)
	}
	if listed[0].Source == nil || listed[0].Source.Get("Order Number") != "HC-1" {
		t.Fatalf("source row must round-trip, got %+v", listed[0].Source)
	}
}

func TestListEvents_DateFilter(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	mar10 := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	mar20 := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.Local)
	if err := st.BatchInsertEvents([]*model.OrderEvent{
		testEvent("ev-1", "HC-1", mar10),
		testEvent("ev-2", "HC-2", mar20),
	}, 1); err != nil {
		t.Fatalf("insert events: %v", err)
	}

	from := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)
	listed, err := st.ListEvents(EventQueryOptions{From: &from})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "ev-2" {
		t.Fatalf("unexpected filter result: %+v", listed)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	if _, err := st.GetEvent("missing"); err == nil {
		t.Fatalf("expected not-found error")
	}
}

func TestClearEvents(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	mar10 := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	if err := st.BatchInsertEvents([]*model.OrderEvent{
		testEvent("ev-1", "HC-1", mar10, model.LineItem{Name: "Card", Quantity: 1}),
	}, 1); err != nil {
		t.Fatalf("insert events: %v", err)
	}

	if err := st.ClearEvents(); err != nil {
		t.Fatalf("clear events: %v", err)
	}
	count, err := st.CountEvents()
	if err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty store, got %d", count)
	}
}

func TestEventDateRange(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	if _, _, ok, err := st.EventDateRange(); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	mar10 := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	mar20 := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.Local)
	if err := st.BatchInsertEvents([]*model.OrderEvent{
		testEvent("ev-1", "HC-1", mar20),
		testEvent("ev-2", "HC-2", mar10),
	}, 1); err != nil {
		t.Fatalf("insert events: %v", err)
	}

	first, last, ok, err := st.EventDateRange()
	if err != nil || !ok {
		t.Fatalf("date range: ok=%v err=%v", ok, err)
	}
	if first != "2025-03-10" || last != "2025-03-20" {
		t.Fatalf("unexpected range: %s .. %s", first, last)
	}
}
