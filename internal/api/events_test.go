package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
	"github.com/hardikgolchha89/fulfillment-calendar/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(filepath.Join(t.TempDir(), "fulfillment-calendar.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	handler := NewHandler(st, model.DefaultVocabulary(), t.TempDir())
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router, st
}

func seedEvent(t *testing.T, st *store.Store, id, orderID string, date time.Time, items ...model.LineItem) {
	t.Helper()
	if err := st.BatchInsertEvents([]*model.OrderEvent{{
		ID:      id,
		OrderID: orderID,
		Date:    date,
		Items:   items,
	}}, 1); err != nil {
		t.Fatalf("seed event: %v", err)
	}
}

func TestListEvents(t *testing.T) {
	router, st := newTestRouter(t)

	seedEvent(t, st, "ev-1", "HC-1", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
		model.LineItem{Name: "PKG-BOX-Deluxe Hamper", Quantity: 2},
		model.LineItem{Name: "Card", Quantity: 1},
	)
	seedEvent(t, st, "ev-2", "HC-2", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local),
		model.LineItem{Name: "Candle", Quantity: 1},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?from=2025-03-01&to=2025-03-31", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var resp struct {
		Total  int            `json:"total"`
		Events []EventSummary `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Events) != 1 {
		t.Fatalf("expected one event in range, got %+v", resp)
	}

	ev := resp.Events[0]
	if ev.OrderID != "HC-1" || ev.Title != "HC-1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Date != "2025-03-10" {
		t.Fatalf("unexpected date: %s", ev.Date)
	}
	if ev.Stats.Units != 3 || ev.Stats.Hampers != 2 {
		t.Fatalf("unexpected stats: %+v", ev.Stats)
	}
	if ev.Summary != "Hampers: 2 • Units: 3" {
		t.Fatalf("unexpected summary: %q", ev.Summary)
	}
}

func TestListEvents_BadDate(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?from=10-03-25", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetEvent(t *testing.T) {
	router, st := newTestRouter(t)

	seedEvent(t, st, "ev-1", "HC-1", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local),
		model.LineItem{Name: "HAMP-01-Luxury Hamper", Quantity: 1, RawText: "HAMP-01-Luxury Hamper - 1"},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/ev-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var detail EventDetail
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].RawText != "HAMP-01-Luxury Hamper - 1" {
		t.Fatalf("unexpected items: %+v", detail.Items)
	}
	if len(detail.Classified) != 1 || detail.Classified[0].SKU != "HAMP-01" || detail.Classified[0].Title != "Luxury Hamper" {
		t.Fatalf("unexpected classification: %+v", detail.Classified)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestStatus(t *testing.T) {
	router, st := newTestRouter(t)

	seedEvent(t, st, "ev-1", "HC-1", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Initialized || resp.TotalEvents != 1 {
		t.Fatalf("unexpected status payload: %+v", resp)
	}
	if resp.FirstEventDate != "2025-03-10" || resp.LastEventDate != "2025-03-10" {
		t.Fatalf("unexpected date range: %+v", resp)
	}
}
