package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hardikgolchha89/fulfillment-calendar/internal/model"
)

const eventDateLayout = "2006-01-02"

// BatchInsertEvents 批量写入事件与行项目（单事务）
func (s *Store) BatchInsertEvents(events []*model.OrderEvent, importLogID int64) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	eventStmt, err := tx.Prepare(`
		INSERT INTO order_events (id, order_id, event_date, source_row, import_log_id)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare event statement: %w", err)
	}
	defer eventStmt.Close()

	itemStmt, err := tx.Prepare(`
		INSERT INTO event_items (event_id, position, name, quantity, raw_text)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare item statement: %w", err)
	}
	defer itemStmt.Close()

	for _, e := range events {
		sourceJSON, err := json.Marshal(e.Source)
		if err != nil {
			sourceJSON = []byte("{}")
		}
		if _, err := eventStmt.Exec(e.ID, e.OrderID, e.Date.Format(eventDateLayout), string(sourceJSON), importLogID); err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
		for i, item := range e.Items {
			if _, err := itemStmt.Exec(e.ID, i, item.Name, item.Quantity, item.RawText); err != nil {
				return fmt.Errorf("failed to insert item: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// EventQueryOptions 事件查询选项
type EventQueryOptions struct {
	From    *time.Time
	To      *time.Time
	OrderID *string
}

// ListEvents 按日期升序列出事件（含行项目）
func (s *Store) ListEvents(opts EventQueryOptions) ([]*model.OrderEvent, error) {
	query := `SELECT id, order_id, event_date, source_row FROM order_events`
	var conds []string
	var args []interface{}

	if opts.From != nil {
		conds = append(conds, "event_date >= ?")
		args = append(args, opts.From.Format(eventDateLayout))
	}
	if opts.To != nil {
		conds = append(conds, "event_date <= ?")
		args = append(args, opts.To.Format(eventDateLayout))
	}
	if opts.OrderID != nil {
		conds = append(conds, "order_id = ?")
		args = append(args, *opts.OrderID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY event_date, order_id, id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*model.OrderEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	for _, e := range events {
		if err := s.loadItems(e); err != nil {
			return nil, err
		}
	}

	return events, nil
}

// GetEvent 获取单个事件（含行项目）
func (s *Store) GetEvent(id string) (*model.OrderEvent, error) {
	row := s.db.QueryRow(`SELECT id, order_id, event_date, source_row FROM order_events WHERE id = ?`, id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("event not found")
		}
		return nil, err
	}

	if err := s.loadItems(event); err != nil {
		return nil, err
	}
	return event, nil
}

// CountEvents 事件总数
func (s *Store) CountEvents() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM order_events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// EventDateRange 事件覆盖的最早/最晚日期；无数据时 ok 为 false
func (s *Store) EventDateRange() (first, last string, ok bool, err error) {
	var minDate, maxDate sql.NullString
	if err := s.db.QueryRow(`SELECT MIN(event_date), MAX(event_date) FROM order_events`).Scan(&minDate, &maxDate); err != nil {
		return "", "", false, fmt.Errorf("failed to query date range: %w", err)
	}
	if !minDate.Valid || !maxDate.Valid {
		return "", "", false, nil
	}
	return minDate.String, maxDate.String, true, nil
}

// ClearEvents 清空全部事件与行项目
func (s *Store) ClearEvents() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM event_items`); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM order_events`); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(r rowScanner) (*model.OrderEvent, error) {
	var event model.OrderEvent
	var dateText, sourceJSON string
	if err := r.Scan(&event.ID, &event.OrderID, &dateText, &sourceJSON); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(eventDateLayout, dateText, time.Local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored date %q: %w", dateText, err)
	}
	event.Date = date

	// 原始行损坏时不致命，详情页少了透传字段而已
	if sourceJSON != "" && sourceJSON != "null" {
		var source model.RawRow
		if err := json.Unmarshal([]byte(sourceJSON), &source); err == nil {
			event.Source = &source
		}
	}

	return &event, nil
}

func (s *Store) loadItems(event *model.OrderEvent) error {
	rows, err := s.db.Query(`
		SELECT name, quantity, raw_text FROM event_items
		WHERE event_id = ? ORDER BY position
	`, event.ID)
	if err != nil {
		return fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.Name, &item.Quantity, &item.RawText); err != nil {
			return fmt.Errorf("failed to scan item: %w", err)
		}
		event.Items = append(event.Items, item)
	}
	return rows.Err()
}
