package store

import (
	"database/sql"
	"fmt"
)

// CreateImportLog 创建导入日志，返回 import_log_id
func (s *Store) CreateImportLog(filename string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (filename, status) VALUES (?, 'processing')
	`, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// UpdateImportLog 完成导入日志更新
func (s *Store) UpdateImportLog(id int64, totalRows, importedEvents, skippedRows, droppedGroups int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_rows = ?,
			imported_events = ?,
			skipped_rows = ?,
			dropped_groups = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalRows, importedEvents, skippedRows, droppedGroups, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// LastImportTime 最近一次完成导入的时间；无记录时返回空串
func (s *Store) LastImportTime() (string, error) {
	var completedAt sql.NullString
	err := s.db.QueryRow(`
		SELECT completed_at FROM import_logs
		WHERE status = 'done' ORDER BY id DESC LIMIT 1
	`).Scan(&completedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to query last import: %w", err)
	}
	if !completedAt.Valid {
		return "", nil
	}
	return completedAt.String, nil
}
