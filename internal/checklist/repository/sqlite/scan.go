package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"realtime-checklist/internal/model"
)

const checklistColumns = `id, user_id, checklist_type, title, description, total_items, completed_items,
	progress_percentage, status, data, tags, estimated_time_minutes, actual_time_minutes,
	created_at, updated_at, completed_at`

const itemColumns = `id, checklist_id, category, title, description, action_required, priority, difficulty,
	estimated_minutes, actual_minutes, is_completed, completed_at, completed_by, notes, evidence_url,
	sort_order, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanChecklist(s scanner) (model.Checklist, error) {
	var (
		c                    model.Checklist
		description, tags    sql.NullString
		data                 string
		estimated, actual    sql.NullInt64
		createdAt, updatedAt string
		completedAt          sql.NullString
	)

	err := s.Scan(&c.ID, &c.UserID, &c.ChecklistType, &c.Title, &description, &c.TotalItems, &c.CompletedItems,
		&c.ProgressPercentage, &c.Status, &data, &tags, &estimated, &actual, &createdAt, &updatedAt, &completedAt)
	if err != nil {
		return model.Checklist{}, err
	}

	c.Description = stringPtr(description)
	c.EstimatedTimeMinutes = intPtr(estimated)
	c.ActualTimeMinutes = intPtr(actual)

	if data != "" {
		if err := json.Unmarshal([]byte(data), &c.Data); err != nil {
			return model.Checklist{}, fmt.Errorf("decode data: %w", err)
		}
	}
	if c.Data == nil {
		c.Data = model.Metadata{}
	}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &c.Tags); err != nil {
			return model.Checklist{}, fmt.Errorf("decode tags: %w", err)
		}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}

	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Checklist{}, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Checklist{}, err
	}
	if c.CompletedAt, err = parseTimePtr(completedAt); err != nil {
		return model.Checklist{}, err
	}

	return c, nil
}

func scanItem(s scanner) (model.ChecklistItem, error) {
	var (
		it                       model.ChecklistItem
		priority, difficulty     string
		actual                   sql.NullInt64
		completed                int
		completedAt, completedBy sql.NullString
		notes, evidence          sql.NullString
		createdAt, updatedAt     string
	)

	err := s.Scan(&it.ID, &it.ChecklistID, &it.Category, &it.Title, &it.Description, &it.ActionRequired,
		&priority, &difficulty, &it.EstimatedMinutes, &actual, &completed, &completedAt, &completedBy,
		&notes, &evidence, &it.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return model.ChecklistItem{}, err
	}

	it.Priority = model.Priority(priority)
	it.Difficulty = model.Difficulty(difficulty)
	it.ActualMinutes = intPtr(actual)
	it.IsCompleted = completed != 0
	it.CompletedBy = stringPtr(completedBy)
	it.Notes = stringPtr(notes)
	it.EvidenceURL = stringPtr(evidence)

	if it.CompletedAt, err = parseTimePtr(completedAt); err != nil {
		return model.ChecklistItem{}, err
	}
	if it.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.ChecklistItem{}, err
	}
	if it.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.ChecklistItem{}, err
	}

	return it, nil
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t.UTC(), nil
}

func parseTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func intPtr(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
