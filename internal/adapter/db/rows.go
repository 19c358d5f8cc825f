package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tasktracker/internal/core/domain"
)

const taskColumns = `
  t.id,
  t.title,
  t.description,
  t.due_date,
  t.priority,
  t.status,
  t.category_id,
  t.position,
  t.attachments,
  t.created_at,
  t.updated_at,
  c.name AS category_name,
  c.color AS category_color,
  c.icon AS category_icon`

const taskFromClause = `
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id`

type taskRow struct {
	ID            uint64         `db:"id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	DueDate       sql.NullTime   `db:"due_date"`
	Priority      string         `db:"priority"`
	Status        string         `db:"status"`
	CategoryID    sql.NullInt64  `db:"category_id"`
	Position      uint64         `db:"position"`
	Attachments   []byte         `db:"attachments"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	CategoryName  sql.NullString `db:"category_name"`
	CategoryColor sql.NullString `db:"category_color"`
	CategoryIcon  sql.NullString `db:"category_icon"`
}

type subtaskRow struct {
	ID          uint64         `db:"id"`
	TaskID      uint64         `db:"task_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type noteRow struct {
	ID        uint64         `db:"id"`
	TaskID    uint64         `db:"task_id"`
	SubtaskID sql.NullInt64  `db:"subtask_id"`
	Content   sql.NullString `db:"content"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type categoryRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Color       string         `db:"color"`
	Icon        string         `db:"icon"`
	Description sql.NullString `db:"description"`
	TaskCount   int            `db:"task_count"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type attachmentRecord struct {
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Priority:  domain.TaskPriority(row.Priority),
		Status:    domain.TaskStatus(row.Status),
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CategoryID.Valid {
		categoryID := uint64(row.CategoryID.Int64)
		task.CategoryID = &categoryID
		if row.CategoryName.Valid {
			task.Category = &domain.Category{
				ID:    categoryID,
				Name:  row.CategoryName.String,
				Color: row.CategoryColor.String,
				Icon:  row.CategoryIcon.String,
			}
		}
	}

	attachments, err := decodeAttachments(row.Attachments)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %d: %w", row.ID, err)
	}
	task.Attachments = attachments

	return task, nil
}

func mapSubtaskRow(row subtaskRow) domain.Subtask {
	subtask := domain.Subtask{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Title:     row.Title,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		subtask.Description = &value
	}
	return subtask
}

func mapNoteRow(row noteRow) domain.Note {
	note := domain.Note{
		ID:        row.ID,
		TaskID:    row.TaskID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.SubtaskID.Valid {
		value := uint64(row.SubtaskID.Int64)
		note.SubtaskID = &value
	}
	if row.Content.Valid {
		value := row.Content.String
		note.Content = &value
	}
	return note
}

func mapCategoryRow(row categoryRow) domain.Category {
	category := domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		Icon:      row.Icon,
		TaskCount: row.TaskCount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		category.Description = &value
	}
	return category
}

func encodeAttachments(attachments []domain.Attachment) (string, error) {
	records := make([]attachmentRecord, 0, len(attachments))
	for _, attachment := range attachments {
		records = append(records, attachmentRecord{
			Filename:   attachment.Filename,
			Path:       attachment.Path,
			UploadedAt: attachment.UploadedAt.UTC(),
		})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode attachments: %w", err)
	}
	return string(payload), nil
}

func decodeAttachments(raw []byte) ([]domain.Attachment, error) {
	if len(raw) == 0 {
		return []domain.Attachment{}, nil
	}
	var records []attachmentRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode attachments: %w", err)
	}
	attachments := make([]domain.Attachment, 0, len(records))
	for _, record := range records {
		attachments = append(attachments, domain.Attachment{
			Filename:   record.Filename,
			Path:       record.Path,
			UploadedAt: record.UploadedAt,
		})
	}
	return attachments, nil
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC()
}

func nullableID(value *uint64) any {
	if value == nil {
		return nil
	}
	return *value
}
