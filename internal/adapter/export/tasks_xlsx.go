package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const (
	TasksSheet      = "Tasks"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type column struct {
	header string
	width  float64
	value  func(task domain.Task) any
}

var taskColumns = []column{
	{header: "Position", width: 10, value: func(t domain.Task) any { return t.Position }},
	{header: "ID", width: 8, value: func(t domain.Task) any { return t.ID }},
	{header: "Title", width: 40, value: func(t domain.Task) any { return t.Title }},
	{header: "Status", width: 14, value: func(t domain.Task) any { return string(t.Status) }},
	{header: "Priority", width: 10, value: func(t domain.Task) any { return string(t.Priority) }},
	{header: "Category", width: 18, value: func(t domain.Task) any {
		if t.Category == nil {
			return ""
		}
		return t.Category.Name
	}},
	{header: "Due Date", width: 14, value: func(t domain.Task) any {
		if t.DueDate == nil {
			return ""
		}
		return t.DueDate.UTC().Format(time.DateOnly)
	}},
	{header: "Subtasks Done", width: 14, value: func(t domain.Task) any {
		done := 0
		for _, subtask := range t.Subtasks {
			if subtask.Completed {
				done++
			}
		}
		return fmt.Sprintf("%d/%d", done, len(t.Subtasks))
	}},
	{header: "Created At", width: 22, value: func(t domain.Task) any { return t.CreatedAt.UTC().Format(time.RFC3339) }},
}

// TaskWorkbook renders the task list as a single-sheet xlsx document.
type TaskWorkbook struct{}

var _ ports.TaskExporter = (*TaskWorkbook)(nil)

func NewTaskWorkbook() *TaskWorkbook {
	return &TaskWorkbook{}
}

func (w *TaskWorkbook) ExportTasks(tasks []domain.Task) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", TasksSheet); err != nil {
		return nil, err
	}

	stream, err := file.NewStreamWriter(TasksSheet)
	if err != nil {
		return nil, err
	}

	header := make([]any, len(taskColumns))
	for i, col := range taskColumns {
		header[i] = col.header
		if err := stream.SetColWidth(i+1, i+1, col.width); err != nil {
			return nil, err
		}
	}
	if err := stream.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, task := range tasks {
		row := make([]any, len(taskColumns))
		for j, col := range taskColumns {
			row[j] = col.value(task)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := stream.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("write task %d: %w", task.ID, err)
		}
	}

	if err := stream.Flush(); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
