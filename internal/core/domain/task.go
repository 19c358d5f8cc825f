package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    TaskPriority
	Status      TaskStatus
	CategoryID  *uint64
	Position    uint64
	Attachments []Attachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Category    *Category
	Subtasks    []Subtask
	// Notes only holds task-level notes; subtask notes hang off Subtasks.
	Notes []Note
}

// Attachment is a file reference stored alongside a task.
type Attachment struct {
	Filename   string
	Path       string
	UploadedAt time.Time
}

func (a Attachment) Valid() bool {
	return a.Filename != "" && a.Path != "" && !a.UploadedAt.IsZero()
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    TaskPriority
	Status      TaskStatus
	CategoryID  *uint64
	Attachments []Attachment
}

// UpdateTaskInput is a partial update. Nil pointers leave the column untouched,
// the *Set flags distinguish an explicit null from an absent field.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	DueDate        *time.Time
	DueDateSet     bool
	Priority       *TaskPriority
	Status         *TaskStatus
	CategoryID     *uint64
	CategoryIDSet  bool
	Attachments    []Attachment
	AttachmentsSet bool
}

// TaskOrder assigns an explicit position to a task during a bulk reorder.
type TaskOrder struct {
	ID       uint64
	Position uint64
}
