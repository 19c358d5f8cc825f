package domain

type TaskStats struct {
	Total      int
	ByStatus   map[TaskStatus]int
	ByPriority map[TaskPriority]int
	Recent     []Task
	DueSoon    []Task
}
