package domain

import "time"

type Note struct {
	ID        uint64
	TaskID    uint64
	SubtaskID *uint64
	Content   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n Note) IsSubtaskNote() bool {
	return n.SubtaskID != nil
}
