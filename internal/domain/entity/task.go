package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a task. The wire values keep the
// vocabulary the existing SPA client already consumes.
type TaskStatus string

const (
	// TaskStatusPending is the default state of a newly created task.
	TaskStatusPending TaskStatus = "pendiente"
	// TaskStatusInProgress marks a task that is being worked on.
	TaskStatusInProgress TaskStatus = "en_progreso"
	// TaskStatusCompleted marks a finished task.
	TaskStatusCompleted TaskStatus = "completada"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Task is a titled unit of work owned by exactly one user. Only the
// owner may mutate or delete it; deletion cascades to its comments.
type Task struct {
	ID          uuid.UUID  // Global unique identifier for the task.
	Title       string     // Short title, 3-200 characters.
	Description string     // Free-text description, 10-2000 characters.
	Status      TaskStatus // One of the TaskStatus constants.
	OwnerID     uuid.UUID  // The user that created, and may mutate, the task.
	Comments    []*Comment // Annotations on the task, newest first when loaded.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries the optional fields of a partial task update.
// A nil field means "leave unchanged".
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// Empty reports whether the patch carries no fields at all.
func (p *TaskPatch) Empty() bool {
	return p == nil || (p.Title == nil && p.Description == nil && p.Status == nil)
}
