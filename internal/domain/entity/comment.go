package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a free-text annotation attached to a task. Any authenticated
// user may comment on any task, not only the task owner. Comments are
// immutable once created.
type Comment struct {
	ID        uuid.UUID // Global unique identifier for the comment.
	Content   string    // Trimmed free text, 1-1000 characters.
	TaskID    uuid.UUID // The task this comment annotates.
	AuthorID  uuid.UUID // The user that wrote the comment.
	Author    *User     // Author identity, loaded for read paths.
	CreatedAt time.Time
}
