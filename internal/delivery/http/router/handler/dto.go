package handler

import (
	"time"

	"taskboard/internal/domain/entity"
)

// The JSON field names below are the API contract consumed by the
// existing single-page client and must not be renamed.

// UserDTO is the public identity payload. It never carries the
// password hash.
type UserDTO struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// TaskDTO is the task payload. Comentarios is only present on
// endpoints that load comments alongside the task.
type TaskDTO struct {
	ID          string        `json:"id"`
	Titulo      string        `json:"titulo"`
	Descripcion string        `json:"descripcion"`
	Estado      string        `json:"estado"`
	UsuarioID   string        `json:"usuarioId"`
	Comentarios []*CommentDTO `json:"comentarios,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// CommentDTO is the comment payload including the author identity.
type CommentDTO struct {
	ID        string    `json:"id"`
	Contenido string    `json:"contenido"`
	TareaID   string    `json:"tareaId"`
	UsuarioID string    `json:"usuarioId"`
	Usuario   *UserDTO  `json:"usuario,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponseDTO carries the minted token plus the public identity.
type LoginResponseDTO struct {
	Token   string   `json:"token"`
	Usuario *UserDTO `json:"usuario"`
}

func toUserDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}

	return &UserDTO{
		ID:     user.ID.String(),
		Nombre: user.Name,
		Email:  user.Email,
	}
}

func toTaskDTO(task *entity.Task, withComments bool) *TaskDTO {
	dto := &TaskDTO{
		ID:          task.ID.String(),
		Titulo:      task.Title,
		Descripcion: task.Description,
		Estado:      string(task.Status),
		UsuarioID:   task.OwnerID.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if withComments {
		dto.Comentarios = toCommentDTOs(task.Comments)
	}

	return dto
}

func toTaskDTOs(tasks []*entity.Task) []*TaskDTO {
	dtos := make([]*TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, toTaskDTO(task, true))
	}

	return dtos
}

func toCommentDTO(comment *entity.Comment) *CommentDTO {
	return &CommentDTO{
		ID:        comment.ID.String(),
		Contenido: comment.Content,
		TareaID:   comment.TaskID.String(),
		UsuarioID: comment.AuthorID.String(),
		Usuario:   toUserDTO(comment.Author),
		CreatedAt: comment.CreatedAt,
	}
}

func toCommentDTOs(comments []*entity.Comment) []*CommentDTO {
	dtos := make([]*CommentDTO, 0, len(comments))
	for _, comment := range comments {
		dtos = append(dtos, toCommentDTO(comment))
	}

	return dtos
}
