package postgres

import (
	"context"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// FindByTask retrieves every comment on the given task, newest first,
// with the author identity loaded.
func (repo *commentRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find comments by task")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// Create persists a new comment and reloads it with the author identity.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTaskNotFound.WrapMessage("invalid task or author reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	// Reload with the author so callers can return the full comment.
	var created model.CommentModel
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", commentM.ID).
		First(&created).Error; err != nil {
		return errors.Wrap(err, "failed to reload created comment")
	}

	*comment = *toCommentDomain(&created)

	return nil
}

// DeleteByTask removes every comment on the given task.
func (repo *commentRepository) DeleteByTask(ctx context.Context, taskID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Delete(&model.CommentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comments by task")
	}

	return nil
}

// --- Mapper Functions ---

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		Content:   data.Content,
		TaskID:    data.TaskID,
		AuthorID:  data.AuthorID,
		Author:    toUserDomain(data.Author),
		CreatedAt: data.CreatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:       data.ID,
		Content:  data.Content,
		TaskID:   data.TaskID,
		AuthorID: data.AuthorID,
	}
}
