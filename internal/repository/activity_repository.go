package repository

import (
	"context"

	"github.com/bagdasarian/timetrack/internal/domain"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	Delete(ctx context.Context, id int64) error
	// ListByUsername возвращает активности пользователя по возрастанию start_time
	ListByUsername(ctx context.Context, username string) ([]*domain.Activity, error)
}

type WorkspaceActivityRepository interface {
	Create(ctx context.Context, activity *domain.WorkspaceActivity) error
	GetByID(ctx context.Context, id int64) (*domain.WorkspaceActivity, error)
	Delete(ctx context.Context, id int64) error
	ListByUsername(ctx context.Context, username string) ([]*domain.WorkspaceActivity, error)
	ListByWorkspaceID(ctx context.Context, workspaceID int64) ([]*domain.WorkspaceActivity, error)
}
