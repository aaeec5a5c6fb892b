package service

import (
	"context"

	"github.com/bagdasarian/timetrack/internal/domain"
)

// ActivityService ведет личные и workspace-активности и строит их общую ленту
type ActivityService interface {
	// ListForUser объединяет личные и workspace-активности пользователя по возрастанию start_time
	ListForUser(ctx context.Context, username string) ([]*domain.UserActivityView, error)
	ListForWorkspace(ctx context.Context, username string, workspaceID int64) ([]*domain.UserActivityView, error)

	// AddPersonal разбивает интервал по дням и сохраняет все отрезки атомарно.
	// Возвращает отрезки в хронологическом порядке.
	AddPersonal(ctx context.Context, username string, draft domain.ActivityDraft) ([]*domain.Activity, error)
	AddToWorkspace(ctx context.Context, username string, workspaceID int64, draft domain.ActivityDraft) ([]*domain.WorkspaceActivity, error)

	DeletePersonal(ctx context.Context, username string, id int64) error
	DeleteFromWorkspace(ctx context.Context, username string, workspaceID int64, id int64) error
}
