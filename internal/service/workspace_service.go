package service

import (
	"context"

	"github.com/bagdasarian/timetrack/internal/domain"
)

// WorkspaceService управляет workspace и их участниками
type WorkspaceService interface {
	// Create создает workspace и членство OWNER для создателя в одной транзакции
	Create(ctx context.Context, username, name string) (*domain.WorkspaceSummary, error)

	// EnsureDefault возвращает самый ранний workspace пользователя
	// или создает "<display name> Workspace", если он еще ни в одном не состоит
	EnsureDefault(ctx context.Context, user *domain.User) (*domain.WorkspaceSummary, error)

	Invite(ctx context.Context, username string, workspaceID int64, invitee string, role string) (*domain.WorkspaceMember, error)
	Rename(ctx context.Context, username string, workspaceID int64, name string) (*domain.WorkspaceSummary, error)
	Leave(ctx context.Context, username string, workspaceID int64) error

	ListForUser(ctx context.Context, username string) ([]*domain.WorkspaceSummary, error)
	// ListMembers: OWNER первым, затем MEMBER, затем остальные; внутри группы по имени
	ListMembers(ctx context.Context, username string, workspaceID int64) ([]*domain.WorkspaceMember, error)
}
