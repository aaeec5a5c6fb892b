package service

import "context"

// CategoryService связывает CategoryRegistry с областями: личной и workspace
type CategoryService interface {
	ListPersonal(ctx context.Context, username string) ([]string, error)
	AddPersonal(ctx context.Context, username, name string) ([]string, error)
	RemovePersonal(ctx context.Context, username, name string) ([]string, error)

	ListWorkspace(ctx context.Context, username string, workspaceID int64) ([]string, error)
	AddWorkspace(ctx context.Context, username string, workspaceID int64, name string) ([]string, error)
	RemoveWorkspace(ctx context.Context, username string, workspaceID int64, name string) ([]string, error)
}
