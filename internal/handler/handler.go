package handler

import (
	"log/slog"

	"github.com/bagdasarian/timetrack/internal/service"
)

type Handler struct {
	accountService   service.AccountService
	activityService  service.ActivityService
	categoryService  service.CategoryService
	workspaceService service.WorkspaceService
	logger           *slog.Logger
}

func NewHandler(
	accountService service.AccountService,
	activityService service.ActivityService,
	categoryService service.CategoryService,
	workspaceService service.WorkspaceService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accountService:   accountService,
		activityService:  activityService,
		categoryService:  categoryService,
		workspaceService: workspaceService,
		logger:           logger,
	}
}
