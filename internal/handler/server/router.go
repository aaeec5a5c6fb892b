package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bagdasarian/timetrack/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("GET /session", h.GetSession)
	mux.HandleFunc("PUT /account", h.UpdateAccount)

	mux.HandleFunc("GET /activities", h.ListActivities)
	mux.HandleFunc("POST /activities", h.AddActivity)
	mux.HandleFunc("DELETE /activities/{id}", h.DeleteActivity)

	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("POST /categories", h.AddCategory)
	mux.HandleFunc("DELETE /categories", h.RemoveCategory)

	mux.HandleFunc("GET /workspaces", h.ListWorkspaces)
	mux.HandleFunc("POST /workspaces", h.CreateWorkspace)
	mux.HandleFunc("PUT /workspaces/{id}", h.RenameWorkspace)

	mux.HandleFunc("GET /workspaces/{id}/members", h.ListMembers)
	mux.HandleFunc("POST /workspaces/{id}/members", h.InviteMember)
	mux.HandleFunc("DELETE /workspaces/{id}/members/me", h.LeaveWorkspace)

	mux.HandleFunc("GET /workspaces/{id}/activities", h.ListWorkspaceActivities)
	mux.HandleFunc("POST /workspaces/{id}/activities", h.AddWorkspaceActivity)
	mux.HandleFunc("DELETE /workspaces/{id}/activities/{activityID}", h.DeleteWorkspaceActivity)

	mux.HandleFunc("GET /workspaces/{id}/categories", h.ListWorkspaceCategories)
	mux.HandleFunc("POST /workspaces/{id}/categories", h.AddWorkspaceCategory)
	mux.HandleFunc("DELETE /workspaces/{id}/categories", h.RemoveWorkspaceCategory)
}
