package handler

import (
	"net/http"

	"github.com/bagdasarian/timetrack/internal/domain"
)

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	views, err := h.activityService.ListForUser(r.Context(), username)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ActivitiesResponse{Activities: domainViewsToHTTP(views)})
}

func (h *Handler) AddActivity(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	draft, err := httpActivityToDraft(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	segments, err := h.activityService.AddPersonal(r.Context(), username, draft)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	views := make([]*domain.UserActivityView, 0, len(segments))
	for _, segment := range segments {
		views = append(views, domain.ViewFromPersonal(segment))
	}
	writeJSON(w, http.StatusCreated, newAddActivityResponse(views))
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.activityService.DeletePersonal(r.Context(), username, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListWorkspaceActivities(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	workspaceID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	views, err := h.activityService.ListForWorkspace(r.Context(), username, workspaceID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ActivitiesResponse{Activities: domainViewsToHTTP(views)})
}

func (h *Handler) AddWorkspaceActivity(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	workspaceID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	draft, err := httpActivityToDraft(req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	segments, err := h.activityService.AddToWorkspace(r.Context(), username, workspaceID, draft)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	views := make([]*domain.UserActivityView, 0, len(segments))
	for _, segment := range segments {
		views = append(views, domain.ViewFromWorkspace(segment))
	}
	writeJSON(w, http.StatusCreated, newAddActivityResponse(views))
}

func (h *Handler) DeleteWorkspaceActivity(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	workspaceID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	activityID, err := pathID(r, "activityID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.activityService.DeleteFromWorkspace(r.Context(), username, workspaceID, activityID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func newAddActivityResponse(views []*domain.UserActivityView) AddActivityResponse {
	segments := domainViewsToHTTP(views)
	resp := AddActivityResponse{Segments: segments}
	if len(segments) > 0 {
		resp.Activity = segments[0]
	}
	return resp
}
