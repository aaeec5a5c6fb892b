package handler

import (
	"net/http"
)

func (h *Handler) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	summaries, err := h.workspaceService.ListForUser(r.Context(), username)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	workspaces := make([]WorkspaceResponse, 0, len(summaries))
	for _, summary := range summaries {
		workspaces = append(workspaces, domainSummaryToHTTP(summary))
	}
	writeJSON(w, http.StatusOK, WorkspacesResponse{Workspaces: workspaces})
}

func (h *Handler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var req WorkspaceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	summary, err := h.workspaceService.Create(r.Context(), username, req.Name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainSummaryToHTTP(summary))
}

func (h *Handler) RenameWorkspace(w http.ResponseWriter, r *http.Request) {
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
	var req WorkspaceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	summary, err := h.workspaceService.Rename(r.Context(), username, workspaceID, req.Name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSummaryToHTTP(summary))
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
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

	members, err := h.workspaceService.ListMembers(r.Context(), username, workspaceID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := MembersResponse{Members: make([]MemberResponse, 0, len(members))}
	for _, member := range members {
		resp.Members = append(resp.Members, domainMemberToHTTP(member))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
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
	var req InviteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.workspaceService.Invite(r.Context(), username, workspaceID, req.Username, req.Role)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, MemberCreatedResponse{Member: domainMemberToHTTP(member)})
}

func (h *Handler) LeaveWorkspace(w http.ResponseWriter, r *http.Request) {
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

	if err := h.workspaceService.Leave(r.Context(), username, workspaceID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
