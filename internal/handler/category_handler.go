package handler

import (
	"net/http"
)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	names, err := h.categoryService.ListPersonal(r.Context(), username)
	h.writeCategories(w, r, http.StatusOK, names, err)
}

func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	names, err := h.categoryService.AddPersonal(r.Context(), username, req.Name)
	h.writeCategories(w, r, http.StatusCreated, names, err)
}

func (h *Handler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	names, err := h.categoryService.RemovePersonal(r.Context(), username, r.URL.Query().Get("name"))
	h.writeCategories(w, r, http.StatusOK, names, err)
}

func (h *Handler) ListWorkspaceCategories(w http.ResponseWriter, r *http.Request) {
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

	names, err := h.categoryService.ListWorkspace(r.Context(), username, workspaceID)
	h.writeCategories(w, r, http.StatusOK, names, err)
}

func (h *Handler) AddWorkspaceCategory(w http.ResponseWriter, r *http.Request) {
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
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	names, err := h.categoryService.AddWorkspace(r.Context(), username, workspaceID, req.Name)
	h.writeCategories(w, r, http.StatusCreated, names, err)
}

func (h *Handler) RemoveWorkspaceCategory(w http.ResponseWriter, r *http.Request) {
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

	names, err := h.categoryService.RemoveWorkspace(r.Context(), username, workspaceID, r.URL.Query().Get("name"))
	h.writeCategories(w, r, http.StatusOK, names, err)
}

func (h *Handler) writeCategories(w http.ResponseWriter, r *http.Request, status int, names []string, err error) {
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, status, CategoriesResponse{Categories: names})
}
