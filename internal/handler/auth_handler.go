package handler

import (
	"net/http"

	"github.com/bagdasarian/timetrack/internal/domain"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.accountService.Register(r.Context(), req.Username, req.DisplayName, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, SessionResponse{User: domainUserToHTTP(user)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	token, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.accountService.Session(r.Context(), username)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{User: domainUserToHTTP(user)})
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	username, err := requireUsername(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, token, err := h.accountService.UpdateAccount(r.Context(), username, domain.AccountUpdate{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UpdateAccountResponse{
		User:  domainUserToHTTP(user),
		Token: token,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
