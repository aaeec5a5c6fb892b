package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/timetrack/internal/auth"
	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/service"
)

type handlerFixture struct {
	accounts   *MockAccountService
	activities *MockActivityService
	categories *MockCategoryService
	workspaces *service.MockWorkspaceService
	mux        *http.ServeMux
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		accounts:   new(MockAccountService),
		activities: new(MockActivityService),
		categories: new(MockCategoryService),
		workspaces: new(service.MockWorkspaceService),
		mux:        http.NewServeMux(),
	}
	h := NewHandler(f.accounts, f.activities, f.categories, f.workspaces, slog.New(slog.NewTextHandler(io.Discard, nil)))

	f.mux.HandleFunc("POST /auth/login", h.Login)
	f.mux.HandleFunc("GET /session", h.GetSession)
	f.mux.HandleFunc("GET /activities", h.ListActivities)
	f.mux.HandleFunc("POST /activities", h.AddActivity)
	f.mux.HandleFunc("DELETE /activities/{id}", h.DeleteActivity)
	f.mux.HandleFunc("DELETE /categories", h.RemoveCategory)
	f.mux.HandleFunc("POST /workspaces/{id}/members", h.InviteMember)
	f.mux.HandleFunc("GET /workspaces/{id}/members", h.ListMembers)
	f.mux.HandleFunc("DELETE /workspaces/{id}/members/me", h.LeaveWorkspace)
	return f
}

// do выполняет запрос; пустой username означает анонимный запрос
func (f *handlerFixture) do(method, target, username string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if username != "" {
		req = req.WithContext(auth.WithUsername(req.Context(), username))
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestGetStatusCode(t *testing.T) {
	cases := map[string]int{
		domain.CodeInvalidInput:    http.StatusBadRequest,
		domain.CodeUnauthenticated: http.StatusUnauthorized,
		domain.CodeForbidden:       http.StatusForbidden,
		domain.CodeNotFound:        http.StatusNotFound,
		domain.CodeConflict:        http.StatusConflict,
		"SOMETHING_ELSE":           http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, getStatusCode(code), code)
	}
}

func TestAddActivity(t *testing.T) {
	t.Run("ответ содержит первый отрезок и все отрезки", func(t *testing.T) {
		f := newHandlerFixture()
		start := time.Date(2024, time.March, 1, 22, 0, 0, 0, time.UTC)
		draft := domain.ActivityDraft{
			Name: "Thesis", Category: "Studii",
			StartTime: start, EndTime: start.Add(4 * time.Hour),
		}

		f.activities.On("AddPersonal", mock.Anything, "ana", draft).Return([]*domain.Activity{
			{ID: 1, Username: "ana", Name: "Thesis", Category: "Studii", StartTime: start, EndTime: start.Add(2 * time.Hour), Hours: 2},
			{ID: 2, Username: "ana", Name: "Thesis", Category: "Studii", StartTime: start.Add(2 * time.Hour), EndTime: start.Add(4 * time.Hour), Hours: 2},
		}, nil).Once()

		rec := f.do(http.MethodPost, "/activities", "ana", ActivityRequest{
			Name: "Thesis", Category: "Studii", StartTime: "2024-03-01T22:00", EndTime: "2024-03-02T02:00:00",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp AddActivityResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.Activity.ID)
		require.Len(t, resp.Segments, 2)
		assert.Equal(t, "2024-03-02T00:00:00", resp.Segments[1].StartTime)
		assert.Equal(t, "PERSONAL", resp.Segments[1].Source)
		f.activities.AssertExpectations(t)
	})

	t.Run("ошибка: битая дата", func(t *testing.T) {
		f := newHandlerFixture()

		rec := f.do(http.MethodPost, "/activities", "ana", ActivityRequest{Name: "x", StartTime: "yesterday", EndTime: "2024-03-02T02:00"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.CodeInvalidInput, decodeError(t, rec).Code)
		f.activities.AssertNotCalled(t, "AddPersonal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ошибка валидации сервиса дает 400", func(t *testing.T) {
		f := newHandlerFixture()

		f.activities.On("AddPersonal", mock.Anything, "ana", mock.Anything).
			Return(nil, domain.NewInvalidInputError("End time must be after start time")).Once()

		rec := f.do(http.MethodPost, "/activities", "ana", ActivityRequest{StartTime: "2024-03-01T10:00", EndTime: "2024-03-01T09:00"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "End time must be after start time", decodeError(t, rec).Message)
	})

	t.Run("ошибка: аноним", func(t *testing.T) {
		f := newHandlerFixture()

		rec := f.do(http.MethodPost, "/activities", "", ActivityRequest{})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListActivities(t *testing.T) {
	f := newHandlerFixture()
	wsID := int64(5)
	start := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

	f.activities.On("ListForUser", mock.Anything, "ana").Return([]*domain.UserActivityView{
		{ID: 1, Name: "Run", Source: domain.SourcePersonal, Username: "ana", StartTime: start, EndTime: start.Add(time.Hour), Hours: 1},
		{ID: 9, Name: "Sprint", Source: domain.SourceWorkspace, Username: "ana", WorkspaceID: &wsID, WorkspaceName: "Lab", StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), Hours: 1},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/activities", "ana", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw["activities"], 2)
	assert.NotContains(t, raw["activities"][0], "workspace_id")
	assert.Equal(t, float64(5), raw["activities"][1]["workspace_id"])
	assert.Equal(t, "2024-03-01T08:00:00", raw["activities"][0]["start_time"])
}

func TestDeleteActivity(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		f := newHandlerFixture()

		f.activities.On("DeletePersonal", mock.Anything, "ana", int64(4)).Return(nil).Once()

		rec := f.do(http.MethodDelete, "/activities/4", "ana", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("ошибка: чужая активность", func(t *testing.T) {
		f := newHandlerFixture()

		f.activities.On("DeletePersonal", mock.Anything, "ana", int64(4)).
			Return(domain.NewForbiddenError("Cannot delete activity for a different user")).Once()

		rec := f.do(http.MethodDelete, "/activities/4", "ana", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("ошибка: нечисловой id", func(t *testing.T) {
		f := newHandlerFixture()

		rec := f.do(http.MethodDelete, "/activities/abc", "ana", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRemoveCategory(t *testing.T) {
	f := newHandlerFixture()

	f.categories.On("RemovePersonal", mock.Anything, "ana", "Studii").Return(nil, domain.NewNotFoundError("Category")).Once()

	rec := f.do(http.MethodDelete, "/categories?name=Studii", "ana", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found", decodeError(t, rec).Message)
}

func TestInviteMember(t *testing.T) {
	t.Run("приглашение создает участника", func(t *testing.T) {
		f := newHandlerFixture()

		f.workspaces.On("Invite", mock.Anything, "ana", int64(5), "bob", "ADMIN").
			Return(&domain.WorkspaceMember{Username: "bob", DisplayName: "Bob", Role: domain.RoleAdmin}, nil).Once()

		rec := f.do(http.MethodPost, "/workspaces/5/members", "ana", InviteRequest{Username: "bob", Role: "ADMIN"})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp MemberCreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ADMIN", resp.Member.Role)
	})

	t.Run("повторное приглашение дает 409", func(t *testing.T) {
		f := newHandlerFixture()

		f.workspaces.On("Invite", mock.Anything, "ana", int64(5), "bob", "").
			Return(nil, domain.NewConflictError("User already part of workspace")).Once()

		rec := f.do(http.MethodPost, "/workspaces/5/members", "ana", InviteRequest{Username: "bob"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLeaveWorkspace(t *testing.T) {
	f := newHandlerFixture()

	f.workspaces.On("Leave", mock.Anything, "ana", int64(5)).
		Return(domain.NewInvalidInputError("Workspace owner cannot leave the workspace")).Once()

	rec := f.do(http.MethodDelete, "/workspaces/5/members/me", "ana", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInternalErrorIsHidden(t *testing.T) {
	f := newHandlerFixture()

	f.workspaces.On("ListMembers", mock.Anything, "ana", int64(5)).Return(nil, errors.New("pq: connection reset")).Once()

	rec := f.do(http.MethodGet, "/workspaces/5/members", "ana", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", detail.Code)
	assert.NotContains(t, detail.Message, "connection reset")
}

func TestLogin(t *testing.T) {
	t.Run("успешный вход", func(t *testing.T) {
		f := newHandlerFixture()

		f.accounts.On("Login", mock.Anything, "ana", "secret1").Return("jwt-token", nil).Once()

		rec := f.do(http.MethodPost, "/auth/login", "", LoginRequest{Username: "ana", Password: "secret1"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"jwt-token"}`, rec.Body.String())
	})

	t.Run("неверные учетные данные дают 401", func(t *testing.T) {
		f := newHandlerFixture()

		f.accounts.On("Login", mock.Anything, "ana", "nope").Return("", domain.ErrUnauthenticated).Once()

		rec := f.do(http.MethodPost, "/auth/login", "", LoginRequest{Username: "ana", Password: "nope"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestParseTimestamp(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-01T22:00":          time.Date(2024, time.March, 1, 22, 0, 0, 0, time.UTC),
		"2024-03-01T22:00:30":       time.Date(2024, time.March, 1, 22, 0, 30, 0, time.UTC),
		"2024-03-01T22:00:00+02:00": time.Date(2024, time.March, 1, 22, 0, 0, 0, time.UTC),
		"":                          {},
	}
	for raw, want := range cases {
		got, err := parseTimestamp(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	_, err := parseTimestamp("01/03/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
