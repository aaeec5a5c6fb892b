package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/timetrack/internal/auth"
	"github.com/bagdasarian/timetrack/internal/domain"
)

// timestampLayout - локальное время без зоны, как в полях datetime-local
const timestampLayout = "2006-01-02T15:04:05"

var inputLayouts = []string{timestampLayout, "2006-01-02T15:04", time.RFC3339}

// parseTimestamp сохраняет показания часов из строки и ставит их в UTC
func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, domain.NewInvalidInputError("Invalid timestamp: " + raw)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewInvalidInputError("Invalid " + name)
	}
	return id, nil
}

func requireUsername(r *http.Request) (string, error) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return username, nil
}

func httpActivityToDraft(req ActivityRequest) (domain.ActivityDraft, error) {
	start, err := parseTimestamp(req.StartTime)
	if err != nil {
		return domain.ActivityDraft{}, err
	}
	end, err := parseTimestamp(req.EndTime)
	if err != nil {
		return domain.ActivityDraft{}, err
	}
	return domain.ActivityDraft{
		Name:      req.Name,
		Category:  req.Category,
		StartTime: start,
		EndTime:   end,
	}, nil
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		CreatedAt:   formatTimestamp(user.CreatedAt),
	}
}

func domainViewToHTTP(view *domain.UserActivityView) ActivityResponse {
	return ActivityResponse{
		ID:            view.ID,
		Name:          view.Name,
		Category:      view.Category,
		Hours:         view.Hours,
		StartTime:     formatTimestamp(view.StartTime),
		EndTime:       formatTimestamp(view.EndTime),
		Source:        string(view.Source),
		Username:      view.Username,
		WorkspaceID:   view.WorkspaceID,
		WorkspaceName: view.WorkspaceName,
	}
}

func domainViewsToHTTP(views []*domain.UserActivityView) []ActivityResponse {
	result := make([]ActivityResponse, 0, len(views))
	for _, view := range views {
		result = append(result, domainViewToHTTP(view))
	}
	return result
}

func domainSummaryToHTTP(summary *domain.WorkspaceSummary) WorkspaceResponse {
	return WorkspaceResponse{
		ID:            summary.Workspace.ID,
		Name:          summary.Workspace.Name,
		Role:          string(summary.Role),
		OwnerUsername: summary.OwnerUsername,
		JoinedAt:      formatTimestamp(summary.JoinedAt),
		CreatedAt:     formatTimestamp(summary.Workspace.CreatedAt),
	}
}

func domainMemberToHTTP(member *domain.WorkspaceMember) MemberResponse {
	return MemberResponse{
		Username:    member.Username,
		DisplayName: member.DisplayName,
		Role:        string(member.Role),
		JoinedAt:    formatTimestamp(member.JoinedAt),
	}
}
