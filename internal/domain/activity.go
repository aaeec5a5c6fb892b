package domain

import "time"

type Source string

const (
	SourcePersonal  Source = "PERSONAL"
	SourceWorkspace Source = "WORKSPACE"
)

// ActivityDraft - входные данные для записи активности до разбиения по дням
type ActivityDraft struct {
	Name      string
	Category  string
	StartTime time.Time
	EndTime   time.Time
}

type Activity struct {
	ID        int64
	UserID    int64
	Username  string
	Name      string
	Category  string
	StartTime time.Time
	EndTime   time.Time
	Hours     float64
}

type WorkspaceActivity struct {
	ID            int64
	WorkspaceID   int64
	WorkspaceName string
	UserID        int64
	Username      string
	Name          string
	Category      string
	StartTime     time.Time
	EndTime       time.Time
	Hours         float64
}

// UserActivityView - общая проекция личных и workspace-активностей, не хранится
type UserActivityView struct {
	ID            int64
	Name          string
	Category      string
	Hours         float64
	StartTime     time.Time
	EndTime       time.Time
	Source        Source
	Username      string
	WorkspaceID   *int64
	WorkspaceName string
}

func ViewFromPersonal(a *Activity) *UserActivityView {
	return &UserActivityView{
		ID:        a.ID,
		Name:      a.Name,
		Category:  a.Category,
		Hours:     a.Hours,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Source:    SourcePersonal,
		Username:  a.Username,
	}
}

func ViewFromWorkspace(a *WorkspaceActivity) *UserActivityView {
	workspaceID := a.WorkspaceID
	return &UserActivityView{
		ID:            a.ID,
		Name:          a.Name,
		Category:      a.Category,
		Hours:         a.Hours,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Source:        SourceWorkspace,
		Username:      a.Username,
		WorkspaceID:   &workspaceID,
		WorkspaceName: a.WorkspaceName,
	}
}

// TimeRange - полуинтервал [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Hours возвращает длительность в часах по целым минутам
func (r TimeRange) Hours() float64 {
	minutes := int64(r.End.Sub(r.Start) / time.Minute)
	return float64(minutes) / 60.0
}
