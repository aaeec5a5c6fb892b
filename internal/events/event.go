// Package events публикует факты о записанных и удаленных активностях.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bagdasarian/timetrack/internal/domain"
)

const (
	TypeActivityRecorded = "activity.recorded"
	TypeActivityDeleted  = "activity.deleted"
)

type ActivityEvent struct {
	ID          uuid.UUID     `json:"id"`
	Type        string        `json:"type"`
	OccurredAt  time.Time     `json:"occurred_at"`
	Username    string        `json:"username"`
	Source      domain.Source `json:"source"`
	WorkspaceID *int64        `json:"workspace_id,omitempty"`
	ActivityIDs []int64       `json:"activity_ids"`
	Hours       float64       `json:"hours,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event ActivityEvent) error
}

func NewActivityRecorded(username string, source domain.Source, workspaceID *int64, ids []int64, hours float64) ActivityEvent {
	return ActivityEvent{
		ID:          uuid.New(),
		Type:        TypeActivityRecorded,
		OccurredAt:  time.Now().UTC(),
		Username:    username,
		Source:      source,
		WorkspaceID: workspaceID,
		ActivityIDs: ids,
		Hours:       hours,
	}
}

func NewActivityDeleted(username string, source domain.Source, workspaceID *int64, id int64) ActivityEvent {
	return ActivityEvent{
		ID:          uuid.New(),
		Type:        TypeActivityDeleted,
		OccurredAt:  time.Now().UTC(),
		Username:    username,
		Source:      source,
		WorkspaceID: workspaceID,
		ActivityIDs: []int64{id},
	}
}

// NopPublisher используется, когда брокеры не настроены
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ActivityEvent) error { return nil }
