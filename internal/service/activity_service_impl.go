package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/events"
	"github.com/bagdasarian/timetrack/internal/observability"
	"github.com/bagdasarian/timetrack/internal/repository"
)

type activityService struct {
	tx                    repository.Transactor
	activityRepo          repository.ActivityRepository
	workspaceActivityRepo repository.WorkspaceActivityRepository
	userRepo              repository.UserRepository
	access                WorkspaceAccess
	publisher             events.Publisher
	logger                *slog.Logger
}

func NewActivityService(
	tx repository.Transactor,
	activityRepo repository.ActivityRepository,
	workspaceActivityRepo repository.WorkspaceActivityRepository,
	userRepo repository.UserRepository,
	access WorkspaceAccess,
	publisher events.Publisher,
	logger *slog.Logger,
) ActivityService {
	return &activityService{
		tx:                    tx,
		activityRepo:          activityRepo,
		workspaceActivityRepo: workspaceActivityRepo,
		userRepo:              userRepo,
		access:                access,
		publisher:             publisher,
		logger:                logger,
	}
}

func (s *activityService) ListForUser(ctx context.Context, username string) ([]*domain.UserActivityView, error) {
	if username == "" {
		return nil, domain.ErrUnauthenticated
	}

	personal, err := s.activityRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	shared, err := s.workspaceActivityRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.UserActivityView, 0, len(personal)+len(shared))
	for _, activity := range personal {
		views = append(views, domain.ViewFromPersonal(activity))
	}
	for _, activity := range shared {
		views = append(views, domain.ViewFromWorkspace(activity))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].StartTime.Before(views[j].StartTime)
	})
	return views, nil
}

func (s *activityService) ListForWorkspace(ctx context.Context, username string, workspaceID int64) ([]*domain.UserActivityView, error) {
	if _, err := s.access.ResolveMembership(ctx, username, workspaceID); err != nil {
		return nil, err
	}

	activities, err := s.workspaceActivityRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.UserActivityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, domain.ViewFromWorkspace(activity))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].StartTime.Before(views[j].StartTime)
	})
	return views, nil
}

func (s *activityService) AddPersonal(ctx context.Context, username string, draft domain.ActivityDraft) ([]*domain.Activity, error) {
	if username == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateTiming(draft); err != nil {
		return nil, err
	}

	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	ranges := SegmentByDay(draft.StartTime, draft.EndTime)
	created := make([]*domain.Activity, 0, len(ranges))
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, r := range ranges {
			segment := &domain.Activity{
				UserID:    user.ID,
				Username:  user.Username,
				Name:      strings.TrimSpace(draft.Name),
				Category:  strings.TrimSpace(draft.Category),
				StartTime: r.Start,
				EndTime:   r.End,
				Hours:     r.Hours(),
			}
			if err := s.activityRepo.Create(ctx, segment); err != nil {
				return err
			}
			created = append(created, segment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.RecordSegmentsCreated(domain.SourcePersonal, len(created))
	ids, hours := make([]int64, 0, len(created)), 0.0
	for _, segment := range created {
		ids = append(ids, segment.ID)
		hours += segment.Hours
	}
	s.publish(ctx, events.NewActivityRecorded(username, domain.SourcePersonal, nil, ids, hours))

	return created, nil
}

func (s *activityService) AddToWorkspace(ctx context.Context, username string, workspaceID int64, draft domain.ActivityDraft) ([]*domain.WorkspaceActivity, error) {
	member, err := s.access.ResolveMembership(ctx, username, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := validateTiming(draft); err != nil {
		return nil, err
	}

	ranges := SegmentByDay(draft.StartTime, draft.EndTime)
	created := make([]*domain.WorkspaceActivity, 0, len(ranges))
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, r := range ranges {
			segment := &domain.WorkspaceActivity{
				WorkspaceID: workspaceID,
				UserID:      member.UserID,
				Username:    member.Username,
				Name:        strings.TrimSpace(draft.Name),
				Category:    strings.TrimSpace(draft.Category),
				StartTime:   r.Start,
				EndTime:     r.End,
				Hours:       r.Hours(),
			}
			if err := s.workspaceActivityRepo.Create(ctx, segment); err != nil {
				return err
			}
			created = append(created, segment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.RecordSegmentsCreated(domain.SourceWorkspace, len(created))
	ids, hours := make([]int64, 0, len(created)), 0.0
	for _, segment := range created {
		ids = append(ids, segment.ID)
		hours += segment.Hours
	}
	s.publish(ctx, events.NewActivityRecorded(username, domain.SourceWorkspace, &workspaceID, ids, hours))

	return created, nil
}

func (s *activityService) DeletePersonal(ctx context.Context, username string, id int64) error {
	if username == "" {
		return domain.ErrUnauthenticated
	}

	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("Activity")
		}
		return err
	}
	if activity.Username != username {
		return domain.NewForbiddenError("Cannot delete activity for a different user")
	}

	if err := s.activityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("Activity")
		}
		return err
	}

	s.publish(ctx, events.NewActivityDeleted(username, domain.SourcePersonal, nil, id))
	return nil
}

func (s *activityService) DeleteFromWorkspace(ctx context.Context, username string, workspaceID int64, id int64) error {
	if _, err := s.access.ResolveMembership(ctx, username, workspaceID); err != nil {
		return err
	}

	activity, err := s.workspaceActivityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("Activity")
		}
		return err
	}
	if activity.WorkspaceID != workspaceID {
		return domain.NewForbiddenError("Activity does not belong to this workspace")
	}
	if activity.Username != username {
		return domain.NewForbiddenError("Cannot delete activity for a different user")
	}

	if err := s.workspaceActivityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("Activity")
		}
		return err
	}

	s.publish(ctx, events.NewActivityDeleted(username, domain.SourceWorkspace, &workspaceID, id))
	return nil
}

func (s *activityService) resolveUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("User")
		}
		return nil, err
	}
	return user, nil
}

// publish вызывается после коммита; сбой брокера не отменяет запись
func (s *activityService) publish(ctx context.Context, event events.ActivityEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "activity event not published",
			slog.String("type", event.Type),
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)
	}
}

func validateTiming(draft domain.ActivityDraft) error {
	if draft.StartTime.IsZero() || draft.EndTime.IsZero() {
		return domain.NewInvalidInputError("Start time and end time are required")
	}
	if !draft.EndTime.After(draft.StartTime) {
		return domain.NewInvalidInputError("End time must be after start time")
	}
	return nil
}
