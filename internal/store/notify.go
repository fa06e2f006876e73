package store

import (
	"context"
	"time"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/models"
)

// notifyingSubmissions publishes an [models.EventSubmissionsChanged] after
// every successful write of the wrapped repository. A failed publish is only
// logged: the write already happened.
type notifyingSubmissions struct {
	SubmissionRepository
	publisher EventPublisher
	now       func() time.Time
}

// WithSubmissionEvents decorates repo so that writes reach publisher.
func WithSubmissionEvents(repo SubmissionRepository, publisher EventPublisher) SubmissionRepository {
	return &notifyingSubmissions{SubmissionRepository: repo, publisher: publisher, now: time.Now}
}

func (n *notifyingSubmissions) Create(ctx context.Context, sub models.Submission) error {
	if err := n.SubmissionRepository.Create(ctx, sub); err != nil {
		return err
	}
	n.publish(ctx, sub.TeamID)
	return nil
}

func (n *notifyingSubmissions) UpdateRevealFields(ctx context.Context, teamID, keepers string, costData *string) error {
	if err := n.SubmissionRepository.UpdateRevealFields(ctx, teamID, keepers, costData); err != nil {
		return err
	}
	n.publish(ctx, teamID)
	return nil
}

func (n *notifyingSubmissions) Replace(ctx context.Context, sub models.Submission) error {
	if err := n.SubmissionRepository.Replace(ctx, sub); err != nil {
		return err
	}
	n.publish(ctx, sub.TeamID)
	return nil
}

func (n *notifyingSubmissions) Remove(ctx context.Context, teamID string) error {
	if err := n.SubmissionRepository.Remove(ctx, teamID); err != nil {
		return err
	}
	n.publish(ctx, teamID)
	return nil
}

func (n *notifyingSubmissions) RemoveAll(ctx context.Context) error {
	if err := n.SubmissionRepository.RemoveAll(ctx); err != nil {
		return err
	}
	n.publish(ctx, "")
	return nil
}

func (n *notifyingSubmissions) publish(ctx context.Context, teamID string) {
	event := models.Event{Kind: models.EventSubmissionsChanged, TeamID: teamID, At: n.now().UTC()}
	if err := n.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*notifyingSubmissions.publish").
			Str("team_id", teamID).
			Msg("error publishing submissions change")
	}
}

// notifyingState publishes countdown and deadline changes of the wrapped
// [StateRepository].
type notifyingState struct {
	StateRepository
	publisher EventPublisher
	now       func() time.Time
}

// WithStateEvents decorates repo so that writes reach publisher.
func WithStateEvents(repo StateRepository, publisher EventPublisher) StateRepository {
	return &notifyingState{StateRepository: repo, publisher: publisher, now: time.Now}
}

func (n *notifyingState) SetCountdownStart(ctx context.Context, start *time.Time) error {
	if err := n.StateRepository.SetCountdownStart(ctx, start); err != nil {
		return err
	}
	n.publish(ctx, models.Event{Kind: models.EventCountdownChanged, CountdownStartTime: copyTime(start)})
	return nil
}

func (n *notifyingState) SetDeadline(ctx context.Context, deadline *time.Time) error {
	if err := n.StateRepository.SetDeadline(ctx, deadline); err != nil {
		return err
	}
	n.publish(ctx, models.Event{Kind: models.EventDeadlineChanged, Deadline: copyTime(deadline)})
	return nil
}

func (n *notifyingState) publish(ctx context.Context, event models.Event) {
	event.At = n.now().UTC()
	if err := n.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*notifyingState.publish").
			Str("kind", string(event.Kind)).
			Msg("error publishing state change")
	}
}
