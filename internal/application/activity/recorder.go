// Package activity records and lists the audit trail of mutations.
package activity

import (
	"context"

	"teamtrack/internal/domain/activity"
	"teamtrack/internal/shared/logger"
)

// Recorder writes audit entries. Recording failures are logged and
// swallowed so an audit hiccup never fails the mutation it describes.
type Recorder struct {
	repo   activity.Repository
	logger logger.Interface
}

func NewRecorder(repo activity.Repository, log logger.Interface) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: log,
	}
}

func (r *Recorder) Record(ctx context.Context, userID uint, action, description, entityType string, entityID uint) {
	entry, err := activity.NewLog(userID, action, description, entityType, entityID)
	if err != nil {
		r.logger.Warnw("failed to build activity log entry",
			"action", action, "entity_type", entityType, "error", err)
		return
	}

	if err := r.repo.Save(ctx, entry); err != nil {
		r.logger.Warnw("failed to record activity",
			"action", action, "entity_type", entityType, "entity_id", entityID, "error", err)
	}
}
