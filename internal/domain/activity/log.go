// Package activity defines the append-only audit trail written by
// every mutating operation.
package activity

import (
	"context"
	"fmt"
	"time"

	"teamtrack/internal/shared/biztime"
)

// Entity types recorded in the log.
const (
	EntityUser    = "user"
	EntityProject = "project"
	EntityTicket  = "ticket"
	EntityComment = "comment"
)

// Log is a single immutable audit entry. Entries are never updated or
// deleted by the application.
type Log struct {
	id          uint
	userID      uint
	action      string
	description string
	entityType  string
	entityID    uint
	createdAt   time.Time
}

func NewLog(userID uint, action, description, entityType string, entityID uint) (*Log, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}

	return &Log{
		userID:      userID,
		action:      action,
		description: description,
		entityType:  entityType,
		entityID:    entityID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructLog(id, userID uint, action, description, entityType string, entityID uint, createdAt time.Time) *Log {
	return &Log{
		id:          id,
		userID:      userID,
		action:      action,
		description: description,
		entityType:  entityType,
		entityID:    entityID,
		createdAt:   createdAt,
	}
}

func (l *Log) ID() uint             { return l.id }
func (l *Log) UserID() uint         { return l.userID }
func (l *Log) Action() string       { return l.action }
func (l *Log) Description() string  { return l.description }
func (l *Log) EntityType() string   { return l.entityType }
func (l *Log) EntityID() uint       { return l.entityID }
func (l *Log) CreatedAt() time.Time { return l.createdAt }

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("log ID is already set")
	}
	l.id = id
	return nil
}

type Filter struct {
	UserID     *uint
	EntityType *string
	EntityID   *uint
	Page       int
	PageSize   int
}

type Repository interface {
	Save(ctx context.Context, l *Log) error
	List(ctx context.Context, filter Filter) ([]*Log, int64, error)
}
