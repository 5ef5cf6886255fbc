package models

import (
	"time"

	"teamtrack/internal/shared/constants"
)

// ActivityLogModel is append-only. There is no UpdatedAt on purpose.
type ActivityLogModel struct {
	ID          uint   `gorm:"primarykey"`
	UserID      uint   `gorm:"not null;index"`
	Action      string `gorm:"not null;size:50;index"`
	Description string `gorm:"size:500"`
	EntityType  string `gorm:"not null;size:30;index"`
	EntityID    uint   `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"index"`
}

func (ActivityLogModel) TableName() string {
	return constants.TableActivityLogs
}
