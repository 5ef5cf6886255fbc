package models

import (
	"time"

	"teamtrack/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:100"`
	Description string `gorm:"size:1000"`
	ProjectID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	CreatorID   uint   `gorm:"not null;index"`
	Status      string `gorm:"not null;size:20;index"`
	Priority    string `gorm:"not null;size:20;index"`
	Type        string `gorm:"not null;size:20;index"`
	DueDate     *time.Time
	TimeSpent   float64 `gorm:"not null;default:0"`
	IsActive    bool    `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketCommentModel struct {
	ID        uint   `gorm:"primarykey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (TicketCommentModel) TableName() string {
	return constants.TableTicketComments
}
