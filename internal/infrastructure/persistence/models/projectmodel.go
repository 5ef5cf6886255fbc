package models

import (
	"time"

	"teamtrack/internal/shared/constants"
)

type ProjectModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"size:500"`
	Status      string `gorm:"not null;size:20;index"`
	ManagerID   *uint  `gorm:"index"`
	StartDate   time.Time
	EndDate     *time.Time
	IsActive    bool `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}
