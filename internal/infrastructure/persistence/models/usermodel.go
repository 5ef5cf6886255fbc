package models

import (
	"time"

	"teamtrack/internal/shared/constants"
)

// UserModel is the persistence model for users. It is the
// anti-corruption layer between the domain aggregate and the table.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null;size:50"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FirstName    string `gorm:"not null;size:50"`
	LastName     string `gorm:"not null;size:50"`
	PasswordHash string `gorm:"not null;size:255"`
	RoleID       uint   `gorm:"not null;index"`
	IsActive     bool   `gorm:"not null;default:true;index"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Role *RoleModel `gorm:"foreignKey:RoleID"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
