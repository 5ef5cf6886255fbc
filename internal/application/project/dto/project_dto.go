package dto

import "time"

type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	ManagerID   *uint      `json:"manager_id"`
}

type UpdateProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	ManagerID   *uint      `json:"manager_id"`
}

type ChangeProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type ListProjectsRequest struct {
	Status     string
	ManagerID  *uint
	ActiveOnly bool
	Page       int
	PageSize   int
}

type ProjectResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	ManagerID   *uint      `json:"manager_id,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
