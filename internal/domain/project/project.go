package project

import (
	"fmt"
	"time"

	vo "teamtrack/internal/domain/project/valueobjects"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/biztime"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// Project is the project aggregate root.
type Project struct {
	id          uint
	name        string
	description string
	startDate   time.Time
	endDate     *time.Time
	status      vo.Status
	managerID   *uint
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(
	name string,
	description string,
	startDate time.Time,
	endDate *time.Time,
	managerID *uint,
) (*Project, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Project{
		name:        name,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		status:      vo.StatusNotStarted,
		managerID:   managerID,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	name string,
	description string,
	startDate time.Time,
	endDate *time.Time,
	status vo.Status,
	managerID *uint,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Project{
		id:          id,
		name:        name,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		status:      status,
		managerID:   managerID,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint              { return p.id }
func (p *Project) Name() string          { return p.name }
func (p *Project) Description() string   { return p.description }
func (p *Project) StartDate() time.Time  { return p.startDate }
func (p *Project) EndDate() *time.Time   { return p.endDate }
func (p *Project) Status() vo.Status     { return p.status }
func (p *Project) ManagerID() *uint      { return p.managerID }
func (p *Project) IsActive() bool        { return p.isActive }
func (p *Project) CreatedAt() time.Time  { return p.createdAt }
func (p *Project) UpdatedAt() time.Time  { return p.updatedAt }

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update overwrites the mutable fields after validating date ordering.
func (p *Project) Update(
	name string,
	description string,
	startDate time.Time,
	endDate *time.Time,
	managerID *uint,
) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if startDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if err := validateDates(startDate, endDate); err != nil {
		return err
	}

	p.name = name
	p.description = description
	p.startDate = startDate
	p.endDate = endDate
	p.managerID = managerID
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Project) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if p.status == newStatus {
		return nil
	}
	if !p.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", p.status, newStatus)
	}
	p.status = newStatus
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate soft-deletes the project.
func (p *Project) Deactivate() {
	p.isActive = false
	p.updatedAt = biztime.NowUTC()
}

// IsManagedBy reports whether userID is the project's manager.
func (p *Project) IsManagedBy(userID uint) bool {
	return p.managerID != nil && *p.managerID == userID
}

// CanBeViewedBy implements the visibility rule at the aggregate level:
// admins see everything, managers see projects they manage. Developer
// and tester visibility (via assigned tickets) needs a query and is
// handled by the repository filter.
func (p *Project) CanBeViewedBy(userID uint, role authorization.UserRole) bool {
	if role.IsAdmin() {
		return true
	}
	if role.IsManager() {
		return p.IsManagedBy(userID)
	}
	return false
}

func validateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return nil
}

func validateDates(startDate time.Time, endDate *time.Time) error {
	if endDate != nil && endDate.Before(startDate) {
		return fmt.Errorf("end date cannot be before start date")
	}
	return nil
}
