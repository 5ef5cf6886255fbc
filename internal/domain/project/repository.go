package project

import (
	"context"

	vo "teamtrack/internal/domain/project/valueobjects"
)

type Filter struct {
	Status    *vo.Status
	ManagerID *uint
	// VisibleToUserID restricts results to projects where the user has
	// tickets (created or assigned), per the developer/tester rule.
	VisibleToUserID *uint
	ActiveOnly      bool
	Page            int
	PageSize        int
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	// Delete removes the project row; ticket and comment rows cascade.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	List(ctx context.Context, filter Filter) ([]*Project, int64, error)
}
