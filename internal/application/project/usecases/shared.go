package usecases

import (
	"teamtrack/internal/application/project/dto"
	domainProject "teamtrack/internal/domain/project"
)

func ToProjectResponse(p *domainProject.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Status:      p.Status().String(),
		ManagerID:   p.ManagerID(),
		StartDate:   p.StartDate(),
		EndDate:     p.EndDate(),
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
