package mappers

import (
	"fmt"

	"teamtrack/internal/domain/project"
	vo "teamtrack/internal/domain/project/valueobjects"
	"teamtrack/internal/infrastructure/persistence/models"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
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

func (m *ProjectMapper) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status (project id=%d): %w", model.ID, err)
	}

	return project.ReconstructProject(
		model.ID,
		model.Name,
		model.Description,
		model.StartDate,
		model.EndDate,
		status,
		model.ManagerID,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ProjectMapper) ToDomainList(modelList []*models.ProjectModel) ([]*project.Project, error) {
	projects := make([]*project.Project, 0, len(modelList))
	for _, model := range modelList {
		p, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}
