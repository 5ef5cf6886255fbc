package mappers

import (
	"teamtrack/internal/domain/activity"
	"teamtrack/internal/infrastructure/persistence/models"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToModel(l *activity.Log) *models.ActivityLogModel {
	return &models.ActivityLogModel{
		ID:          l.ID(),
		UserID:      l.UserID(),
		Action:      l.Action(),
		Description: l.Description(),
		EntityType:  l.EntityType(),
		EntityID:    l.EntityID(),
		CreatedAt:   l.CreatedAt(),
	}
}

func (m *ActivityMapper) ToDomain(model *models.ActivityLogModel) *activity.Log {
	return activity.ReconstructLog(
		model.ID,
		model.UserID,
		model.Action,
		model.Description,
		model.EntityType,
		model.EntityID,
		model.CreatedAt,
	)
}

func (m *ActivityMapper) ToDomainList(modelList []*models.ActivityLogModel) []*activity.Log {
	logs := make([]*activity.Log, 0, len(modelList))
	for _, model := range modelList {
		logs = append(logs, m.ToDomain(model))
	}
	return logs
}
