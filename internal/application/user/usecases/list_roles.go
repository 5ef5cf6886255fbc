package usecases

import (
	"context"
	"fmt"

	"teamtrack/internal/application/user/dto"
	domainUser "teamtrack/internal/domain/user"
)

type ListRolesUseCase struct {
	roleRepo domainUser.RoleRepository
}

func NewListRolesUseCase(roleRepo domainUser.RoleRepository) *ListRolesUseCase {
	return &ListRolesUseCase{roleRepo: roleRepo}
}

func (uc *ListRolesUseCase) Execute(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, dto.RoleResponse{
			ID:          r.ID,
			Name:        r.Name,
			Slug:        string(r.Slug),
			Description: r.Description,
		})
	}

	return responses, nil
}
