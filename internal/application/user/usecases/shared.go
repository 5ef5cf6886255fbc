// Package usecases holds the user management use cases. Each use case
// is a small struct with an Execute method so handlers and tests wire
// exactly what they need.
package usecases

import (
	userdto "teamtrack/internal/application/user/dto"
	domainUser "teamtrack/internal/domain/user"
)

// ToUserResponse maps the aggregate to its API shape. The password
// hash never leaves the domain layer.
func ToUserResponse(u *domainUser.User) userdto.UserResponse {
	return userdto.UserResponse{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email().String(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		FullName:    u.FullName(),
		Role:        string(u.Role()),
		RoleID:      u.RoleID(),
		IsActive:    u.IsActive(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}
