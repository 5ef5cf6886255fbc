// Package seeds populates the reference data the application cannot
// run without: the four roles and the bootstrap admin account.
package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"teamtrack/internal/domain/user"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/shared/authorization"
)

// SeedRoles inserts the built-in roles. FirstOrCreate keys on the slug
// so reruns are no-ops.
func SeedRoles(db *gorm.DB) error {
	roles := []models.RoleModel{
		{Name: "Admin", Slug: string(authorization.RoleAdmin), Description: "Full access to every resource", IsActive: true},
		{Name: "Manager", Slug: string(authorization.RoleManager), Description: "Runs projects and triages tickets", IsActive: true},
		{Name: "Developer", Slug: string(authorization.RoleDeveloper), Description: "Works assigned tickets", IsActive: true},
		{Name: "Tester", Slug: string(authorization.RoleTester), Description: "Verifies and reports tickets", IsActive: true},
	}

	for _, role := range roles {
		if err := db.FirstOrCreate(&role, models.RoleModel{Slug: role.Slug}).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Slug, err)
		}
	}

	return nil
}

// SeedAdminUser creates the bootstrap admin account if no user with
// that username exists. The default credentials are meant to be
// rotated on first login.
func SeedAdminUser(db *gorm.DB, hasher user.PasswordHasher) error {
	var count int64
	if err := db.Model(&models.UserModel{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	var adminRole models.RoleModel
	if err := db.Where("slug = ?", string(authorization.RoleAdmin)).First(&adminRole).Error; err != nil {
		return fmt.Errorf("failed to load admin role: %w", err)
	}

	hash, err := hasher.Hash("Admin@123")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.UserModel{
		Username:     "admin",
		Email:        "admin@teamtrack.local",
		FirstName:    "System",
		LastName:     "Administrator",
		PasswordHash: hash,
		RoleID:       adminRole.ID,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}

// Run applies all seeds in dependency order.
func Run(db *gorm.DB, hasher user.PasswordHasher) error {
	if err := SeedRoles(db); err != nil {
		return err
	}
	return SeedAdminUser(db, hasher)
}
