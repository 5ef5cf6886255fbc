package user

import (
	"fmt"
	"regexp"
	"time"

	vo "teamtrack/internal/domain/user/valueobjects"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/biztime"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{3,50}$`)

// PasswordHasher abstracts the credential hashing scheme. Passwords are
// never stored or compared in plaintext.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is the user aggregate root. The role slug is denormalized from
// the roles table at load time so authorization never needs a second
// query.
type User struct {
	id           uint
	username     string
	email        *vo.Email
	firstName    string
	lastName     string
	passwordHash string
	roleID       uint
	role         authorization.UserRole
	isActive     bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(
	username string,
	email *vo.Email,
	firstName, lastName string,
	roleID uint,
	role authorization.UserRole,
) (*User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("username must be 3-50 characters of letters, digits, underscore, dot or dash")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if roleID == 0 {
		return nil, fmt.Errorf("role ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		username:  username,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		roleID:    roleID,
		role:      role,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	email *vo.Email,
	firstName, lastName string,
	passwordHash string,
	roleID uint,
	role authorization.UserRole,
	isActive bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		firstName:    firstName,
		lastName:     lastName,
		passwordHash: passwordHash,
		roleID:       roleID,
		role:         role,
		isActive:     isActive,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                        { return u.id }
func (u *User) Username() string                { return u.username }
func (u *User) Email() *vo.Email                { return u.email }
func (u *User) FirstName() string               { return u.firstName }
func (u *User) LastName() string                { return u.lastName }
func (u *User) PasswordHash() string            { return u.passwordHash }
func (u *User) RoleID() uint                    { return u.roleID }
func (u *User) Role() authorization.UserRole    { return u.role }
func (u *User) IsActive() bool                  { return u.isActive }
func (u *User) LastLoginAt() *time.Time         { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time            { return u.createdAt }
func (u *User) UpdatedAt() time.Time            { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPassword hashes and stores the credential.
func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

// VerifyPassword compares the supplied password against the stored
// hash. The error carries no detail usable for user enumeration.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("password verification failed")
	}
	return hasher.Verify(password, u.passwordHash)
}

// ChangePassword verifies the current credential before setting the new one.
func (u *User) ChangePassword(currentPassword, newPassword string, hasher PasswordHasher) error {
	if err := u.VerifyPassword(currentPassword, hasher); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	return u.SetPassword(newPassword, hasher)
}

// UpdateProfile overwrites the mutable profile fields.
func (u *User) UpdateProfile(email *vo.Email, firstName, lastName string) error {
	if email == nil {
		return fmt.Errorf("email is required")
	}
	u.email = email
	u.firstName = firstName
	u.lastName = lastName
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangeRole(roleID uint, role authorization.UserRole) error {
	if roleID == 0 {
		return fmt.Errorf("role ID is required")
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.roleID = roleID
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate soft-deletes the user; the row stays for history.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = biztime.NowUTC()
}

// RecordLogin stamps the last successful authentication time.
func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

func (u *User) FullName() string {
	if u.firstName == "" && u.lastName == "" {
		return u.username
	}
	return u.firstName + " " + u.lastName
}
