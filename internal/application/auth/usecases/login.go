// Package usecases implements authentication flows. Every login
// failure returns the same unauthorized error so responses never
// reveal whether a username exists.
package usecases

import (
	"context"
	"fmt"
	"time"

	"teamtrack/internal/application/auth/dto"
	userusecases "teamtrack/internal/application/user/usecases"
	domainUser "teamtrack/internal/domain/user"
	"teamtrack/internal/infrastructure/ratelimit"
	"teamtrack/internal/shared/authorization"
	"teamtrack/internal/shared/errors"
	"teamtrack/internal/shared/logger"
)

const invalidCredentialsMessage = "invalid username or password"

// dummyHash is compared against when the username does not resolve to an
// account, so unknown and known usernames cost the same bcrypt work.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// TokenGenerator issues signed access tokens.
type TokenGenerator interface {
	Generate(userID uint, username, email string, role authorization.UserRole) (string, time.Time, error)
}

type LoginUseCase struct {
	userRepo domainUser.Repository
	hasher   domainUser.PasswordHasher
	tokens   TokenGenerator
	limiter  ratelimit.Limiter
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo domainUser.Repository,
	hasher domainUser.PasswordHasher,
	tokens TokenGenerator,
	limiter ratelimit.Limiter,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		logger:   log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, request dto.LoginRequest) (*dto.LoginResponse, error) {
	allowed, err := uc.limiter.Allow(ctx, "login:"+request.Username, ratelimit.DefaultLoginConfig)
	if err != nil {
		// A broken limiter must not lock everyone out.
		uc.logger.Warnw("rate limiter unavailable, allowing login attempt", "error", err)
	} else if !allowed {
		uc.logger.Warnw("login rate limit exceeded", "username", request.Username)
		return nil, errors.NewUnauthorizedError("too many login attempts, try again later")
	}

	u, err := uc.userRepo.GetByUsername(ctx, request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil || !u.IsActive() {
		_ = uc.hasher.Verify(request.Password, dummyHash)
		uc.logger.Infow("login rejected", "username", request.Username)
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}

	if err := u.VerifyPassword(request.Password, uc.hasher); err != nil {
		uc.logger.Infow("login rejected", "username", request.Username)
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}

	token, expiresAt, err := uc.tokens.Generate(u.ID(), u.Username(), u.Email().String(), u.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		// Login still succeeds when the timestamp write fails.
		uc.logger.Warnw("failed to record last login", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userusecases.ToUserResponse(u),
	}, nil
}
