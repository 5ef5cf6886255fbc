package http

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"teamtrack/internal/application/activity"
	authUC "teamtrack/internal/application/auth/usecases"
	projectUC "teamtrack/internal/application/project/usecases"
	ticketUC "teamtrack/internal/application/ticket/usecases"
	userUC "teamtrack/internal/application/user/usecases"
	"teamtrack/internal/infrastructure/auth"
	"teamtrack/internal/infrastructure/config"
	"teamtrack/internal/infrastructure/email"
	"teamtrack/internal/infrastructure/permission"
	"teamtrack/internal/infrastructure/ratelimit"
	"teamtrack/internal/infrastructure/repository"
	"teamtrack/internal/interfaces/http/handlers"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/services/markdown"
	"teamtrack/internal/shared/version"
)

// BuildRouter assembles repositories, use cases and handlers on top of
// an open database connection. Policy rows are seeded idempotently.
func BuildRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	userRepo := repository.NewUserRepository(db, log)
	roleRepo := repository.NewRoleRepository(db, log)
	projectRepo := repository.NewProjectRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	activityRepo := repository.NewActivityLogRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.Issuer,
		cfg.Auth.JWT.Audience,
		cfg.Auth.JWT.ExpiryMinutes,
	)

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build enforcer: %w", err)
	}
	if err := enforcer.InitPolicies(); err != nil {
		return nil, fmt.Errorf("failed to seed policies: %w", err)
	}

	var limiter ratelimit.Limiter = ratelimit.NewNoopLimiter()
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisLimiter(client)
	}

	sender := email.NewSMTPSender(&cfg.Email)
	md := markdown.NewService()
	recorder := activity.NewRecorder(activityRepo, log)

	authHandler := handlers.NewAuthHandler(
		authUC.NewLoginUseCase(userRepo, hasher, jwtService, limiter, log),
		authUC.NewChangePasswordUseCase(userRepo, hasher, sender, log),
		authUC.NewResetPasswordUseCase(userRepo, jwtService, sender, log),
		log,
	)

	userHandler := handlers.NewUserHandler(
		userUC.NewCreateUserUseCase(userRepo, roleRepo, hasher, recorder, log),
		userUC.NewGetUserUseCase(userRepo, log),
		userUC.NewListUsersUseCase(userRepo, log),
		userUC.NewUpdateUserUseCase(userRepo, recorder, log),
		userUC.NewDeleteUserUseCase(userRepo, ticketRepo, recorder, log),
		userUC.NewChangeRoleUseCase(userRepo, roleRepo, recorder, log),
		userUC.NewUpdateProfileUseCase(userRepo, log),
		userUC.NewListRolesUseCase(roleRepo),
		log,
	)

	projectHandler := handlers.NewProjectHandler(
		projectUC.NewCreateProjectUseCase(projectRepo, userRepo, recorder, log),
		projectUC.NewGetProjectUseCase(projectRepo, ticketRepo, log),
		projectUC.NewListProjectsUseCase(projectRepo, log),
		projectUC.NewUpdateProjectUseCase(projectRepo, userRepo, recorder, log),
		projectUC.NewDeleteProjectUseCase(projectRepo, recorder, log),
		projectUC.NewChangeProjectStatusUseCase(projectRepo, recorder, log),
		projectUC.NewAssignMemberUseCase(projectRepo, userRepo, recorder, log),
		projectUC.NewRemoveMemberUseCase(projectRepo, userRepo, ticketRepo, recorder, log),
		log,
	)

	ticketHandler := handlers.NewTicketHandler(
		ticketUC.NewCreateTicketUseCase(ticketRepo, projectRepo, userRepo, recorder, log),
		ticketUC.NewGetTicketUseCase(ticketRepo, projectRepo, log),
		ticketUC.NewListTicketsUseCase(ticketRepo, log),
		ticketUC.NewUpdateTicketUseCase(ticketRepo, projectRepo, recorder, log),
		ticketUC.NewUpdateStatusUseCase(ticketRepo, recorder, log),
		ticketUC.NewDeleteTicketUseCase(ticketRepo, recorder, log),
		ticketUC.NewAssignTicketUseCase(ticketRepo, userRepo, recorder, log),
		ticketUC.NewUnassignTicketUseCase(ticketRepo, recorder, log),
		ticketUC.NewAddCommentUseCase(ticketRepo, projectRepo, md, recorder, log),
		ticketUC.NewListCommentsUseCase(ticketRepo, projectRepo, md, log),
		log,
	)

	activityHandler := handlers.NewActivityHandler(
		activity.NewListActivityUseCase(activityRepo, log),
		log,
	)

	healthHandler := handlers.NewHealthHandler(db, version.Version, log)

	router := NewRouter(Deps{
		JWTService:      jwtService,
		Enforcer:        enforcer,
		Limiter:         limiter,
		Logger:          log,
		AuthHandler:     authHandler,
		UserHandler:     userHandler,
		ProjectHandler:  projectHandler,
		TicketHandler:   ticketHandler,
		ActivityHandler: activityHandler,
		HealthHandler:   healthHandler,
	})
	router.SetupRoutes(cfg, log)

	return router, nil
}
