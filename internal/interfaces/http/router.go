// Package http wires handlers, middleware and the permission table
// into a gin engine.
package http

import (
	"github.com/gin-gonic/gin"

	"teamtrack/internal/infrastructure/auth"
	"teamtrack/internal/infrastructure/config"
	"teamtrack/internal/infrastructure/permission"
	"teamtrack/internal/infrastructure/ratelimit"
	"teamtrack/internal/interfaces/http/handlers"
	"teamtrack/internal/interfaces/http/middleware"
	"teamtrack/internal/shared/logger"
)

// Router owns the gin engine and the route table.
type Router struct {
	engine *gin.Engine

	authMiddleware *middleware.AuthMiddleware
	permMiddleware *middleware.PermissionMiddleware
	loginLimiter   gin.HandlerFunc

	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	projectHandler  *handlers.ProjectHandler
	ticketHandler   *handlers.TicketHandler
	activityHandler *handlers.ActivityHandler
	healthHandler   *handlers.HealthHandler
}

// Deps collects everything the router needs. All fields are required.
type Deps struct {
	JWTService *auth.JWTService
	Enforcer   *permission.Enforcer
	Limiter    ratelimit.Limiter
	Logger     logger.Interface

	AuthHandler     *handlers.AuthHandler
	UserHandler     *handlers.UserHandler
	ProjectHandler  *handlers.ProjectHandler
	TicketHandler   *handlers.TicketHandler
	ActivityHandler *handlers.ActivityHandler
	HealthHandler   *handlers.HealthHandler
}

func NewRouter(deps Deps) *Router {
	return &Router{
		engine:          gin.New(),
		authMiddleware:  middleware.NewAuthMiddleware(deps.JWTService, deps.Logger),
		permMiddleware:  middleware.NewPermissionMiddleware(deps.Enforcer, deps.Logger),
		loginLimiter:    middleware.IPRateLimit(deps.Limiter, ratelimit.DefaultLoginConfig, deps.Logger),
		authHandler:     deps.AuthHandler,
		userHandler:     deps.UserHandler,
		projectHandler:  deps.ProjectHandler,
		ticketHandler:   deps.TicketHandler,
		activityHandler: deps.ActivityHandler,
		healthHandler:   deps.HealthHandler,
	}
}

// Engine exposes the configured gin engine for serving and for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// SetupRoutes installs global middleware and the full route table.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	api := r.engine.Group("/api")

	api.GET("/health", r.healthHandler.Health)
	api.GET("/health/detailed", r.healthHandler.DetailedHealth)

	r.setupAuthRoutes(api)
	r.setupUserRoutes(api)
	r.setupProjectRoutes(api)
	r.setupTicketRoutes(api)
	r.setupActivityRoutes(api)
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.loginLimiter, r.authHandler.Login)
		authGroup.POST("/reset-password", r.loginLimiter, r.authHandler.ResetPassword)
		authGroup.POST("/change-password", r.authMiddleware.RequireAuth(), r.authHandler.ChangePassword)
	}
}

func (r *Router) setupUserRoutes(api *gin.RouterGroup) {
	perm := r.permMiddleware

	users := api.Group("/users")
	users.Use(r.authMiddleware.RequireAuth())
	{
		users.POST("", perm.RequirePermission(permission.ResourceUser, permission.ActionCreate), r.userHandler.CreateUser)
		users.GET("", perm.RequirePermission(permission.ResourceUser, permission.ActionRead), r.userHandler.ListUsers)

		// Registered before /:id so "profile" is not parsed as an ID.
		users.GET("/profile", r.userHandler.GetProfile)
		users.PUT("/profile", r.userHandler.UpdateProfile)

		users.GET("/:id", perm.RequirePermission(permission.ResourceUser, permission.ActionRead), r.userHandler.GetUser)
		users.PUT("/:id", perm.RequirePermission(permission.ResourceUser, permission.ActionUpdate), r.userHandler.UpdateUser)
		users.DELETE("/:id", perm.RequirePermission(permission.ResourceUser, permission.ActionDelete), r.userHandler.DeleteUser)
		users.PUT("/:id/role", perm.RequirePermission(permission.ResourceUser, permission.ActionUpdate), r.userHandler.ChangeRole)
	}

	roles := api.Group("/roles")
	roles.Use(r.authMiddleware.RequireAuth())
	{
		roles.GET("", r.userHandler.ListRoles)
	}
}

func (r *Router) setupProjectRoutes(api *gin.RouterGroup) {
	perm := r.permMiddleware

	projects := api.Group("/projects")
	projects.Use(r.authMiddleware.RequireAuth())
	{
		projects.POST("", perm.RequirePermission(permission.ResourceProject, permission.ActionCreate), r.projectHandler.CreateProject)
		projects.GET("", perm.RequirePermission(permission.ResourceProject, permission.ActionRead), r.projectHandler.ListProjects)
		projects.GET("/:id", perm.RequirePermission(permission.ResourceProject, permission.ActionRead), r.projectHandler.GetProject)
		projects.PUT("/:id", perm.RequirePermission(permission.ResourceProject, permission.ActionUpdate), r.projectHandler.UpdateProject)
		projects.DELETE("/:id", perm.RequirePermission(permission.ResourceProject, permission.ActionDelete), r.projectHandler.DeleteProject)
		projects.PUT("/:id/status", perm.RequirePermission(permission.ResourceProject, permission.ActionStatus), r.projectHandler.ChangeStatus)
		projects.GET("/:id/tickets", perm.RequirePermission(permission.ResourceTicket, permission.ActionRead), r.ticketHandler.ListProjectTickets)
		projects.POST("/:id/assign/:user_id", perm.RequirePermission(permission.ResourceProject, permission.ActionAssign), r.projectHandler.AssignMember)
		projects.DELETE("/:id/assign/:user_id", perm.RequirePermission(permission.ResourceProject, permission.ActionAssign), r.projectHandler.RemoveMember)
	}
}

func (r *Router) setupTicketRoutes(api *gin.RouterGroup) {
	perm := r.permMiddleware

	tickets := api.Group("/tickets")
	tickets.Use(r.authMiddleware.RequireAuth())
	{
		tickets.POST("", perm.RequirePermission(permission.ResourceTicket, permission.ActionCreate), r.ticketHandler.CreateTicket)
		tickets.GET("", perm.RequirePermission(permission.ResourceTicket, permission.ActionRead), r.ticketHandler.ListTickets)
		tickets.GET("/:id", perm.RequirePermission(permission.ResourceTicket, permission.ActionRead), r.ticketHandler.GetTicket)
		tickets.PUT("/:id", perm.RequirePermission(permission.ResourceTicket, permission.ActionUpdate), r.ticketHandler.UpdateTicket)
		tickets.DELETE("/:id", perm.RequirePermission(permission.ResourceTicket, permission.ActionDelete), r.ticketHandler.DeleteTicket)
		tickets.PUT("/:id/status", perm.RequirePermission(permission.ResourceTicket, permission.ActionStatus), r.ticketHandler.UpdateStatus)
		tickets.POST("/:id/assign/:user_id", perm.RequirePermission(permission.ResourceTicket, permission.ActionAssign), r.ticketHandler.AssignTicket)
		tickets.DELETE("/:id/assign/:user_id", perm.RequirePermission(permission.ResourceTicket, permission.ActionAssign), r.ticketHandler.UnassignTicket)
		tickets.GET("/:id/comments", perm.RequirePermission(permission.ResourceTicket, permission.ActionRead), r.ticketHandler.ListComments)
		tickets.POST("/:id/comments", perm.RequirePermission(permission.ResourceTicket, permission.ActionUpdate), r.ticketHandler.AddComment)
	}
}

func (r *Router) setupActivityRoutes(api *gin.RouterGroup) {
	activity := api.Group("/activity")
	activity.Use(r.authMiddleware.RequireAuth())
	{
		activity.GET("", r.permMiddleware.RequirePermission(permission.ResourceActivity, permission.ActionRead), r.activityHandler.ListActivity)
	}
}
