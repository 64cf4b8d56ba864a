package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hostel-hub/internal/auth"       // auth supplies the role constants
	"github.com/iliyamo/hostel-hub/internal/config"     // config supplies middleware settings
	"github.com/iliyamo/hostel-hub/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/hostel-hub/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// Deps bundles everything route registration needs.  The Redis client is
// optional; when nil the rate limiter and cache degrade to pass-throughs.
type Deps struct {
	Cfg       config.Config
	Auth      *handler.AuthHandler
	Admin     *handler.AdminHandler
	Resident  *handler.ResidentHandler
	Redis     *redis.Client
	RateLimit config.RateLimitConfig
	Cache     config.CacheConfig
}

// RegisterRoutes wires every endpoint of the service onto the provided
// Echo instance: the public health check, the auth surface under
// /v1/auth, the admin surface under /v1 and the resident self-service
// surface under /v1/my.
func RegisterRoutes(e *echo.Echo, d Deps) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)

	// Create a route group under the /v1/auth prefix for operations that do
	// not require an existing session (login, refresh, logout).  Each of
	// these handlers is responsible for generating or exchanging tokens.
	g := e.Group("/v1/auth", middleware.RateLimit(d.RateLimit, d.Redis))
	// Register a POST endpoint to handle user login at /v1/auth/login.
	g.POST("/login", d.Auth.Login)
	// Register a POST endpoint to refresh access tokens at /v1/auth/refresh. This rotates the refresh token.
	g.POST("/refresh", d.Auth.Refresh)
	// Register a POST endpoint to log out using a refresh token.  Revoking
	// an unknown token still succeeds so logout stays idempotent.
	g.POST("/logout", d.Auth.Logout)

	// Create another group for routes that require a valid access token.  All
	// handlers registered on this group will execute the JWTAuth middleware
	// before being invoked.  Protected endpoints live under /v1.
	v1 := e.Group("/v1")
	// Apply the JWTAuth middleware to the protected group using the configured secret.
	v1.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	// Apply the rate limiter on every authenticated endpoint as well.
	v1.Use(middleware.RateLimit(d.RateLimit, d.Redis))
	// Every authenticated endpoint accepts both roles at this level; the
	// role split happens on the sub-groups below.
	v1.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleResident))
	// Register a GET endpoint at /v1/me that returns the authenticated user's information.
	v1.GET("/me", d.Auth.Me)
	// The notice board is readable by both roles.
	v1.GET("/notices", d.Admin.ListNotices)

	// Administrator surface.  Every route below rejects tokens whose role
	// claim is not ADMIN.
	admin := v1.Group("", middleware.RequireRole(auth.RoleAdmin))
	// Room inventory with per-room occupancy.
	admin.GET("/rooms", d.Admin.ListRooms)
	// Create a room; the unique number and positive capacity are validated here.
	admin.POST("/rooms", d.Admin.CreateRoom)
	// Delete a room; its residents are unassigned, never removed.
	admin.DELETE("/rooms/:id", d.Admin.DeleteRoom)
	// Resident directory with optional ?q= substring search on name and email.
	admin.GET("/students", d.Admin.ListStudents)
	// Register a resident with a unique email.
	admin.POST("/students", d.Admin.RegisterStudent)
	// Delete a resident; attendance goes with them, complaints stay.
	admin.DELETE("/students/:id", d.Admin.DeleteStudent)
	// Move a resident into a room, or out of any room with a null room_id.
	admin.PUT("/students/:id/allocation", d.Admin.AllocateStudent)
	// Daily attendance log for a date, defaulting to today.
	admin.GET("/attendance", d.Admin.DailyAttendance)
	// Mark a resident present or absent on a date.
	admin.POST("/attendance", d.Admin.ToggleAttendance)
	// Full complaint queue, pending and resolved.
	admin.GET("/complaints", d.Admin.ListComplaints)
	// Resolve a complaint; the transition is one-way.
	admin.POST("/complaints/:id/resolve", d.Admin.ResolveComplaint)
	// Post and remove notices on the shared board.
	admin.POST("/notices", d.Admin.PostNotice)
	admin.DELETE("/notices/:id", d.Admin.DeleteNotice)
	// Audit trail views; DELETE is the bulk clear, the only removal allowed.
	admin.GET("/audit", d.Admin.ListAuditLog)
	admin.DELETE("/audit", d.Admin.ClearAuditLog)
	// Dashboard aggregates.  These are pure reads over current state, so the
	// responses are safe to cache for a short TTL.
	cache := middleware.Cache(d.Cache, d.Redis)
	admin.GET("/analytics/stats", d.Admin.GetStats, cache)
	admin.GET("/analytics/rooms", d.Admin.GetRoomUsage, cache)

	// Resident self-service surface.  Every route below is scoped to the
	// resident named by the token's student_id claim.
	my := v1.Group("/my", middleware.RequireRole(auth.RoleResident))
	// Home screen payload: own record, room, roommates, today's presence, notices.
	my.GET("/dashboard", d.Resident.Dashboard)
	// The resident's own attendance history.
	my.GET("/attendance", d.Resident.MyAttendance)
	// The resident's own complaints, and filing a new one.
	my.GET("/complaints", d.Resident.MyComplaints)
	my.POST("/complaints", d.Resident.FileComplaint)
}
