package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"crewcycle.io/crewcycle/ent"
	"crewcycle.io/crewcycle/internal/api/handlers"
	"crewcycle.io/crewcycle/internal/api/middleware"
	"crewcycle.io/crewcycle/internal/config"
)

// newRouter builds the gin engine with hand-registered routes under /api/v1.
// Public routes skip authentication; everything else passes JWT validation
// and then re-reads the caller's role from the database.
func newRouter(cfg *config.Config, server *handlers.Server, client *ent.Client, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	if len(cfg.Server.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	v1 := router.Group("/api/v1")

	// Public surface.
	v1.POST("/auth/register", server.Register)
	v1.POST("/auth/login", server.Login)
	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	// Everything below requires a valid token and a live user row.
	auth := v1.Group("")
	auth.Use(middleware.JWTAuth(jwtCfg.SigningKey), middleware.LoadActor(client))

	auth.GET("/auth/me", server.GetCurrentUser)
	auth.POST("/auth/change-password", server.ChangePassword)

	auth.GET("/users", server.ListUsers)
	auth.GET("/users/:id", server.GetUser)
	auth.PATCH("/users/:id", server.UpdateUser)
	auth.DELETE("/users/:id", server.DeleteUser)

	auth.POST("/teams", server.CreateTeam)
	auth.GET("/teams", server.ListTeams)
	auth.GET("/teams/:id", server.GetTeam)
	auth.PATCH("/teams/:id", server.UpdateTeam)
	auth.DELETE("/teams/:id", server.DeleteTeam)

	auth.POST("/systems", server.CreateSystem)
	auth.GET("/systems", server.ListSystems)
	auth.GET("/systems/:id", server.GetSystem)
	auth.PATCH("/systems/:id", server.UpdateSystem)
	auth.DELETE("/systems/:id", server.DeleteSystem)
	auth.GET("/systems/:id/slots", server.GetSystemSlots)

	auth.POST("/cycles", server.CreateCycle)
	auth.GET("/cycles", server.ListCycles)
	auth.GET("/cycles/active", server.GetActiveCycle)
	auth.GET("/cycles/:id", server.GetCycle)
	auth.PATCH("/cycles/:id", server.UpdateCycle)

	auth.POST("/applications", server.CreateApplication)
	auth.GET("/applications", server.ListApplications)
	auth.GET("/applications/:id", server.GetApplication)
	auth.PATCH("/applications/:id", server.UpdateApplication)
	auth.POST("/applications/:id/advance", server.AdvanceApplication)
	auth.DELETE("/applications/:id", server.DeleteApplication)

	auth.POST("/availability", server.CreateAvailability)
	auth.GET("/availability", server.ListAvailability)
	auth.DELETE("/availability/:id", server.DeleteAvailability)

	auth.POST("/interviews", server.BookInterview)
	auth.GET("/interviews", server.ListInterviews)
	auth.GET("/interviews/:id", server.GetInterview)
	auth.PATCH("/interviews/:id", server.UpdateInterview)

	auth.GET("/notifications", server.ListNotifications)
	auth.PATCH("/notifications/:id/read", server.MarkNotificationRead)

	auth.POST("/admin/sweep", server.TriggerSweep)

	return router
}
