package events

import (
	"biletsfera/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - anyone can browse events
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.GetAllEvents)                                         // GET /api/events
		publicEvents.GET("/:id", controller.GetEvent)                                         // GET /api/events/:id
		publicEvents.GET("/by-organiser/:organiserName", controller.GetEventsByOrganiser)     // GET /api/events/by-organiser/:organiserName
	}

	// Social engine - view counter stays public, reactions need a session.
	// OptionalAuth attaches the caller's identity to the context when a
	// token is present so the request log carries it.
	social := router.Group("/event")
	social.Use(middleware.OptionalAuth())
	{
		social.POST("/views/:eventId", controller.IncrementViews)                        // POST /api/event/views/:eventId
		social.GET("/likes-follows/:eventId/:actionType", controller.GetReactionCount)   // GET /api/event/likes-follows/:eventId/:actionType
	}

	authedSocial := router.Group("/event")
	authedSocial.Use(middleware.JWTAuth())
	{
		authedSocial.POST("/likes-follows/:eventId/:userId/:actionType", controller.ToggleReaction) // POST /api/event/likes-follows/:eventId/:userId/:actionType
	}

	// Per-user liked/followed listing
	profile := router.Group("/profile")
	profile.Use(middleware.JWTAuth())
	{
		profile.GET("/:userId/:actionType", controller.GetReactedEvents) // GET /api/profile/:userId/:actionType
	}

	// Event management - organiser/admin only
	adminEvents := router.Group("/event")
	adminEvents.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminEvents.POST("", controller.CreateEvent) // POST /api/event
	}
}
