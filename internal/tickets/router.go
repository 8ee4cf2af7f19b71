package tickets

import (
	"biletsfera/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTicketRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public lookup
	publicTickets := router.Group("/tickets")
	{
		publicTickets.GET("/:id", controller.GetTicket)                            // GET /api/tickets/:id
		publicTickets.GET("/by-event/:eventId", controller.GetTicketsForEvent)     // GET /api/tickets/by-event/:eventId
	}

	// Ticket management - organiser/admin only
	adminTickets := router.Group("/ticket")
	adminTickets.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminTickets.POST("", controller.CreateTicket)    // POST /api/ticket
		adminTickets.PUT("/:id", controller.UpdateTicket) // PUT /api/ticket/:id
	}
}
