package cart

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, authMiddleware gin.HandlerFunc) {
	user := rg.Group("/user")
	user.Use(authMiddleware)
	{
		user.POST("/:userId/cart/add-ticket/:eventId/:ticketId", ctrl.AddTicket)
		user.POST("/:userId/cart/remove-ticket/:eventId/:ticketId", ctrl.RemoveTicket)
		user.GET("/:userId/cart", ctrl.GetCart)
	}
}
