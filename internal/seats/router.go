package seats

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller) {
	// lives under /events/:id to share the param slot with the event routes
	rg.GET("/events/:id/seats", ctrl.GetSeatMap)
}
