package analytics

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, authMiddleware gin.HandlerFunc) {
	organiser := rg.Group("/organiser")
	organiser.Use(authMiddleware)
	{
		stats := organiser.Group("/stats")
		{
			stats.GET("/tickets-sold-by-event/:eventId", ctrl.TicketsSoldByEvent)
			stats.GET("/tickets-sold-by-organiser/:organiserName", ctrl.TicketsSoldByOrganiser)
			stats.GET("/total-earnings-by-event/:eventId", ctrl.EarningsByEvent)
			stats.GET("/total-earnings-by-organiser/:organiserName", ctrl.EarningsByOrganiser)
			stats.GET("/total-views-by-organiser/:organiserName", ctrl.ViewsByOrganiser)
		}
		organiser.GET("/sale-data/:organiserName", ctrl.SaleData)
	}
}
