package events

import (
	"net/http"

	"biletsfera/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateEvent handles POST /api/event
func (ctrl *Controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	event, err := ctrl.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Event created", event)
}

// GetEvent handles GET /api/events/:id
func (ctrl *Controller) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	event, err := ctrl.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Event retrieved", event)
}

// GetAllEvents handles GET /api/events
func (ctrl *Controller) GetAllEvents(c *gin.Context) {
	list, err := ctrl.service.GetAllEvents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Events retrieved", list)
}

// GetEventsByOrganiser handles GET /api/events/by-organiser/:organiserName
func (ctrl *Controller) GetEventsByOrganiser(c *gin.Context) {
	organiser := c.Param("organiserName")
	if organiser == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Organiser name is required", nil, nil)
		return
	}

	list, err := ctrl.service.GetEventsByOrganiser(c.Request.Context(), organiser)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Events retrieved", list)
}

// ToggleReaction handles POST /api/event/likes-follows/:eventId/:userId/:actionType
func (ctrl *Controller) ToggleReaction(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	result, err := ctrl.service.ToggleReaction(c.Request.Context(), eventID, userID, c.Param("actionType"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Reaction toggled", result)
}

// GetReactionCount handles GET /api/event/likes-follows/:eventId/:actionType
func (ctrl *Controller) GetReactionCount(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	result, err := ctrl.service.GetReactionCount(c.Request.Context(), eventID, c.Param("actionType"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Reaction count retrieved", result)
}

// IncrementViews handles POST /api/event/views/:eventId
func (ctrl *Controller) IncrementViews(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, nil)
		return
	}

	// A missing event is not an error here; the counter is best-effort
	found := ctrl.service.IncrementViews(c.Request.Context(), eventID)
	response.Success(c, "Views updated", gin.H{"counted": found})
}

// GetReactedEvents handles GET /api/profile/:userId/:actionType
func (ctrl *Controller) GetReactedEvents(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return
	}

	list, err := ctrl.service.GetReactedEvents(c.Request.Context(), userID, c.Param("actionType"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Events retrieved", list)
}
