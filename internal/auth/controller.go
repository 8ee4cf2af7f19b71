package auth

import (
	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	resp, err := ctrl.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Account created successfully", resp)
}

func (ctrl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	resp, err := ctrl.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Authenticated successfully", resp)
}

func (ctrl *Controller) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	pair, err := ctrl.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Token refreshed successfully", pair)
}

func (ctrl *Controller) ChangePassword(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, apperrors.Unauthorized("authentication required"))
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	if err := ctrl.service.ChangePassword(c.Request.Context(), userID.(string), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Password changed successfully", nil)
}

func (ctrl *Controller) GetProfile(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, apperrors.Unauthorized("authentication required"))
		return
	}

	user, err := ctrl.service.GetUser(c.Request.Context(), userID.(string))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Profile retrieved successfully", user)
}

func (ctrl *Controller) UpdatePreferences(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, apperrors.Unauthorized("authentication required"))
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	user, err := ctrl.service.UpdatePreferences(c.Request.Context(), userID.(string), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Preferences updated successfully", user)
}

// Logout is stateless: tokens are short-lived and simply discarded by
// the client. The endpoint exists so clients have a uniform call to
// end a session.
func (ctrl *Controller) Logout(c *gin.Context) {
	if _, ok := c.Get("user_id"); !ok {
		response.Error(c, apperrors.Unauthorized("authentication required"))
		return
	}
	response.Success(c, "Logged out successfully", nil)
}

func (ctrl *Controller) RemoveAccount(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		response.Error(c, apperrors.Unauthorized("authentication required"))
		return
	}

	if err := ctrl.service.RemoveAccount(c.Request.Context(), userID.(string)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Account removed successfully", nil)
}
