package response

import (
	"net/http"

	"biletsfera/internal/shared/utils/apperrors"
	"biletsfera/pkg/logger"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// Success writes a 200 envelope with the given payload.
func Success(c *gin.Context, message string, data interface{}) {
	RespondJSON(c, "success", http.StatusOK, message, data, nil)
}

// Created writes a 201 envelope with the given payload.
func Created(c *gin.Context, message string, data interface{}) {
	RespondJSON(c, "success", http.StatusCreated, message, data, nil)
}

// Error maps err through the apperrors taxonomy and writes the envelope.
// Internal failures additionally hit the error log; client mistakes don't.
func Error(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.GetDefault().LogHTTPError(c, err, status)
	}
	RespondJSON(c, "error", status, err.Error(), nil, nil)
}
