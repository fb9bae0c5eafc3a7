package controllers

import (
	"errors"
	"net/http"

	"fittrack/logger"
	"fittrack/middlewares"
	"fittrack/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError maps a service error to its HTTP form. resource names the
// record in not-found messages, e.g. "Meal".
func respondError(c *gin.Context, err error, resource string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr)
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, &services.ValidationError{Errors: []services.FieldError{
			{Field: "email", Message: "User already exists"},
		}})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, &services.ValidationError{Errors: []services.FieldError{
			{Field: "credentials", Message: "Invalid credentials"},
		}})
	case errors.Is(err, services.ErrPushDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Push notifications are not available"})
	default:
		_ = c.Error(err)
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
	}
}

// callerID returns the authenticated user or writes a 401.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middlewares.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token, authorization denied"})
	}
	return id, ok
}
