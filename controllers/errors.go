package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// fail maps a service error to its HTTP status; anything unclassified is a
// server error.
func fail(c *gin.Context, err error) {
	se, ok := services.AsServiceError(err)
	if !ok {
		resp.ServerError(c, err)
		return
	}
	switch se.Code {
	case services.ErrorNotFound:
		resp.NotFound(c, se.Message)
	case services.ErrorConflict:
		resp.Conflict(c, se.Message)
	case services.ErrorForbidden:
		resp.Forbidden(c, se.Message)
	case services.ErrorUnauthorized:
		resp.Unauthorized(c, se.Message)
	case services.ErrorInvalid, services.ErrorInsufficientBalance:
		resp.BadRequest(c, se.Message)
	default:
		resp.ServerError(c, se)
	}
}
