package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sh-sahil/emp-repo/dto"
)

// statusFor maps the service error taxonomy to HTTP status codes.
// Anything unrecognized is an internal failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrDuplicateSubmission),
		errors.Is(err, dto.ErrExtraction),
		errors.Is(err, dto.ErrInvalidModelOutput):
		return http.StatusBadRequest
	case errors.Is(err, dto.ErrUserNotFound),
		errors.Is(err, dto.ErrNoTaxDetails):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, label, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   label,
		Message: errorMsg,
		Code:    statusCode,
	})
}
