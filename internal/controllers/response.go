package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"time"

	"teamhours-be/internal/middleware"
	"teamhours-be/internal/models"
	"teamhours-be/internal/repository"
	"teamhours-be/internal/service"

	"github.com/gin-gonic/gin"
)

// All endpoints answer HTTP 200 and carry the outcome in the envelope's
// status_code, matching the mobile clients' contract.

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, models.Envelope{StatusCode: 200, Message: message, Data: data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusOK, models.Envelope{StatusCode: 400, Message: message, Data: ""})
}

func respondValidationError(c *gin.Context, err error, messages map[string]string) {
	respondBadRequest(c, models.FirstValidationMessage(err, messages))
}

// respondInternal logs the failure with caller context and hands the client
// a generic message; internal detail never reaches the response.
func respondInternal(c *gin.Context, method string, err error) {
	respondInternalAt(c, method, err, callSite(2))
}

// respondInternalAt is the shared tail of the internal-error path; site is
// the handler location already captured by the caller.
func respondInternalAt(c *gin.Context, method string, err error, site string) {
	log.Printf("ERROR method=%s file=%s message=%q at=%s",
		method, site, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	c.JSON(http.StatusOK, models.Envelope{StatusCode: 500, Message: "Something went wrong", Data: ""})
}

// callSite reports the file:line skip frames above it, so logs point at the
// handler rather than at this file.
func callSite(skip int) string {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("%s:%d", file, line)
	}
	return "unknown:0"
}

// respondServiceError maps the service error taxonomy onto the envelope.
// notFoundMsg is the endpoint-specific message for a missing record.
func respondServiceError(c *gin.Context, method string, err error, notFoundMsg string) {
	var invalid *service.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		respondBadRequest(c, invalid.Message)
	case errors.Is(err, repository.ErrNotFound):
		respondBadRequest(c, notFoundMsg)
	case errors.Is(err, service.ErrNoValidRecipients):
		respondBadRequest(c, "No valid recipients found.")
	default:
		respondInternalAt(c, method, err, callSite(2))
	}
}

// callerIdentity pulls the authenticated user id and account id set by the
// auth middleware.
func callerIdentity(c *gin.Context) (userID, accountID string, ok bool) {
	uid, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		c.Abort()
		return "", "", false
	}
	aid, _ := c.Get(middleware.ContextAccountID)
	accountID, _ = aid.(string)
	return uid.(string), accountID, true
}
