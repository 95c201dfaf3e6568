package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Error taxonomy. Domain functions return one of these; handlers hand
// anything they get to respondError, which is the single translation point to
// HTTP. Anything outside the taxonomy becomes a generic 500.

// ValidationError covers missing or malformed input.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError covers uniqueness violations. Emitted as 400, not 409, for
// parity with the original wire contract.
type ConflictError struct{ Msg string }

func (e *ConflictError) Error() string { return e.Msg }

// AuthenticationError covers bad credentials. Wrong username and wrong
// password are deliberately indistinguishable.
type AuthenticationError struct{ Msg string }

func (e *AuthenticationError) Error() string { return e.Msg }

// NotFoundError covers a missing user or record.
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

// StorageUnavailableError covers a gateway that is not configured or cannot
// acquire a connection.
type StorageUnavailableError struct{ Reason string }

func (e *StorageUnavailableError) Error() string { return e.Reason }

// respondError translates a domain error into the error response shape
// {success:false, message} with the matching status. Unrecognized errors are
// logged and answered with a generic 500 so no store detail leaks.
func respondError(c *gin.Context, err error) {
	var (
		ve *ValidationError
		ce *ConflictError
		ae *AuthenticationError
		ne *NotFoundError
		se *StorageUnavailableError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Msg})
	case errors.As(err, &ce):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ce.Msg})
	case errors.As(err, &ae):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": ae.Msg})
	case errors.As(err, &ne):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": ne.Msg})
	case errors.As(err, &se):
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database not configured"})
	default:
		log.WithError(err).Error("unhandled error")
		body := gin.H{"success": false, "message": "Internal server error"}
		if gin.IsDebugging() {
			body["debug"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
