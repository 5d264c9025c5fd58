package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/video-social-api/internal/apperrors"
	"github.com/video-social-api/internal/validation"
)

// requesterKey is the gin context key carrying the verified caller identity
const requesterKey = "requester_id"

// respond writes the {statusCode, data, message} envelope
func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"statusCode": status,
		"data":       data,
		"message":    message,
	})
}

// statusFor maps an error kind to an HTTP status code
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidIdentifier, apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindPermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a service error onto the envelope. Internal causes are
// logged, never sent to the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	kind := apperrors.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	respond(c, status, nil, apperrors.MessageOf(err))
}

// requireRequester extracts the caller identity attached upstream by the
// authentication service. Requests without a usable identity never reach
// the handlers.
func requireRequester() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-User-ID")
		if id == "" {
			respond(c, http.StatusUnauthorized, nil, "requester identity is missing")
			c.Abort()
			return
		}
		if !validation.IsValidID(id) {
			respond(c, http.StatusUnauthorized, nil, "requester identity is not a valid identifier")
			c.Abort()
			return
		}
		c.Set(requesterKey, id)
		c.Next()
	}
}

// requesterID reads the verified caller identity from the request context
func requesterID(c *gin.Context) string {
	return c.GetString(requesterKey)
}
