package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/video-social-api/internal/models"
	"github.com/video-social-api/internal/service"
)

// SubscriptionHandler handles subscription endpoints
type SubscriptionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(services *service.Services, log zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		services: services,
		log:      log.With().Str("handler", "subscription").Logger(),
	}
}

// Toggle handles POST /v1/channels/:channel_id/subscription
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.services.Subscription.Toggle(ctx, requesterID(c), c.Param("channel_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "user subscribed successfully"
	if result.Action == models.ActionUnsubscribed {
		message = "user unsubscribed successfully"
	}
	respond(c, http.StatusOK, result, message)
}

// GetSubscribers handles GET /v1/channels/:channel_id/subscribers
func (h *SubscriptionHandler) GetSubscribers(c *gin.Context) {
	ctx := c.Request.Context()

	subscribers, err := h.services.Subscription.GetSubscribers(ctx, c.Param("channel_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, subscribers, "subscribers fetched successfully")
}

// GetSubscribedChannels handles GET /v1/subscribers/:subscriber_id/channels
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	ctx := c.Request.Context()

	channels, err := h.services.Subscription.GetSubscribedChannels(ctx, c.Param("subscriber_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respond(c, http.StatusOK, channels, "subscribed channels fetched successfully")
}
