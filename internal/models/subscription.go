package models

import (
	"time"
)

// Subscription is a directed follow edge: subscriber follows channel.
// At most one edge exists per (subscriber, channel) pair; edge presence is
// the sole subscribed/unsubscribed signal.
type Subscription struct {
	ID           string    `json:"id" db:"id"`
	SubscriberID string    `json:"subscriber_id" db:"subscriber_id"`
	ChannelID    string    `json:"channel_id" db:"channel_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ToggleAction reports which way a subscription toggle flipped
type ToggleAction string

const (
	ActionSubscribed   ToggleAction = "subscribed"
	ActionUnsubscribed ToggleAction = "unsubscribed"
)

// ToggleResult is the outcome of a subscription toggle
type ToggleResult struct {
	Action ToggleAction  `json:"action"`
	Edge   *Subscription `json:"edge"`
}
