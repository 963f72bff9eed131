package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property lifecycle event types.
const (
	EventPropertyCreated     = "property.created"
	EventPropertyUpdated     = "property.updated"
	EventPropertyDeactivated = "property.deactivated"
)

// PropertyEvent is published after a successful write to the property
// store. Publishing is best effort and never fails the request.
type PropertyEvent struct {
	Type       string    `json:"type"`
	PropertyID uuid.UUID `json:"property_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewPropertyEvent builds an event for the given listing.
func NewPropertyEvent(eventType string, p *Property) PropertyEvent {
	return PropertyEvent{
		Type:       eventType,
		PropertyID: p.ID,
		OwnerID:    p.OwnerID,
		Category:   p.Category,
		OccurredAt: time.Now().UTC(),
	}
}
