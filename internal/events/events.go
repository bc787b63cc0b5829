package events

import "context"

// Streams
const (
	StreamCampaign    = "events:campaign"
	StreamApplication = "events:application"
)

// Event types
const (
	EventCampaignStatusChanged    = "campaign_status_changed"
	EventApplicationSubmitted     = "application_submitted"
	EventApplicationStatusChanged = "application_status_changed"
	EventSelectionCompleted       = "selection_completed"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
