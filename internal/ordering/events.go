package ordering

import (
	"encoding/json"
	"time"
)

const (
	EventAddonOrderPlaced  = "AddonOrderPlaced"
	EventDeliveryScheduled = "DeliveryScheduled"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"` // RFC3339
	Producer      string          `json:"producer"`    // e.g. "storefront-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // usually order_id
	Payload       json.RawMessage `json:"payload"`
}

type OrderLine struct {
	AddonID string `json:"addon_id"`
	Qty     int    `json:"qty"`
}

type AddonOrderPlacedPayload struct {
	OrderID      string      `json:"order_id"`
	UserID       string      `json:"user_id"`
	DeliveryDate string      `json:"delivery_date"` // YYYY-MM-DD
	Lines        []OrderLine `json:"lines"`
	TotalCoins   int         `json:"total_coins"`
}

type DeliveryScheduledPayload struct {
	OrderID      string      `json:"order_id"`
	DeliveryDate string      `json:"delivery_date"`
	Lines        []OrderLine `json:"lines"`
}
