package entity

// Broadcast is a push announcement sent through the platform, optionally
// pinned to a deal or an event (never both).
type Broadcast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"` // "deal" | "event" | "general"
	DealID      string `json:"deal_id,omitempty"`
	EventID     string `json:"event_id,omitempty"`
}
