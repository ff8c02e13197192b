package models

import "time"

// Recognized analytics event types.
const (
	EventTypeView  = "view"
	EventTypeClick = "click"
	EventTypeSave  = "save"
)

// ValidEventType reports whether t is one of the recognized event types.
func ValidEventType(t string) bool {
	switch t {
	case EventTypeView, EventTypeClick, EventTypeSave:
		return true
	}
	return false
}

// AnalyticsEvent is an anonymous engagement record. UserID is the card
// OWNER's id, resolved once at ingestion time — visitors have no account,
// and the denormalized owner reference keeps summary queries join-free.
type AnalyticsEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CardID    string    `gorm:"index;not null" json:"card_id"`
	EventType string    `gorm:"not null" json:"event_type"`
	Action    string    `json:"action"`
	Src       string    `json:"src"`
	VisitorID string    `json:"visitor_id"`
	CreatedAt time.Time `json:"created_at"`
}
