package models

import (
	"time"

	"gorm.io/datatypes"
)

// Card is a user-authored shareable document. The id is chosen by the
// client (slug or UUID) and is globally unique across all owners, which
// makes the public share link a direct lookup.
type Card struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Title     string         `json:"title"`
	Data      datatypes.JSON `json:"data"`
	Theme     string         `json:"theme"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
