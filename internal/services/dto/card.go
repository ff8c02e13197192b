package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// SaveCardRequest upserts a card by its client-chosen id. Data is kept
// opaque; the store never enforces a schema on it.
type SaveCardRequest struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Theme string          `json:"theme"`
	Data  json.RawMessage `json:"data"`
}

type SaveCardResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type CardResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Data      datatypes.JSON `json:"data"`
	Theme     string         `json:"theme"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// PublicCardResponse is the share-link payload. It carries the owner id
// so the public page can send attributable analytics events.
type PublicCardResponse struct {
	ID          string         `json:"id"`
	Data        datatypes.JSON `json:"data"`
	Theme       string         `json:"theme"`
	OwnerUserID uint           `json:"owner_user_id"`
}

// AdminCardResponse is card metadata without the data payload.
type AdminCardResponse struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
