package order

import (
	"time"

	"combolunch/internal/menu"

	"github.com/google/uuid"
)

// Order is a submitted, validated combo.
type Order struct {
	ID        uuid.UUID                `json:"id"`
	SessionID uuid.UUID                `json:"session_id"`
	Items     map[menu.Category]string `json:"items"` // category -> dish keyword
	Total     int                      `json:"total"`
	CreatedAt time.Time                `json:"created_at"`
}
