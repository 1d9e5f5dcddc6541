package models

import "time"

// Base is the base model for all entities. IDs are MySQL auto-increment
// integers so they can travel inside the preference document as plain JSON
// numbers and be used directly as sort keys.
type Base struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
