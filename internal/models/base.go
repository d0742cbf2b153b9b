package models

import "time"

// Base is the base model for all mutable entities.
// IDs are auto-increment integers so the API stays wire-compatible with the
// admin panel's numeric id handling (batch-delete payloads carry number[]).
type Base struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
