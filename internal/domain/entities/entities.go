package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrWriteConflict    = errors.New("write had no effect")
)

// Activity represents a scheduled event with descriptive and location fields
type Activity struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Date        time.Time `json:"date" db:"date"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	City        string    `json:"city" db:"city"`
	Venue       string    `json:"venue" db:"venue"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
