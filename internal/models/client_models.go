package models

import (
	"encoding/json"
	"time"
)

// Client represents a customer of the travel agency.
type Client struct {
	ID           int64           `json:"id" db:"id"`
	FirstName    string          `json:"first_name" db:"first_name"`
	LastName     string          `json:"last_name" db:"last_name"`
	Email        *string         `json:"email" db:"email"`
	Phone        *string         `json:"phone" db:"phone"`
	PassportData json.RawMessage `json:"passport_data" db:"passport_data"`
	CreatedAt    *time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at" db:"updated_at"`
}
