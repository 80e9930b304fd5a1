package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a hotel guest. Phone, email and identification number are all
// unique; Active=false soft-deletes without losing reservation history.
type Client struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName            string    `gorm:"not null"`
	LastName             string    `gorm:"not null"`
	Phone                string    `gorm:"uniqueIndex;not null"`
	Email                string    `gorm:"uniqueIndex;not null"`
	NumberIdentification string    `gorm:"uniqueIndex;not null"`
	Active               bool      `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
