package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account. Users are never hard-deleted; Active=false
// marks logical deletion and blocks login and token validation.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	UserTypeID   uuid.UUID `gorm:"type:uuid;not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	UserType *UserType `gorm:"foreignKey:UserTypeID"`
}
