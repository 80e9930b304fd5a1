package model

import (
	"time"

	"github.com/google/uuid"
)

// Token statuses.
const (
	TokenActive  = "active"
	TokenRevoked = "revoked"
	TokenExpired = "expired"
)

// Token is a persisted session record backing a signed JWT. A user may
// hold several active tokens at once (multi-session). Logout flips the
// status to revoked; the background sweeper flips stale rows to expired.
type Token struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Token     string    `gorm:"uniqueIndex;not null"`
	Status    string    `gorm:"type:varchar(10);not null;default:'active'"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID"`
}
