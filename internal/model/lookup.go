package model

import (
	"time"

	"github.com/google/uuid"
)

// Lookup is the shared shape of the reference tables (room types, room
// statuses, reservation statuses, user types): a unique name plus a
// free-form description. Each concrete table embeds it.
type Lookup struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Meta exposes the embedded lookup fields to generic repository/service code.
func (l *Lookup) Meta() *Lookup { return l }

type RoomType struct{ Lookup }

type RoomStatus struct{ Lookup }

type ReservationStatus struct{ Lookup }

// UserType distinguishes staff roles ("administrator", "receptionist", …).
// The name is embedded in JWT claims and checked by the role middleware.
type UserType struct{ Lookup }
