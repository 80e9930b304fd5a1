package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation links a guest to a room over a [check-in, check-out) date
// range. Total is derived: price_per_night × whole nights, recomputed
// whenever the room or the dates change. check_out_date > check_in_date
// is enforced before any write.
type Reservation struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null"`
	ClientID            uuid.UUID       `gorm:"type:uuid;index;not null"`
	RoomID              uuid.UUID       `gorm:"type:uuid;index;not null"`
	ReservationStatusID uuid.UUID       `gorm:"type:uuid;not null"`
	CheckInDate         time.Time       `gorm:"type:date;not null"`
	CheckOutDate        time.Time       `gorm:"type:date;not null"`
	Note                string
	Total               decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	User              *User              `gorm:"foreignKey:UserID"`
	Client            *Client            `gorm:"foreignKey:ClientID"`
	Room              *Room              `gorm:"foreignKey:RoomID"`
	ReservationStatus *ReservationStatus `gorm:"foreignKey:ReservationStatusID"`
}

// Nights returns the stay length in whole days.
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}
