package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Room struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomNumber    string          `gorm:"uniqueIndex;not null"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Capacity      int             `gorm:"not null;default:1"`
	RoomTypeID    uuid.UUID       `gorm:"type:uuid;not null"`
	RoomStatusID  uuid.UUID       `gorm:"type:uuid;not null"`
	Active        bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	RoomType   *RoomType   `gorm:"foreignKey:RoomTypeID"`
	RoomStatus *RoomStatus `gorm:"foreignKey:RoomStatusID"`
}
