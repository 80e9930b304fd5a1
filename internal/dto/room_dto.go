package dto

import "github.com/shopspring/decimal"

type CreateRoomRequest struct {
	RoomNumber    string          `json:"room_number"    validate:"required,min=1,max=30"`
	PricePerNight decimal.Decimal `json:"price_per_night" validate:"required,gt=0"`
	Capacity      int             `json:"capacity"       validate:"required,gt=0"`
	RoomTypeID    string          `json:"room_type_id"   validate:"required,uuid"`
	RoomStatusID  string          `json:"room_status_id" validate:"required,uuid"`
}

type UpdateRoomRequest struct {
	RoomNumber    *string          `json:"room_number"    validate:"omitempty,min=1,max=30"`
	PricePerNight *decimal.Decimal `json:"price_per_night" validate:"omitempty,gt=0"`
	Capacity      *int             `json:"capacity"       validate:"omitempty,gt=0"`
	RoomTypeID    *string          `json:"room_type_id"   validate:"omitempty,uuid"`
	RoomStatusID  *string          `json:"room_status_id" validate:"omitempty,uuid"`
}

type RoomResponse struct {
	ID            string          `json:"id"`
	RoomNumber    string          `json:"room_number"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Capacity      int             `json:"capacity"`
	RoomTypeID    string          `json:"room_type_id"`
	RoomStatusID  string          `json:"room_status_id"`
	Active        bool            `json:"active"`
}

// PageFilter is shared offset/limit pagination for list endpoints.
type PageFilter struct {
	Page  int `form:"page,default=1"  validate:"omitempty,gte=1"`
	Limit int `form:"limit,default=10" validate:"omitempty,gte=1,lte=100"`
}
