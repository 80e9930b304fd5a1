package dto

import "github.com/shopspring/decimal"

type CreateReservationRequest struct {
	ClientID            string `json:"client_id"             validate:"required,uuid"`
	RoomID              string `json:"room_id"               validate:"required,uuid"`
	ReservationStatusID string `json:"reservation_status_id" validate:"required,uuid"`
	CheckInDate         string `json:"check_in_date"         validate:"required,datetime=2006-01-02"`
	CheckOutDate        string `json:"check_out_date"        validate:"required,datetime=2006-01-02"`
	Note                string `json:"note"                  validate:"max=255"`
}

// UpdateReservationRequest is a partial patch; when the room or either
// date changes the total is recomputed from the merged values.
type UpdateReservationRequest struct {
	ClientID            *string `json:"client_id"             validate:"omitempty,uuid"`
	RoomID              *string `json:"room_id"               validate:"omitempty,uuid"`
	ReservationStatusID *string `json:"reservation_status_id" validate:"omitempty,uuid"`
	CheckInDate         *string `json:"check_in_date"         validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate        *string `json:"check_out_date"        validate:"omitempty,datetime=2006-01-02"`
	Note                *string `json:"note"                  validate:"omitempty,max=255"`
}

type ReservationResponse struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	ClientID            string          `json:"client_id"`
	RoomID              string          `json:"room_id"`
	ReservationStatusID string          `json:"reservation_status_id"`
	CheckInDate         string          `json:"check_in_date"`
	CheckOutDate        string          `json:"check_out_date"`
	Nights              int             `json:"nights"`
	Note                string          `json:"note"`
	Total               decimal.Decimal `json:"total"`
}

type ReservationListResponse struct {
	Items []ReservationResponse `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
