package dto

// Shared DTOs for the reference tables (room types, room statuses,
// reservation statuses, user types).

type CreateLookupRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=30"`
	Description string `json:"description" validate:"max=100"`
}

type UpdateLookupRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=30"`
	Description *string `json:"description" validate:"omitempty,max=100"`
}

type LookupResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
