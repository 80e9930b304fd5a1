package dto

type CreateUserRequest struct {
	Username   string `json:"username"     validate:"required,min=1,max=30"`
	Email      string `json:"email"        validate:"required,email,max=100"`
	Password   string `json:"password"     validate:"required,min=6,max=100"`
	UserTypeID string `json:"user_type_id" validate:"required,uuid"`
}

// UpdateUserRequest is a partial patch: only non-nil fields are applied.
type UpdateUserRequest struct {
	Username   *string `json:"username"     validate:"omitempty,min=1,max=30"`
	Email      *string `json:"email"        validate:"omitempty,email,max=100"`
	Password   *string `json:"password"     validate:"omitempty,min=6,max=100"`
	UserTypeID *string `json:"user_type_id" validate:"omitempty,uuid"`
}

// UpdateStatusRequest flips the active flag on users, clients and rooms.
// Active is a pointer so that `{"active": false}` is distinguishable from
// an absent field.
type UpdateStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	UserTypeID string `json:"user_type_id"`
	UserType   string `json:"user_type,omitempty"`
	Active     bool   `json:"active"`
}
