package dto

type CreateClientRequest struct {
	FirstName            string `json:"first_name"            validate:"required,min=1,max=30"`
	LastName             string `json:"last_name"             validate:"required,min=1,max=30"`
	Phone                string `json:"phone"                 validate:"required,min=5,max=20"`
	Email                string `json:"email"                 validate:"required,email,max=100"`
	NumberIdentification string `json:"number_identification" validate:"required,min=3,max=30"`
}

type UpdateClientRequest struct {
	FirstName            *string `json:"first_name"            validate:"omitempty,min=1,max=30"`
	LastName             *string `json:"last_name"             validate:"omitempty,min=1,max=30"`
	Phone                *string `json:"phone"                 validate:"omitempty,min=5,max=20"`
	Email                *string `json:"email"                 validate:"omitempty,email,max=100"`
	NumberIdentification *string `json:"number_identification" validate:"omitempty,min=3,max=30"`
}

type ClientResponse struct {
	ID                   string `json:"id"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
	NumberIdentification string `json:"number_identification"`
	Active               bool   `json:"active"`
}
