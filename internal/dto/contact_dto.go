package dto

type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Phone     string  `json:"phone" validate:"required,min=1,max=20"`
}

// UpdateContactRequest applies only the fields present in the body;
// absent fields keep their stored values.
type UpdateContactRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// SearchContactRequest filters are each optional; empty strings mean the
// filter is not applied.
type SearchContactRequest struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Page  int    `json:"page" validate:"required,min=1"`
	Size  int    `json:"size" validate:"required,min=1,max=100"`
}

type ContactResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
}
