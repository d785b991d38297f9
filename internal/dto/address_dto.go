package dto

type CreateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,max=255"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	Province   *string `json:"province" validate:"omitempty,max=100"`
	Country    string  `json:"country" validate:"required,min=1,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,min=1,max=10"`
}

// UpdateAddressRequest applies only the fields present in the body.
type UpdateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,max=255"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	Province   *string `json:"province" validate:"omitempty,max=100"`
	Country    *string `json:"country" validate:"omitempty,min=1,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitempty,min=1,max=10"`
}

type AddressResponse struct {
	ID         uint    `json:"id"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}
