package dto

// ContactRequest payload for the public contact form.
type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message string  `json:"message"`
	Service *string `json:"service,omitempty"`
}

// AckResponse is a plain message acknowledgement.
type AckResponse struct {
	Message string `json:"message"`
}
