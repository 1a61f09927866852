package dto

// CustomerRequest is the payload for creating or updating a customer.
type CustomerRequest struct {
	Name    string `json:"nama" binding:"required"`
	Phone   string `json:"telepon"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"alamat"`
}
