package domain

// Customer is a client of the business (pelanggan).
type Customer struct {
	CustomerID string `json:"id"`
	Name       string `json:"nama"`
	Phone      string `json:"telepon,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"alamat,omitempty"`
}
