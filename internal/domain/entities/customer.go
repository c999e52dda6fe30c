package entities

// Customer is the payer identity registered at the payment gateway.
//
// The gateway assigns ID; every other field is forwarded as-is from the
// checkout form. No local copy is persisted, the gateway owns the record.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	CpfCnpj       string `json:"cpfCnpj"`
	Phone         string `json:"phone,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	AddressNumber string `json:"addressNumber,omitempty"`
}
