package request

// CustomerCreateRequest is the payer profile submitted by the checkout.
//
// Only presence of the required identity fields is validated locally; the
// gateway has the final word on the rest.
type CustomerCreateRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	CpfCnpj       string `json:"cpfCnpj" binding:"required"`
	Phone         string `json:"phone"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
}
