package response

import "associacao_pro/internal/domain/entities"

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	CpfCnpj string `json:"cpfCnpj"`
	Phone   string `json:"phone,omitempty"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		CpfCnpj: c.CpfCnpj,
		Phone:   c.Phone,
	}
}
