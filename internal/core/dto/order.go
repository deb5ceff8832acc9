package dto

import "github.com/rafaelleal24/fastfood-express/internal/core/domain"

// SubmitOrderRequest carries the checkout form. Contact fields are
// validated by the order composer, not by request binding.
type SubmitOrderRequest struct {
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	Note         string `json:"note"`
}

func (r *SubmitOrderRequest) ToDomain() domain.OrderRequest {
	return domain.OrderRequest{
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
		Note:         r.Note,
	}
}
