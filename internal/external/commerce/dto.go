package commerce

import "StorefrontPayments/internal/domain/checkout"

type basketDTO struct {
	ID                 string                 `json:"id"`
	CurrencyCode       string                 `json:"currency_code"`
	OrderTotal         float64                `json:"order_total"`
	ProductTotal       float64                `json:"product_total"`
	CustomerID         string                 `json:"customer_id"`
	PaymentInstruments []paymentInstrumentDTO `json:"payment_instruments"`
	CustomAttributes   map[string]string      `json:"custom_attributes"`
}

type paymentInstrumentDTO struct {
	ID              string  `json:"id,omitempty"`
	Amount          float64 `json:"amount"`
	PaymentMethodID string  `json:"payment_method_id"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	PSPReference    string  `json:"psp_reference,omitempty"`
}

func (d basketDTO) toBasket() checkout.Basket {
	instruments := make([]checkout.PaymentInstrument, 0, len(d.PaymentInstruments))
	for _, pi := range d.PaymentInstruments {
		instruments = append(instruments, checkout.PaymentInstrument{
			ID:              pi.ID,
			Amount:          pi.Amount,
			PaymentMethodID: pi.PaymentMethodID,
		})
	}
	return checkout.Basket{
		ID:                 d.ID,
		CurrencyCode:       d.CurrencyCode,
		OrderTotal:         d.OrderTotal,
		ProductTotal:       d.ProductTotal,
		CustomerID:         d.CustomerID,
		PaymentInstruments: instruments,
		Custom:             d.CustomAttributes,
	}
}

type customerDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (d customerDTO) toCustomer() checkout.Customer {
	return checkout.Customer{
		ID:        d.ID,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
	}
}

type orderDTO struct {
	OrderNo       string  `json:"order_no"`
	BasketID      string  `json:"basket_id"`
	Total         float64 `json:"total"`
	CurrencyCode  string  `json:"currency_code"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
}

func (d orderDTO) toOrder() checkout.Order {
	return checkout.Order{
		OrderNo:       d.OrderNo,
		BasketID:      d.BasketID,
		Total:         d.Total,
		CurrencyCode:  d.CurrencyCode,
		Status:        d.Status,
		PaymentStatus: d.PaymentStatus,
	}
}
