package models

// Order lifecycle statuses as persisted by the commerce service.
const (
	StatusCreated   = "CREATED"
	StatusCancelled = "CANCELLED"
)

// LineRequest is one requested order position.
type LineRequest struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// CreateRequest is the body of an order creation call. The customer travels
// in a header, not in the body.
type CreateRequest struct {
	DeliveryAddress string        `json:"deliveryAddress"`
	Products        []LineRequest `json:"products"`
}

// CreateResponse is the create endpoint's answer: the new order id only.
type CreateResponse struct {
	ID string `json:"id"`
}

// PresentedLine is one order position as presented by the read endpoint.
// Price is the line price captured at order time, as a decimal string.
type PresentedLine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
}

// GetResponse is the presented shape of a full order. TotalPrice is the sum
// of the line prices, as a decimal string.
type GetResponse struct {
	OrderID         string          `json:"orderId"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Products        []PresentedLine `json:"products"`
	TotalPrice      string          `json:"totalPrice"`
}

// UpdateRequest is the body of an order update call. It replaces the order's
// positions wholesale.
type UpdateRequest struct {
	Products []LineRequest `json:"products"`
}
