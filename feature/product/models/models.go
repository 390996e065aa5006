package models

// Presented shapes: the product as it travels through the commerce API.
// Decimals arrive as scale-normalized strings, timestamps in the API's
// zone-less pattern.

// CreateRequest is the body of a product creation call.
type CreateRequest struct {
	Name       string `json:"name"`
	Article    string `json:"article"`
	Category   string `json:"category"`
	Dictionary string `json:"dictionary"`
	Price      string `json:"price"`
	Qty        int    `json:"qty"`
}

// UpdateRequest is the body of a product update call. The product is
// addressed by its id in the body.
type UpdateRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Article    string `json:"article"`
	Dictionary string `json:"dictionary"`
	Category   string `json:"category"`
	Price      string `json:"price"`
	Qty        int    `json:"qty"`
}

// Product is the presented shape returned by create, read, and update
// calls. The dictionary field is intentionally absent from create and read
// responses (a documented asymmetry of the API, never compared); update
// responses do echo it.
type Product struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Article        string `json:"article"`
	Category       string `json:"category"`
	Dictionary     string `json:"dictionary,omitempty"`
	Price          string `json:"price"`
	Qty            string `json:"qty"`
	InsertedAt     string `json:"insertedAt"`
	LastQtyChanged string `json:"last_qty_changed"`
	Currency       string `json:"currency,omitempty"`
}
