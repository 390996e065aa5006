package models

// StoredLine is one order position as read from the persistence layer. The
// product name is denormalized through a join; the price keeps the column's
// raw scale.
type StoredLine struct {
	ProductID string `gorm:"column:product_id"`
	Name      string `gorm:"column:name"`
	Price     string `gorm:"column:price"`
	Qty       int    `gorm:"column:qty"`
}

// StoredOrder is the order head row plus its positions as read from the
// persistence layer.
type StoredOrder struct {
	OrderID         string
	CustomerID      string
	Status          string
	DeliveryAddress string
	Products        []StoredLine
}
