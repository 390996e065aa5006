package models

// StoredProduct is the product as read directly from the persistence layer.
// Decimals keep whatever scale the column carries, timestamps keep the
// database's native offset-aware text form; normalization happens only at
// comparison time, canonical values are never persisted.
type StoredProduct struct {
	ID             string `gorm:"column:id"`
	Name           string `gorm:"column:name"`
	Article        string `gorm:"column:article"`
	Dictionary     string `gorm:"column:dictionary"`
	Category       string `gorm:"column:category"`
	Price          string `gorm:"column:price"`
	Qty            string `gorm:"column:qty"`
	InsertedAt     string `gorm:"column:inserted_at"`
	LastQtyChanged string `gorm:"column:last_qty_changed"`
	IsAvailable    string `gorm:"column:is_available"`
}
