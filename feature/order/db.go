package order

import (
	"context"
	"fmt"

	"commerce-verifier/feature/order/models"

	"gorm.io/gorm"
)

// The order table name is a reserved word and stays quoted. Numerics are
// cast to text so the column's own scale survives the round trip; the
// reconciliation core does the normalization. Ids are always bound as
// parameters.
const (
	selectOrderSQL = `SELECT
	id,
	customer_id::text AS customer_id,
	status,
	delivery_address
FROM "order" WHERE id = ?`

	selectOrderLinesSQL = `SELECT
	op.product_id,
	p.name,
	op.price::text AS price,
	op.qty
FROM ordered_product op
JOIN product p ON p.id = op.product_id
WHERE op.order_id = ?`

	insertCustomerSQL = `INSERT INTO customer (login, email) VALUES (?, ?) RETURNING id::text`

	deleteCustomerSQL = `DELETE FROM customer WHERE id = ?::int`

	deleteOrderLinesSQL = `DELETE FROM ordered_product WHERE order_id = ?`

	deleteOrderSQL = `DELETE FROM "order" WHERE id = ?`

	selectProductQtySQL = `SELECT qty::text FROM product WHERE id = ?`
)

type orderHead struct {
	ID              string `gorm:"column:id"`
	CustomerID      string `gorm:"column:customer_id"`
	Status          string `gorm:"column:status"`
	DeliveryAddress string `gorm:"column:delivery_address"`
}

// Store is the storage-layer fetcher for orders. It also owns the customer
// rows the scenarios need, since the commerce API has no customer endpoint.
type Store struct {
	db *gorm.DB
}

// NewStore creates an order storage fetcher over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get fetches the stored shape of an order: the head row plus its positions
// with the product name joined in. Absence of the head row is meaningful
// and is returned as (nil, nil).
func (s *Store) Get(ctx context.Context, id string) (*models.StoredOrder, error) {
	var heads []orderHead
	if err := s.db.WithContext(ctx).Raw(selectOrderSQL, id).Scan(&heads).Error; err != nil {
		return nil, fmt.Errorf("failed to query order %s: %w", id, err)
	}
	if len(heads) == 0 {
		return nil, nil
	}

	var lines []models.StoredLine
	if err := s.db.WithContext(ctx).Raw(selectOrderLinesSQL, id).Scan(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to query order %s lines: %w", id, err)
	}

	head := heads[0]
	return &models.StoredOrder{
		OrderID:         head.ID,
		CustomerID:      head.CustomerID,
		Status:          head.Status,
		DeliveryAddress: head.DeliveryAddress,
		Products:        lines,
	}, nil
}

// CreateCustomer inserts a scenario customer and returns its id as text.
func (s *Store) CreateCustomer(ctx context.Context, login, email string) (string, error) {
	var ids []string
	if err := s.db.WithContext(ctx).Raw(insertCustomerSQL, login, email).Scan(&ids).Error; err != nil {
		return "", fmt.Errorf("failed to create customer %s: %w", login, err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("customer insert for %s returned no id", login)
	}
	return ids[0], nil
}

// ProductQty fetches a product's stored stock level at its raw scale.
// Ordering a product must move this value.
func (s *Store) ProductQty(ctx context.Context, id string) (string, error) {
	var qtys []string
	if err := s.db.WithContext(ctx).Raw(selectProductQtySQL, id).Scan(&qtys).Error; err != nil {
		return "", fmt.Errorf("failed to query product %s qty: %w", id, err)
	}
	if len(qtys) == 0 {
		return "", fmt.Errorf("product %s not found", id)
	}
	return qtys[0], nil
}

// DeleteCustomer removes a scenario customer. Used by teardown.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Exec(deleteCustomerSQL, id).Error; err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}
	return nil
}

// Delete removes an order and its positions. Used by teardown, since the
// commerce API exposes no order deletion.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Exec(deleteOrderLinesSQL, id).Error; err != nil {
		return fmt.Errorf("failed to delete order %s lines: %w", id, err)
	}
	if err := s.db.WithContext(ctx).Exec(deleteOrderSQL, id).Error; err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}
