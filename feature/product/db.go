package product

import (
	"context"
	"fmt"

	"commerce-verifier/feature/product/models"

	"gorm.io/gorm"
)

// selectProductSQL reads the full stored shape of one product. Numerics are
// cast to text so the column's own scale survives the round trip, and
// timestamps are rendered in the database's offset-aware form; both are
// normalized by the reconciliation core, not here. The id is always bound
// as a parameter.
const selectProductSQL = `SELECT
	id, name, article, dictionary, category,
	price::text AS price,
	qty::text AS qty,
	to_char(inserted_at, 'YYYY-MM-DD HH24:MI:SS.MS TZHTZM') AS inserted_at,
	to_char(last_qty_changed, 'YYYY-MM-DD HH24:MI:SS.MS TZHTZM') AS last_qty_changed,
	is_available::text AS is_available
FROM product WHERE id = ?`

const selectProductIDsSQL = `SELECT id FROM product`

const deleteProductSQL = `DELETE FROM product WHERE id = ?`

// Store is the storage-layer fetcher for products.
type Store struct {
	db *gorm.DB
}

// NewStore creates a product storage fetcher over the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get fetches the stored shape of a product. Absence is meaningful and is
// returned as (nil, nil), distinct from a partially populated record;
// callers use it to assert deletion.
func (s *Store) Get(ctx context.Context, id string) (*models.StoredProduct, error) {
	var rows []models.StoredProduct
	if err := s.db.WithContext(ctx).Raw(selectProductSQL, id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query product %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// ListIDs returns the ids of every product currently persisted.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := s.db.WithContext(ctx).Raw(selectProductIDsSQL).Scan(&ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}
	return ids, nil
}

// Delete removes a product row. Used by scenario teardown.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Exec(deleteProductSQL, id).Error; err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
