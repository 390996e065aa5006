package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column as reported by information_schema.
type ColumnInfo struct {
	Field string `gorm:"column:column_name"`
	Type  string `gorm:"column:data_type"`
}

// requiredTables lists the commerce tables the storage fetchers rely on.
// The order table is reserved-word quoted in queries but plain here.
var requiredTables = []string{"product", "order", "ordered_product", "customer"}

// GetTableColumns retrieves the column definitions for a given table from
// information_schema. The table name is bound as a parameter, never
// interpolated.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	err := db.Raw(
		"SELECT column_name, data_type FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = ? ORDER BY ordinal_position",
		tableName,
	).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

// VerifySchema checks that every table the verification scenarios touch
// exists. It is a preflight: a missing table is reported before any scenario
// runs, instead of surfacing as a confusing fetch error mid-run.
func VerifySchema(db *gorm.DB) error {
	var missing []string
	for _, table := range requiredTables {
		columns, err := GetTableColumns(db, table)
		if err != nil {
			return err
		}
		if len(columns) == 0 {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required tables: %s", strings.Join(missing, ", "))
	}
	return nil
}
