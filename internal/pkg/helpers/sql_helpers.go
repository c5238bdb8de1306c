package helpers

import "database/sql"

// NullFloat64ToPtr converts a sql.NullFloat64 to a float64 pointer.
// A NULL column value becomes nil.
func NullFloat64ToPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// NullInt64OrZero converts a sql.NullInt64 to an int, coercing NULL to 0.
func NullInt64OrZero(i sql.NullInt64) int {
	if !i.Valid {
		return 0
	}
	return int(i.Int64)
}
