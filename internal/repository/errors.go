package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Index names shared with the gorm model tags.
const (
	idxDriversUniqueID   = "idx_drivers_unique_id"
	idxMerchantsUniqueID = "idx_merchants_unique_id"
)

// classifyConflict maps a unique violation to ErrUniqueIDTaken when the
// violated index is uniqueIDIndex and to ErrDuplicate otherwise. ok is false
// for any other error.
func classifyConflict(err error, uniqueIDIndex string) (conflict error, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil, false
	}
	if uniqueIDIndex != "" && pgErr.ConstraintName == uniqueIDIndex {
		return ErrUniqueIDTaken, true
	}
	return ErrDuplicate, true
}
