// Package pgerrs turns PostgreSQL driver failures into API errors at the
// repository boundary.
package pgerrs

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Wrap converts err, raised while accessing path ("orders/abc"), into a
// storage AppError. Unique violations become storage/conflict. Nil stays nil.
func Wrap(path string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewAppError(errs.CodeStorageClash,
			fmt.Sprintf("document already exists (%s)", path), pgErr.Detail).WithCause(err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewAppError(errs.CodeStorageClash,
			fmt.Sprintf("document already exists (%s)", path), "").WithCause(err)
	}

	return errs.NewStorageError(path, err)
}

// IsNotFound reports whether err is gorm's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
