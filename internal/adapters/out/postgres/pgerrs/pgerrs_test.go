package pgerrs_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/adapters/out/postgres/pgerrs"
	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, pgerrs.Wrap("orders/o1", nil))
	})

	t.Run("unique violation is a conflict", func(t *testing.T) {
		cause := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", Detail: "Key (id)=(m1) already exists."})

		err := pgerrs.Wrap("menus/m1", cause)

		appErr, ok := errs.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errs.CodeStorageClash, appErr.Code)
		assert.Equal(t, 409, appErr.Status)
		assert.Contains(t, appErr.Message, "menus/m1")
		assert.Equal(t, "Key (id)=(m1) already exists.", appErr.Hint)
	})

	t.Run("translated duplicate key is a conflict", func(t *testing.T) {
		assert.True(t, errs.HasCode(pgerrs.Wrap("stores/s1", gorm.ErrDuplicatedKey), errs.CodeStorageClash))
	})

	t.Run("other failures are storage errors", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "57014", Message: "canceling statement"}

		err := pgerrs.Wrap("orders/o1", cause)

		appErr, ok := errs.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errs.CodeStorage, appErr.Code)
		assert.Equal(t, 500, appErr.Status)
		require.ErrorIs(t, err, cause)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, pgerrs.IsNotFound(fmt.Errorf("first: %w", gorm.ErrRecordNotFound)))
	assert.False(t, pgerrs.IsNotFound(errors.New("boom")))
}
