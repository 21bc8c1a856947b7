package money_test

import (
	"math"
	"strings"
	"testing"

	"marketplace/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	t.Run("krw_has_no_fraction_and_groups_thousands", func(t *testing.T) {
		formatted := money.FormatCurrency(21000, "KRW")

		assert.True(t, strings.HasPrefix(formatted, "₩"), formatted)
		assert.True(t, strings.HasSuffix(formatted, "21,000"), formatted)
	})

	t.Run("krw_rounds_fractions", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(money.FormatCurrency(999.6, "krw"), "1,000"))
	})

	t.Run("unknown_code_falls_back_to_suffix", func(t *testing.T) {
		assert.Equal(t, "1,500 ZZZ", money.FormatCurrency(1500, "ZZZ"))
	})
}

func TestSumAndMul(t *testing.T) {
	sum, err := money.Sum(0.1, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, sum, 0)

	product, err := money.Mul(18000, 3)
	require.NoError(t, err)
	assert.InDelta(t, 54000.0, product, 0)

	assert.InDelta(t, 1.5, money.Round(1.45, 1), 0)
}

func TestSumAndMul_OutOfRange(t *testing.T) {
	t.Run("product overflowing float64", func(t *testing.T) {
		_, err := money.Mul(1e308, 2)

		require.ErrorIs(t, err, money.ErrOutOfRange)
	})

	t.Run("sum overflowing float64", func(t *testing.T) {
		_, err := money.Sum(math.MaxFloat64, math.MaxFloat64)

		require.ErrorIs(t, err, money.ErrOutOfRange)
	})

	t.Run("non-finite input", func(t *testing.T) {
		_, err := money.Sum(20000, math.Inf(1))
		require.ErrorIs(t, err, money.ErrOutOfRange)

		_, err = money.Mul(math.NaN(), 1)
		require.ErrorIs(t, err, money.ErrOutOfRange)
	})

	t.Run("round leaves non-finite amounts alone", func(t *testing.T) {
		assert.True(t, math.IsInf(money.Round(math.Inf(1), 0), 1))
	})
}
