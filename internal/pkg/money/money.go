// Package money formats and sums amounts the way customers see them.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var koreanPrinter = message.NewPrinter(language.Korean)

// FormatCurrency renders amount in Korean conventions, e.g. "₩18,000" for
// KRW. The amount is rounded to the currency's standard scale. Unknown
// currency codes fall back to "18,000 XYZ".
func FormatCurrency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", koreanPrinter.Sprint(number.Decimal(amount)), code)
	}

	scale, _ := currency.Standard.Rounding(unit)
	rounded := Round(amount, scale)
	symbol := koreanPrinter.Sprint(currency.NarrowSymbol(unit))

	return symbol + koreanPrinter.Sprint(number.Decimal(rounded, number.Scale(scale)))
}

// ErrOutOfRange reports an amount that is not a finite float64.
var ErrOutOfRange = errors.New("amount is out of range")

// Round rounds amount half away from zero to places decimal places.
// Non-finite amounts are returned unchanged.
func Round(amount float64, places int) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	f, _ := decimal.NewFromFloat(amount).Round(int32(places)).Float64()
	return f
}

// Sum adds amounts exactly and returns the float closest to the exact sum.
// It fails with ErrOutOfRange when an amount or the sum is not finite.
func Sum(amounts ...float64) (float64, error) {
	total := decimal.Zero
	for _, amount := range amounts {
		d, err := fromFloat(amount)
		if err != nil {
			return 0, err
		}
		total = total.Add(d)
	}
	return toFloat(total)
}

// Mul multiplies amount by quantity exactly. It fails with ErrOutOfRange
// when amount or the product is not finite.
func Mul(amount float64, quantity int) (float64, error) {
	d, err := fromFloat(amount)
	if err != nil {
		return 0, err
	}
	return toFloat(d.Mul(decimal.NewFromInt(int64(quantity))))
}

func fromFloat(amount float64) (decimal.Decimal, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrOutOfRange, amount)
	}
	return decimal.NewFromFloat(amount), nil
}

func toFloat(d decimal.Decimal) (float64, error) {
	f, _ := d.Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, d.String())
	}
	return f, nil
}
