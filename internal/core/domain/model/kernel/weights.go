package kernel

import "math"

// RuntimeWeights are the coefficients of the menu score
//
//	score = rating*Rating - price*Price - baseFee*Fee
//
// They are read from the runtime settings document and may be overridden per
// orchestration request.
type RuntimeWeights struct {
	Price  float64
	Rating float64
	Fee    float64
}

// DefaultRuntimeWeights are used when no runtime settings document exists.
func DefaultRuntimeWeights() RuntimeWeights {
	return RuntimeWeights{Price: 0.3, Rating: 0.5, Fee: 0.2}
}

// WeightsOverride holds optional per-request replacements for RuntimeWeights.
// A nil or non-finite field keeps the stored value.
type WeightsOverride struct {
	Price  *float64
	Rating *float64
	Fee    *float64
}

// Apply returns w with every finite field of override replacing its counterpart.
func (w RuntimeWeights) Apply(override WeightsOverride) RuntimeWeights {
	return RuntimeWeights{
		Price:  pick(override.Price, w.Price),
		Rating: pick(override.Rating, w.Rating),
		Fee:    pick(override.Fee, w.Fee),
	}
}

// Score computes the weighted score of a menu with the given price, rating
// score and store base fee.
func (w RuntimeWeights) Score(price, rating, baseFee float64) float64 {
	return rating*w.Rating - price*w.Price - baseFee*w.Fee
}

// FiniteOrZero replaces NaN and infinities with 0.
func FiniteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func pick(candidate *float64, fallback float64) float64 {
	if candidate == nil || math.IsNaN(*candidate) || math.IsInf(*candidate, 0) {
		return fallback
	}
	return *candidate
}
