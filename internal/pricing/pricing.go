package pricing

import (
	"errors"
	"math"

	"go-catalog-api/internal/model"
)

// Granularity is the rounding step for installments under the default policy.
// Rumus Excel asli: ROUND(((1 + bunga) * UP) / bulan; -3) alias kelipatan 1000.
const Granularity = 1000

// Policy selects how a raw monthly installment is rounded.
type Policy int

const (
	// PolicyNearestThousand rounds to the nearest multiple of Granularity (default).
	PolicyNearestThousand Policy = iota
	// PolicyCeil rounds up to the nearest whole rupiah (alternate mode).
	PolicyCeil
)

// ErrNegativeCost is returned when the cost price is below zero.
var ErrNegativeCost = errors.New("hpp must not be negative")

// Quote is the computed selling price plus the fixed monthly installments
// per tenor. Installments are already rounded per policy, PriceUp is exact.
type Quote struct {
	PriceUp       float64 `json:"price_up_60"`
	Installment3  int64   `json:"installment_3"`
	Installment6  int64   `json:"installment_6"`
	Installment9  int64   `json:"installment_9"`
	Installment12 int64   `json:"installment_12"`
}

// Compute derives the quote for a cost price under the default rounding policy.
// Pure and deterministic: no side effects, same input selalu sama hasil.
func Compute(hpp float64, s model.GlobalSettings) (Quote, error) {
	return ComputeWithPolicy(hpp, s, PolicyNearestThousand)
}

// ComputeWithPolicy is Compute with an explicit rounding policy.
func ComputeWithPolicy(hpp float64, s model.GlobalSettings, p Policy) (Quote, error) {
	if hpp < 0 {
		return Quote{}, ErrNegativeCost
	}

	priceUp := hpp * (1 + s.MarginUpPercent/100)

	return Quote{
		PriceUp:       priceUp,
		Installment3:  installment(priceUp, s.Interest3Month, 3, p),
		Installment6:  installment(priceUp, s.Interest6Month, 6, p),
		Installment9:  installment(priceUp, s.Interest9Month, 9, p),
		Installment12: installment(priceUp, s.Interest12Month, 12, p),
	}, nil
}

// installment menghitung cicilan bulanan: UP plus bunga tenor, dibagi bulan,
// lalu dibulatkan sesuai policy.
func installment(priceUp, interestPercent float64, months int, p Policy) int64 {
	raw := priceUp * (1 + interestPercent/100) / float64(months)
	return roundAmount(raw, p)
}

func roundAmount(raw float64, p Policy) int64 {
	switch p {
	case PolicyCeil:
		return int64(math.Ceil(raw))
	default:
		return int64(math.Round(raw/Granularity)) * Granularity
	}
}

// RoundToGranularity exposes the default rounding step on its own, so the
// idempotence of the rounding can be verified independently of the formula.
func RoundToGranularity(v float64) int64 {
	return roundAmount(v, PolicyNearestThousand)
}
