package pricing

import (
	"math"
	"testing"

	"go-catalog-api/internal/model"
)

var testSettings = model.GlobalSettings{
	MarginUpPercent: 60,
	Interest3Month:  10,
	Interest6Month:  28,
	Interest9Month:  35,
	Interest12Month: 42,
}

func TestComputeWorkedExample(t *testing.T) {
	// HPP 2.220.000 dengan margin 60% -> UP 3.552.000
	q, err := Compute(2220000, testSettings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(q.PriceUp-3552000) > 1e-6 {
		t.Fatalf("expected price up 3552000, got %v", q.PriceUp)
	}
	// ROUND(3552000 * 1.10 / 3; -3) = ROUND(1302400; -3)
	if q.Installment3 != 1302000 {
		t.Fatalf("expected installment_3 1302000, got %d", q.Installment3)
	}
	if q.Installment6 != 758000 {
		t.Fatalf("expected installment_6 758000, got %d", q.Installment6)
	}
	if q.Installment9 != 533000 {
		t.Fatalf("expected installment_9 533000, got %d", q.Installment9)
	}
	if q.Installment12 != 420000 {
		t.Fatalf("expected installment_12 420000, got %d", q.Installment12)
	}
}

func TestComputePriceUpExact(t *testing.T) {
	for _, hpp := range []float64{0, 1, 999, 150000, 2220000, 99999999} {
		q, err := Compute(hpp, testSettings)
		if err != nil {
			t.Fatalf("hpp %v: unexpected error: %v", hpp, err)
		}
		want := hpp * (1 + testSettings.MarginUpPercent/100)
		if math.Abs(q.PriceUp-want) > 1e-6 {
			t.Fatalf("hpp %v: expected price up %v, got %v", hpp, want, q.PriceUp)
		}
	}
}

func TestComputeZeroCost(t *testing.T) {
	q, err := Compute(0, testSettings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PriceUp != 0 || q.Installment3 != 0 || q.Installment6 != 0 || q.Installment9 != 0 || q.Installment12 != 0 {
		t.Fatalf("expected all-zero quote for hpp=0, got %+v", q)
	}
}

func TestComputeNegativeCost(t *testing.T) {
	if _, err := Compute(-1, testSettings); err != ErrNegativeCost {
		t.Fatalf("expected ErrNegativeCost, got %v", err)
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, _ := Compute(1234567, testSettings)
	b, _ := Compute(1234567, testSettings)
	if a != b {
		t.Fatalf("compute is not deterministic: %+v vs %+v", a, b)
	}
}

func TestRoundToGranularityIdempotent(t *testing.T) {
	for _, v := range []float64{0, 499, 500, 1302400, 757760, 999999} {
		once := RoundToGranularity(v)
		twice := RoundToGranularity(float64(once))
		if once != twice {
			t.Fatalf("rounding not idempotent for %v: %d vs %d", v, once, twice)
		}
		if once%Granularity != 0 {
			t.Fatalf("rounded value %d is not a multiple of %d", once, Granularity)
		}
	}
}

func TestComputeCeilPolicy(t *testing.T) {
	// Nilai dipilih supaya aritmetika float tetap eksak.
	s := model.GlobalSettings{MarginUpPercent: 0, Interest3Month: 0, Interest6Month: 0, Interest9Month: 0, Interest12Month: 0}

	q, err := ComputeWithPolicy(100, s, PolicyCeil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 100/3 = 33.33... -> 34
	if q.Installment3 != 34 {
		t.Fatalf("expected ceil installment_3 34, got %d", q.Installment3)
	}
	// 100/6 = 16.66... -> 17
	if q.Installment6 != 17 {
		t.Fatalf("expected ceil installment_6 17, got %d", q.Installment6)
	}

	q, err = ComputeWithPolicy(300, s, PolicyCeil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Pembagian pas tidak boleh naik.
	if q.Installment3 != 100 {
		t.Fatalf("expected exact installment_3 100, got %d", q.Installment3)
	}
}
