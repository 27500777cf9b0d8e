// Package lcca computes life cycle cost and levelized cost of energy.
package lcca

import (
	"errors"
	"math"
)

// ErrZeroDiscountedEnergy reports an LCOE denominator of zero; the ratio is
// mathematically undefined and must not leak Inf or NaN into a result.
var ErrZeroDiscountedEnergy = errors.New("lcca: discounted energy total is zero")

// Inputs holds the cost parameters for a lifetime analysis.
type Inputs struct {
	CapitalCost  float64 // C_init
	AnnualOM     float64 // C_O&M per year
	Replacement  float64 // C_rep
	Salvage      float64 // S
	DiscountRate float64 // r, in [0,1)
	Years        int     // n, lifetime in years
}

// LCC returns the life cycle cost:
//
//	LCC = C_init + sum_{y=1..n} (C_O&M + C_rep - S) / (1+r)^y
//
// The replacement and salvage terms are flat per-year figures discounted at
// every year, exactly as documented for the model. A year-indexed schedule
// (replacement only at end of life) is a deliberate non-feature here.
func (in Inputs) LCC() float64 {
	lcc := in.CapitalCost
	annual := in.AnnualOM + in.Replacement - in.Salvage
	for y := 1; y <= in.Years; y++ {
		lcc += annual / math.Pow(1+in.DiscountRate, float64(y))
	}
	return lcc
}

// LCOE returns the levelized cost of energy, treating the single-period
// generation total as the constant annual generation over the lifetime:
//
//	LCOE = LCC / sum_{y=1..n} E_total / (1+r)^y
//
// Returns ErrZeroDiscountedEnergy when the denominator is zero.
func (in Inputs) LCOE(annualGenerationKWH float64) (float64, error) {
	var discounted float64
	for y := 1; y <= in.Years; y++ {
		discounted += annualGenerationKWH / math.Pow(1+in.DiscountRate, float64(y))
	}
	if discounted == 0 {
		return 0, ErrZeroDiscountedEnergy
	}
	return in.LCC() / discounted, nil
}
