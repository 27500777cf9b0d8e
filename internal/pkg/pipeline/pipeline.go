/*
pipeline.go Single-shot evaluation of the NZEB model: generation, balance,
storage, financials, impact, optional outage scenario and the regression
diagnostic. Every step is a pure computation; Run either returns a complete
Result or the first error, never partial output.
*/

package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ohowland/nzeb_core/internal/pkg/analysis/impact"
	"github.com/ohowland/nzeb_core/internal/pkg/analysis/lcca"
	"github.com/ohowland/nzeb_core/internal/pkg/analysis/regression"
	"github.com/ohowland/nzeb_core/internal/pkg/source/biogas"
	"github.com/ohowland/nzeb_core/internal/pkg/source/solar"
	"github.com/ohowland/nzeb_core/internal/pkg/source/wind"
	"github.com/ohowland/nzeb_core/internal/pkg/storage/battery"
)

// Scenario selects an alternate evaluation mode.
type Scenario string

// GridOutage re-derives the balance with grid import forced to zero.
const GridOutage Scenario = "grid_outage"

// Request is the structured input for one evaluation. Battery state is a
// fresh snapshot per request; nothing carries over between calls.
type Request struct {
	Solar          solar.Inputs
	Wind           wind.Inputs
	Biogas         biogas.Inputs
	LoadDemandKWH  float64
	GridEnergyKWH  float64
	Battery        battery.State
	Costs          lcca.Inputs
	EmissionFactor float64
	Scenario       Scenario
	Regression     regression.Sample // zero value selects the built-in sample
}

// Generation holds the per-source outputs and their sum.
type Generation struct {
	SolarKWH  float64
	WindKWH   float64
	BiogasKWH float64
	TotalKWH  float64
}

// Aggregate sums the source outputs. A straight sum is the contract: no
// weighting, no capacity limits.
func Aggregate(solarKWH, windKWH, biogasKWH float64) Generation {
	return Generation{
		SolarKWH:  solarKWH,
		WindKWH:   windKWH,
		BiogasKWH: biogasKWH,
		TotalKWH:  solarKWH + windKWH + biogasKWH,
	}
}

// Balance returns the signed surplus (positive) or deficit (negative):
// E_excess = E_total + E_grid - E_load. No clamping; the battery step owns
// the bounds.
func Balance(totalKWH, gridKWH, loadKWH float64) float64 {
	return totalKWH + gridKWH - loadKWH
}

// Outage reports the grid-outage scenario evaluation.
type Outage struct {
	ExcessKWH     float64
	UptimePercent float64
}

// EvaluateOutage recomputes the balance with zero grid import and derives an
// uptime ratio. Zero load is a defined edge: there is no demand to fail to
// meet, so uptime is 100.
func EvaluateOutage(totalKWH, loadKWH float64) Outage {
	uptime := 100.0
	if loadKWH > 0 {
		uptime = totalKWH / loadKWH * 100
		if uptime > 100 {
			uptime = 100
		}
	}
	return Outage{
		ExcessKWH:     Balance(totalKWH, 0, loadKWH),
		UptimePercent: uptime,
	}
}

// Result is the complete evaluation output.
type Result struct {
	RunID          uuid.UUID
	Generation     Generation
	BalanceKWH     float64
	Battery        battery.Result
	LCC            float64
	LCOE           float64
	CO2ReductionKG float64
	Outage         *Outage
	Regression     regression.Analysis
}

// Run evaluates one request. The sources run independently, the aggregate
// feeds the balance, the balance feeds the battery, and the analyses run off
// the generation total. Domain errors from the battery or financial steps
// halt the run.
func Run(req Request) (Result, error) {
	runID, err := uuid.NewUUID()
	if err != nil {
		return Result{}, err
	}

	gen := Aggregate(req.Solar.Energy(), req.Wind.Energy(), req.Biogas.Energy())
	bal := Balance(gen.TotalKWH, req.GridEnergyKWH, req.LoadDemandKWH)

	batt, err := battery.Apply(req.Battery, bal)
	if err != nil {
		return Result{}, fmt.Errorf("battery step: %w", err)
	}

	lcoe, err := req.Costs.LCOE(gen.TotalKWH)
	if err != nil {
		return Result{}, fmt.Errorf("financial step: %w", err)
	}

	offset := impact.Offset(gen.TotalKWH, req.LoadDemandKWH)

	res := Result{
		RunID:          runID,
		Generation:     gen,
		BalanceKWH:     bal,
		Battery:        batt,
		LCC:            req.Costs.LCC(),
		LCOE:           lcoe,
		CO2ReductionKG: impact.CO2Reduction(offset, req.EmissionFactor),
	}

	if req.Scenario == GridOutage {
		outage := EvaluateOutage(gen.TotalKWH, req.LoadDemandKWH)
		res.Outage = &outage
	}

	sample := req.Regression
	if len(sample.Irradiance) == 0 {
		sample = regression.ReferenceSample()
	}
	res.Regression = regression.Evaluate(sample)

	return res, nil
}

// IsDomainErr reports whether err is one of the model's defined domain
// errors, as opposed to an unexpected internal failure.
func IsDomainErr(err error) bool {
	return errors.Is(err, battery.ErrInvalidCapacity) || errors.Is(err, lcca.ErrZeroDiscountedEnergy)
}
