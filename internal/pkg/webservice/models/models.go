// Package models defines the wire records for the model endpoint and the
// validation that runs before the pipeline does. Required numeric fields are
// pointers so a missing key is distinguishable from zero; no defaults are
// substituted for them.
package models

import (
	"fmt"

	"github.com/ohowland/nzeb_core/internal/pkg/analysis/lcca"
	"github.com/ohowland/nzeb_core/internal/pkg/pipeline"
	"github.com/ohowland/nzeb_core/internal/pkg/source/biogas"
	"github.com/ohowland/nzeb_core/internal/pkg/source/solar"
	"github.com/ohowland/nzeb_core/internal/pkg/source/wind"
	"github.com/ohowland/nzeb_core/internal/pkg/storage/battery"
)

// Request is the body of POST /model.
type Request struct {
	Solar      *SolarInputs   `json:"solar_inputs"`
	Wind       *WindInputs    `json:"wind_inputs"`
	Biogas     *BiogasInputs  `json:"biogas_inputs"`
	LoadDemand *float64       `json:"load_demand"`
	GridEnergy *float64       `json:"grid_energy"`
	Battery    *BatteryInputs `json:"battery_inputs"`
	Lcca       *LccaInputs    `json:"lcca_inputs"`
	Co2        *Co2Inputs     `json:"co2_inputs"`
	Scenario   string         `json:"scenario,omitempty"`
}

// SolarInputs is the PV parameter group.
type SolarInputs struct {
	AreaPV       *float64 `json:"area_pv"`
	EfficiencyPV *float64 `json:"efficiency_pv"`
	Irradiance   *float64 `json:"irradiance"`
}

// WindInputs is the turbine parameter group.
type WindInputs struct {
	AirDensity       *float64 `json:"air_density"`
	SweptArea        *float64 `json:"swept_area"`
	PowerCoefficient *float64 `json:"power_coefficient"`
	WindSpeed        *float64 `json:"wind_speed"`
	VCutIn           *float64 `json:"v_cut_in"`
	VRated           *float64 `json:"v_rated"`
	VCutOut          *float64 `json:"v_cut_out"`
	PRated           *float64 `json:"p_rated"`
	DeltaT           *float64 `json:"delta_t"`
}

// BiogasInputs is the digester parameter group.
type BiogasInputs struct {
	MethaneYield  *float64 `json:"methane_yield"`
	MassFeedstock *float64 `json:"mass_feedstock"`
	EfficiencyBG  *float64 `json:"efficiency_bg"`
	HHVCH4        *float64 `json:"hhv_ch4"`
}

// BatteryInputs is the storage parameter group. InitialSOC is the one
// optional numeric field; absent, the battery starts at half charge.
type BatteryInputs struct {
	Capacity   *float64 `json:"capacity"`
	InitialSOC *float64 `json:"initial_soc"`
	EtaC       *float64 `json:"eta_c"`
	EtaD       *float64 `json:"eta_d"`
}

// LccaInputs is the life cycle cost parameter group.
type LccaInputs struct {
	CInit *float64 `json:"c_init"`
	COM   *float64 `json:"c_om"`
	CRep  *float64 `json:"c_rep"`
	S     *float64 `json:"s"`
	R     *float64 `json:"r"`
	N     *int     `json:"n"`
}

// Co2Inputs is the emission parameter group.
type Co2Inputs struct {
	EmissionFactor *float64 `json:"emission_factor"`
}

func missing(group, name string) error {
	return fmt.Errorf("missing required field %s.%s", group, name)
}

type field struct {
	name string
	v    *float64
}

func require(group string, fields []field) error {
	for _, f := range fields {
		if f.v == nil {
			return missing(group, f.name)
		}
	}
	return nil
}

// Validate checks the request for missing groups and constraint violations
// and converts it into a pipeline request. The pipeline never sees an
// invalid battery capacity or speed ordering.
func (r Request) Validate() (pipeline.Request, error) {
	var req pipeline.Request

	switch {
	case r.Solar == nil:
		return req, fmt.Errorf("missing required group solar_inputs")
	case r.Wind == nil:
		return req, fmt.Errorf("missing required group wind_inputs")
	case r.Biogas == nil:
		return req, fmt.Errorf("missing required group biogas_inputs")
	case r.LoadDemand == nil:
		return req, fmt.Errorf("missing required field load_demand")
	case r.GridEnergy == nil:
		return req, fmt.Errorf("missing required field grid_energy")
	case r.Battery == nil:
		return req, fmt.Errorf("missing required group battery_inputs")
	case r.Lcca == nil:
		return req, fmt.Errorf("missing required group lcca_inputs")
	case r.Co2 == nil:
		return req, fmt.Errorf("missing required group co2_inputs")
	}

	if err := require("solar_inputs", []field{
		{"area_pv", r.Solar.AreaPV},
		{"efficiency_pv", r.Solar.EfficiencyPV},
		{"irradiance", r.Solar.Irradiance},
	}); err != nil {
		return req, err
	}
	if err := require("wind_inputs", []field{
		{"air_density", r.Wind.AirDensity},
		{"swept_area", r.Wind.SweptArea},
		{"power_coefficient", r.Wind.PowerCoefficient},
		{"wind_speed", r.Wind.WindSpeed},
		{"v_cut_in", r.Wind.VCutIn},
		{"v_rated", r.Wind.VRated},
		{"v_cut_out", r.Wind.VCutOut},
		{"p_rated", r.Wind.PRated},
		{"delta_t", r.Wind.DeltaT},
	}); err != nil {
		return req, err
	}
	if err := require("biogas_inputs", []field{
		{"methane_yield", r.Biogas.MethaneYield},
		{"mass_feedstock", r.Biogas.MassFeedstock},
		{"efficiency_bg", r.Biogas.EfficiencyBG},
		{"hhv_ch4", r.Biogas.HHVCH4},
	}); err != nil {
		return req, err
	}
	if err := require("battery_inputs", []field{
		{"capacity", r.Battery.Capacity},
		{"eta_c", r.Battery.EtaC},
		{"eta_d", r.Battery.EtaD},
	}); err != nil {
		return req, err
	}
	if err := require("lcca_inputs", []field{
		{"c_init", r.Lcca.CInit},
		{"c_om", r.Lcca.COM},
		{"c_rep", r.Lcca.CRep},
		{"s", r.Lcca.S},
		{"r", r.Lcca.R},
	}); err != nil {
		return req, err
	}
	if r.Lcca.N == nil {
		return req, missing("lcca_inputs", "n")
	}
	if r.Co2.EmissionFactor == nil {
		return req, missing("co2_inputs", "emission_factor")
	}

	if err := r.constraints(); err != nil {
		return req, err
	}

	initialSOC := 0.5
	if r.Battery.InitialSOC != nil {
		initialSOC = *r.Battery.InitialSOC
	}

	req = pipeline.Request{
		Solar: solar.Inputs{
			AreaM2:     *r.Solar.AreaPV,
			Efficiency: *r.Solar.EfficiencyPV,
			Irradiance: *r.Solar.Irradiance,
		},
		Wind: wind.Inputs{
			AirDensity:       *r.Wind.AirDensity,
			SweptAreaM2:      *r.Wind.SweptArea,
			PowerCoefficient: *r.Wind.PowerCoefficient,
			Speed:            *r.Wind.WindSpeed,
			CutIn:            *r.Wind.VCutIn,
			Rated:            *r.Wind.VRated,
			CutOut:           *r.Wind.VCutOut,
			RatedKW:          *r.Wind.PRated,
			DeltaTHours:      *r.Wind.DeltaT,
		},
		Biogas: biogas.Inputs{
			MethaneYield: *r.Biogas.MethaneYield,
			FeedstockKG:  *r.Biogas.MassFeedstock,
			Efficiency:   *r.Biogas.EfficiencyBG,
			HHVCH4:       *r.Biogas.HHVCH4,
		},
		LoadDemandKWH: *r.LoadDemand,
		GridEnergyKWH: *r.GridEnergy,
		Battery: battery.State{
			CapacityKWH:  *r.Battery.Capacity,
			SOC:          initialSOC,
			EtaCharge:    *r.Battery.EtaC,
			EtaDischarge: *r.Battery.EtaD,
		},
		Costs: lcca.Inputs{
			CapitalCost:  *r.Lcca.CInit,
			AnnualOM:     *r.Lcca.COM,
			Replacement:  *r.Lcca.CRep,
			Salvage:      *r.Lcca.S,
			DiscountRate: *r.Lcca.R,
			Years:        *r.Lcca.N,
		},
		EmissionFactor: *r.Co2.EmissionFactor,
		Scenario:       pipeline.Scenario(r.Scenario),
	}
	return req, nil
}

func (r Request) constraints() error {
	type bound struct {
		name string
		v    float64
		ok   bool
	}
	checks := []bound{
		{"solar_inputs.area_pv must be positive", *r.Solar.AreaPV, *r.Solar.AreaPV > 0},
		{"solar_inputs.efficiency_pv must be in [0,1]", *r.Solar.EfficiencyPV, ratio(*r.Solar.EfficiencyPV)},
		{"solar_inputs.irradiance must be non-negative", *r.Solar.Irradiance, *r.Solar.Irradiance >= 0},
		{"wind_inputs.air_density must be positive", *r.Wind.AirDensity, *r.Wind.AirDensity > 0},
		{"wind_inputs.swept_area must be positive", *r.Wind.SweptArea, *r.Wind.SweptArea > 0},
		{"wind_inputs.power_coefficient must be in [0,1]", *r.Wind.PowerCoefficient, ratio(*r.Wind.PowerCoefficient)},
		{"wind_inputs.wind_speed must be non-negative", *r.Wind.WindSpeed, *r.Wind.WindSpeed >= 0},
		{"wind_inputs.p_rated must be positive", *r.Wind.PRated, *r.Wind.PRated > 0},
		{"wind_inputs.delta_t must be positive", *r.Wind.DeltaT, *r.Wind.DeltaT > 0},
		{"biogas_inputs.methane_yield must be non-negative", *r.Biogas.MethaneYield, *r.Biogas.MethaneYield >= 0},
		{"biogas_inputs.mass_feedstock must be non-negative", *r.Biogas.MassFeedstock, *r.Biogas.MassFeedstock >= 0},
		{"biogas_inputs.efficiency_bg must be in [0,1]", *r.Biogas.EfficiencyBG, ratio(*r.Biogas.EfficiencyBG)},
		{"biogas_inputs.hhv_ch4 must be positive", *r.Biogas.HHVCH4, *r.Biogas.HHVCH4 > 0},
		{"load_demand must be non-negative", *r.LoadDemand, *r.LoadDemand >= 0},
		{"grid_energy must be non-negative", *r.GridEnergy, *r.GridEnergy >= 0},
		{"battery_inputs.capacity must be positive", *r.Battery.Capacity, *r.Battery.Capacity > 0},
		{"battery_inputs.eta_c must be in [0,1]", *r.Battery.EtaC, ratio(*r.Battery.EtaC)},
		{"battery_inputs.eta_d must be in [0,1]", *r.Battery.EtaD, ratio(*r.Battery.EtaD)},
		{"lcca_inputs.c_init must be non-negative", *r.Lcca.CInit, *r.Lcca.CInit >= 0},
		{"lcca_inputs.c_om must be non-negative", *r.Lcca.COM, *r.Lcca.COM >= 0},
		{"lcca_inputs.c_rep must be non-negative", *r.Lcca.CRep, *r.Lcca.CRep >= 0},
		{"lcca_inputs.s must be non-negative", *r.Lcca.S, *r.Lcca.S >= 0},
		{"lcca_inputs.r must be in [0,1)", *r.Lcca.R, *r.Lcca.R >= 0 && *r.Lcca.R < 1},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%s, got %v", c.name, c.v)
		}
	}
	if !(0 <= *r.Wind.VCutIn && *r.Wind.VCutIn < *r.Wind.VRated && *r.Wind.VRated < *r.Wind.VCutOut) {
		return fmt.Errorf("wind_inputs speeds must satisfy 0 <= v_cut_in < v_rated < v_cut_out")
	}
	if *r.Lcca.N <= 0 {
		return fmt.Errorf("lcca_inputs.n must be a positive integer, got %d", *r.Lcca.N)
	}
	if *r.Co2.EmissionFactor < 0 {
		return fmt.Errorf("co2_inputs.emission_factor must be non-negative, got %v", *r.Co2.EmissionFactor)
	}
	if r.Battery.InitialSOC != nil && !ratio(*r.Battery.InitialSOC) {
		return fmt.Errorf("battery_inputs.initial_soc must be in [0,1], got %v", *r.Battery.InitialSOC)
	}
	if r.Scenario != "" && r.Scenario != string(pipeline.GridOutage) {
		return fmt.Errorf("unknown scenario %q", r.Scenario)
	}
	return nil
}

func ratio(v float64) bool {
	return v >= 0 && v <= 1
}
