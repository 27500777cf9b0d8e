package models

import (
	"encoding/json"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ohowland/nzeb_core/internal/pkg/pipeline"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

// ValidRequest returns a fully populated request matching the model's
// reference walkthrough.
func ValidRequest() Request {
	return Request{
		Solar: &SolarInputs{AreaPV: f(100), EfficiencyPV: f(0.18), Irradiance: f(0.8)},
		Wind: &WindInputs{
			AirDensity:       f(1.225),
			SweptArea:        f(50),
			PowerCoefficient: f(0.4),
			WindSpeed:        f(8),
			VCutIn:           f(3),
			VRated:           f(12),
			VCutOut:          f(25),
			PRated:           f(10.24),
			DeltaT:           f(1),
		},
		Biogas:     &BiogasInputs{MethaneYield: f(0.3), MassFeedstock: f(100), EfficiencyBG: f(0.35), HHVCH4: f(10)},
		LoadDemand: f(50),
		GridEnergy: f(0),
		Battery:    &BatteryInputs{Capacity: f(100), InitialSOC: f(0.5), EtaC: f(0.9), EtaD: f(0.9)},
		Lcca:       &LccaInputs{CInit: f(50000), COM: f(2000), CRep: f(10000), S: f(5000), R: f(0.05), N: i(20)},
		Co2:        &Co2Inputs{EmissionFactor: f(0.82)},
	}
}

func TestValidateConvertsRequest(t *testing.T) {
	req, err := ValidRequest().Validate()
	assert.NilError(t, err)

	assert.Equal(t, req.Solar.AreaM2, 100.0)
	assert.Equal(t, req.Wind.RatedKW, 10.24)
	assert.Equal(t, req.Biogas.HHVCH4, 10.0)
	assert.Equal(t, req.LoadDemandKWH, 50.0)
	assert.Equal(t, req.Battery.SOC, 0.5)
	assert.Equal(t, req.Costs.Years, 20)
	assert.Equal(t, req.EmissionFactor, 0.82)
	assert.Equal(t, req.Scenario, pipeline.Scenario(""))
}

func TestValidateMissingGroups(t *testing.T) {
	mutations := map[string]func(*Request){
		"solar_inputs":   func(r *Request) { r.Solar = nil },
		"wind_inputs":    func(r *Request) { r.Wind = nil },
		"biogas_inputs":  func(r *Request) { r.Biogas = nil },
		"load_demand":    func(r *Request) { r.LoadDemand = nil },
		"grid_energy":    func(r *Request) { r.GridEnergy = nil },
		"battery_inputs": func(r *Request) { r.Battery = nil },
		"lcca_inputs":    func(r *Request) { r.Lcca = nil },
		"co2_inputs":     func(r *Request) { r.Co2 = nil },
	}
	for name, mutate := range mutations {
		r := ValidRequest()
		mutate(&r)
		_, err := r.Validate()
		assert.ErrorContains(t, err, name)
	}
}

func TestValidateMissingNumericField(t *testing.T) {
	r := ValidRequest()
	r.Wind.PRated = nil
	_, err := r.Validate()
	assert.ErrorContains(t, err, "wind_inputs.p_rated")

	r = ValidRequest()
	r.Lcca.N = nil
	_, err = r.Validate()
	assert.ErrorContains(t, err, "lcca_inputs.n")
}

func TestValidateConstraints(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"efficiency above one", func(r *Request) { r.Solar.EfficiencyPV = f(1.2) }},
		{"negative irradiance", func(r *Request) { r.Solar.Irradiance = f(-0.1) }},
		{"zero battery capacity", func(r *Request) { r.Battery.Capacity = f(0) }},
		{"speed ordering violated", func(r *Request) { r.Wind.VRated = f(2) }},
		{"discount rate of one", func(r *Request) { r.Lcca.R = f(1) }},
		{"non-positive lifetime", func(r *Request) { r.Lcca.N = i(0) }},
		{"negative emission factor", func(r *Request) { r.Co2.EmissionFactor = f(-1) }},
		{"initial soc above one", func(r *Request) { r.Battery.InitialSOC = f(1.5) }},
		{"unknown scenario", func(r *Request) { r.Scenario = "heat_wave" }},
		{"zero delta_t", func(r *Request) { r.Wind.DeltaT = f(0) }},
	}
	for _, tc := range cases {
		r := ValidRequest()
		tc.mutate(&r)
		_, err := r.Validate()
		assert.Assert(t, err != nil, tc.name)
	}
}

func TestValidateDefaultInitialSOC(t *testing.T) {
	r := ValidRequest()
	r.Battery.InitialSOC = nil
	req, err := r.Validate()
	assert.NilError(t, err)
	assert.Equal(t, req.Battery.SOC, 0.5)
}

func TestValidateScenarioPassthrough(t *testing.T) {
	r := ValidRequest()
	r.Scenario = "grid_outage"
	req, err := r.Validate()
	assert.NilError(t, err)
	assert.Equal(t, req.Scenario, pipeline.GridOutage)
}

func TestRequestRoundTripsJSONKeys(t *testing.T) {
	body := []byte(`{
		"solar_inputs": {"area_pv": 100, "efficiency_pv": 0.18, "irradiance": 0.8},
		"wind_inputs": {"air_density": 1.225, "swept_area": 50, "power_coefficient": 0.4,
			"wind_speed": 8, "v_cut_in": 3, "v_rated": 12, "v_cut_out": 25,
			"p_rated": 10.24, "delta_t": 1},
		"biogas_inputs": {"methane_yield": 0.3, "mass_feedstock": 100, "efficiency_bg": 0.35, "hhv_ch4": 10},
		"load_demand": 50,
		"grid_energy": 0,
		"battery_inputs": {"capacity": 100, "initial_soc": 0.5, "eta_c": 0.9, "eta_d": 0.9},
		"lcca_inputs": {"c_init": 50000, "c_om": 2000, "c_rep": 10000, "s": 5000, "r": 0.05, "n": 20},
		"co2_inputs": {"emission_factor": 0.82}
	}`)

	var r Request
	assert.NilError(t, json.Unmarshal(body, &r))
	req, err := r.Validate()
	assert.NilError(t, err)
	assert.Equal(t, req.Wind.CutOut, 25.0)
	assert.Equal(t, req.Costs.DiscountRate, 0.05)
}
