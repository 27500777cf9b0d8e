package models

import "github.com/ohowland/nzeb_core/internal/pkg/pipeline"

// Response is the body of a successful POST /model.
type Response struct {
	EnergyGeneration    EnergyGeneration    `json:"energy_generation"`
	EnergyBalance       EnergyBalance       `json:"energy_balance"`
	BatteryStatus       BatteryStatus       `json:"battery_status"`
	FinancialAnalysis   FinancialAnalysis   `json:"financial_analysis"`
	EnvironmentalImpact EnvironmentalImpact `json:"environmental_impact"`
	ScenarioModeling    *ScenarioModeling   `json:"scenario_modeling_results,omitempty"`
	RegressionAnalysis  RegressionAnalysis  `json:"regression_analysis"`
}

type EnergyGeneration struct {
	SolarPVKWH        float64 `json:"solar_pv_kWh"`
	WindTurbineKWH    float64 `json:"wind_turbine_kWh"`
	BiogasKWH         float64 `json:"biogas_kWh"`
	TotalGeneratedKWH float64 `json:"total_generated_kWh"`
}

type EnergyBalance struct {
	LoadDemandKWH        float64 `json:"load_demand_kWh"`
	GridEnergyKWH        float64 `json:"grid_energy_kWh"`
	ExcessOrCurtailedKWH float64 `json:"excess_or_curtailed_energy_kWh"`
}

type BatteryStatus struct {
	StateOfChargePercent float64 `json:"state_of_charge_percent"`
}

type FinancialAnalysis struct {
	LifeCycleCost         float64 `json:"life_cycle_cost_LCC"`
	LevelizedCostOfEnergy float64 `json:"levelized_cost_of_energy_LCOE"`
}

type EnvironmentalImpact struct {
	CO2EmissionReductionKG float64 `json:"co2_emission_reduction_kg"`
}

type ScenarioModeling struct {
	GridOutage *GridOutage `json:"grid_outage,omitempty"`
}

type GridOutage struct {
	Message                string  `json:"message"`
	ExcessDuringOutageKWH  float64 `json:"excess_energy_during_outage_kWh"`
	SystemUptimePercentage float64 `json:"system_uptime_percentage"`
}

type RegressionAnalysis struct {
	IrradianceData    []float64 `json:"irradiance_data"`
	PVOutputData      []float64 `json:"pv_output_data"`
	PredictedPVOutput []float64 `json:"predicted_pv_output"`
}

// NewResponse maps a pipeline result onto the wire shape. The load and grid
// figures are echoed from the request so the balance section is self
// contained.
func NewResponse(req pipeline.Request, res pipeline.Result) Response {
	out := Response{
		EnergyGeneration: EnergyGeneration{
			SolarPVKWH:        res.Generation.SolarKWH,
			WindTurbineKWH:    res.Generation.WindKWH,
			BiogasKWH:         res.Generation.BiogasKWH,
			TotalGeneratedKWH: res.Generation.TotalKWH,
		},
		EnergyBalance: EnergyBalance{
			LoadDemandKWH:        req.LoadDemandKWH,
			GridEnergyKWH:        req.GridEnergyKWH,
			ExcessOrCurtailedKWH: res.BalanceKWH,
		},
		BatteryStatus: BatteryStatus{
			StateOfChargePercent: res.Battery.State.SOCPercent(),
		},
		FinancialAnalysis: FinancialAnalysis{
			LifeCycleCost:         res.LCC,
			LevelizedCostOfEnergy: res.LCOE,
		},
		EnvironmentalImpact: EnvironmentalImpact{
			CO2EmissionReductionKG: res.CO2ReductionKG,
		},
		RegressionAnalysis: RegressionAnalysis{
			IrradianceData:    res.Regression.Irradiance,
			PVOutputData:      res.Regression.Output,
			PredictedPVOutput: res.Regression.Predicted,
		},
	}

	if res.Outage != nil {
		out.ScenarioModeling = &ScenarioModeling{
			GridOutage: &GridOutage{
				Message:                "Simulation for grid outage scenario.",
				ExcessDuringOutageKWH:  res.Outage.ExcessKWH,
				SystemUptimePercentage: res.Outage.UptimePercent,
			},
		}
	}
	return out
}

// ErrorResponse is the body of any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
