// Package wind models a single turbine with a piecewise power curve.
package wind

// Inputs holds the turbine parameters and the wind-speed snapshot.
type Inputs struct {
	AirDensity       float64 `json:"air_density"`
	SweptAreaM2      float64 `json:"swept_area"`
	PowerCoefficient float64 `json:"power_coefficient"`
	Speed            float64 `json:"wind_speed"`
	CutIn            float64 `json:"v_cut_in"`
	Rated            float64 `json:"v_rated"`
	CutOut           float64 `json:"v_cut_out"`
	RatedKW          float64 `json:"p_rated"`
	DeltaTHours      float64 `json:"delta_t"`
}

// Power evaluates the turbine power curve at wind speed v and returns kW.
// The curve has three regions: zero outside [CutIn, CutOut], the cubic law
// between CutIn and Rated inclusive, and the rated plateau above Rated up to
// and including CutOut. CutOut itself stays on the plateau so the curve does
// not drop to zero at the exact threshold.
func (in Inputs) Power(v float64) float64 {
	switch {
	case v < in.CutIn || v > in.CutOut:
		return 0
	case v <= in.Rated:
		// cubic law is in watts, rated power is in kW
		return 0.5 * in.AirDensity * in.SweptAreaM2 * v * v * v * in.PowerCoefficient / 1000
	default:
		return in.RatedKW
	}
}

// Energy returns the turbine output in kWh over the snapshot interval.
// E_WT = P_WT(v) * dt
func (in Inputs) Energy() float64 {
	return in.Power(in.Speed) * in.DeltaTHours
}
