// Package solar models the energy output of a photovoltaic array.
package solar

// Inputs holds the PV array parameters and the irradiance snapshot.
type Inputs struct {
	AreaM2     float64 `json:"area_pv"`
	Efficiency float64 `json:"efficiency_pv"`
	Irradiance float64 `json:"irradiance"`
}

// Energy returns the array output in kWh for the snapshot interval.
// E_PV = A_PV * eta_PV * G
func (in Inputs) Energy() float64 {
	return in.AreaM2 * in.Efficiency * in.Irradiance
}

// EnergyAt evaluates the array at an arbitrary irradiance in kW/m2,
// ignoring the snapshot value. Used by the regression reference sample.
func (in Inputs) EnergyAt(irradiance float64) float64 {
	return in.AreaM2 * in.Efficiency * irradiance
}
