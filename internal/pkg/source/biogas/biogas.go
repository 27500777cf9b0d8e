// Package biogas models methane generation from digested feedstock.
package biogas

// Inputs holds the digester and generator parameters.
type Inputs struct {
	MethaneYield float64 `json:"methane_yield"`  // m3 CH4 per kg feedstock
	FeedstockKG  float64 `json:"mass_feedstock"` // kg per day
	Efficiency   float64 `json:"efficiency_bg"`  // generator efficiency
	HHVCH4       float64 `json:"hhv_ch4"`        // kWh per m3
}

// MethaneVolume returns the daily methane yield in m3.
func (in Inputs) MethaneVolume() float64 {
	return in.MethaneYield * in.FeedstockKG
}

// Energy returns the generator output in kWh for the snapshot interval.
// Feedstock mass is a per-day figure, so the daily energy is normalized to
// the hourly evaluation interval.
func (in Inputs) Energy() float64 {
	return in.Efficiency * in.MethaneVolume() * in.HHVCH4 / 24
}
