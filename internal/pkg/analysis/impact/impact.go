// Package impact converts displaced grid energy into avoided CO2 mass.
package impact

// Offset returns the renewable energy that displaces grid supply: total
// generation capped at the load it can actually serve.
func Offset(totalGenerationKWH, loadDemandKWH float64) float64 {
	if totalGenerationKWH > loadDemandKWH {
		return loadDemandKWH
	}
	return totalGenerationKWH
}

// CO2Reduction returns the avoided emission mass in kg:
// dCO2 = E_offset * EF
func CO2Reduction(offsetKWH, emissionFactor float64) float64 {
	return offsetKWH * emissionFactor
}
