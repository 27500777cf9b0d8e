// Package regression fits an ordinary least squares line to a reference
// sample of irradiance versus PV output. It is a diagnostic decoupled from
// the rest of the pipeline: the sample is an injected constant, not request
// data, and the fit is closed form.
package regression

import "gonum.org/v1/gonum/stat"

// Sample pairs irradiance abscissae (kW/m2) with observed PV output (kWh).
type Sample struct {
	Irradiance []float64
	Output     []float64
}

// ReferenceSample returns the built-in sample: six irradiance points against
// the output of a 100 m2 array at 18 % efficiency.
func ReferenceSample() Sample {
	irr := []float64{0.1, 0.2, 0.4, 0.6, 0.8, 1.0}
	out := make([]float64, len(irr))
	for i, g := range irr {
		out[i] = 100 * 0.18 * g
	}
	return Sample{Irradiance: irr, Output: out}
}

// Line is a fitted model y = Alpha + Beta*x.
type Line struct {
	Alpha float64
	Beta  float64
}

// Fit returns the least squares line through the sample.
func Fit(s Sample) Line {
	alpha, beta := stat.LinearRegression(s.Irradiance, s.Output, nil, false)
	return Line{Alpha: alpha, Beta: beta}
}

// Predict evaluates the line at each abscissa.
func (l Line) Predict(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = l.Alpha + l.Beta*x
	}
	return ys
}

// Analysis reports the sample alongside its fitted predictions. The three
// slices are always the same length.
type Analysis struct {
	Irradiance []float64
	Output     []float64
	Predicted  []float64
}

// Evaluate fits the sample and predicts back at the sample abscissae.
func Evaluate(s Sample) Analysis {
	line := Fit(s)
	return Analysis{
		Irradiance: s.Irradiance,
		Output:     s.Output,
		Predicted:  line.Predict(s.Irradiance),
	}
}
