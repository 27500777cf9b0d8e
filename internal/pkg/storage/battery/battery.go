// Package battery models a one-step state of charge update for an energy
// storage system. The update is a value transformation: Apply never mutates
// its input state, it returns the successor.
package battery

import "errors"

// ErrInvalidCapacity reports a battery with non-positive capacity; the SOC
// update would divide by zero.
var ErrInvalidCapacity = errors.New("battery: capacity must be positive")

// State is a snapshot of the storage system.
type State struct {
	CapacityKWH  float64
	SOC          float64 // fraction of capacity, in [0,1]
	EtaCharge    float64
	EtaDischarge float64
}

// SOCPercent reports the state of charge as a percentage.
func (s State) SOCPercent() float64 {
	return s.SOC * 100
}

// Result holds the outcome of one balance step. Exactly one of StoredKWH and
// DischargedKWH is nonzero for a nonzero balance.
type Result struct {
	StoredKWH     float64 // energy absorbed by the cells
	DischargedKWH float64 // energy drawn from the cells
	State         State
}

// Apply consumes a signed energy balance in kWh and returns the charge or
// discharge outcome with the successor state. A surplus balance charges the
// battery through the charge efficiency, bounded by the remaining headroom;
// a deficit discharges it through the discharge efficiency, bounded by the
// stored energy. The min bounds keep SOC inside [0,1] without clamping.
func Apply(s State, balance float64) (Result, error) {
	if s.CapacityKWH <= 0 {
		return Result{}, ErrInvalidCapacity
	}

	next := s
	res := Result{}
	if balance >= 0 {
		stored := balance * s.EtaCharge
		if headroom := (1 - s.SOC) * s.CapacityKWH; stored > headroom {
			stored = headroom
		}
		next.SOC = s.SOC + stored/s.CapacityKWH
		if next.SOC > 1 {
			// rounding can overshoot the bound by an ulp at full charge
			next.SOC = 1
		}
		res.StoredKWH = stored
	} else {
		discharged := -balance / s.EtaDischarge
		if available := s.SOC * s.CapacityKWH; discharged > available {
			discharged = available
		}
		next.SOC = s.SOC - discharged/s.CapacityKWH
		if next.SOC < 0 {
			next.SOC = 0
		}
		res.DischargedKWH = discharged
	}
	res.State = next
	return res, nil
}
