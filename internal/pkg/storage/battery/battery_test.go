package battery

import (
	"testing"

	"gotest.tools/v3/assert"
)

func snapshot() State {
	return State{CapacityKWH: 100, SOC: 0.5, EtaCharge: 0.9, EtaDischarge: 0.9}
}

func TestApplySurplusCharges(t *testing.T) {
	s := snapshot()
	res, err := Apply(s, 10)
	assert.NilError(t, err)
	assert.Equal(t, res.StoredKWH, 10*0.9)
	assert.Equal(t, res.DischargedKWH, 0.0)
	assert.Equal(t, res.State.SOC, 0.5+(10*0.9)/100)
	assert.Equal(t, s.SOC, 0.5, "input state is not mutated")
}

func TestApplySurplusBoundedByHeadroom(t *testing.T) {
	s := State{CapacityKWH: 10, SOC: 0.75, EtaCharge: 1, EtaDischarge: 1}
	res, err := Apply(s, 50)
	assert.NilError(t, err)
	assert.Equal(t, res.StoredKWH, 2.5)
	assert.Equal(t, res.State.SOC, 1.0)
}

func TestApplyDeficitDischarges(t *testing.T) {
	s := snapshot()
	res, err := Apply(s, -10)
	assert.NilError(t, err)
	assert.Equal(t, res.DischargedKWH, 10/0.9)
	assert.Equal(t, res.StoredKWH, 0.0)
	assert.Equal(t, res.State.SOC, 0.5-(10/0.9)/100)
}

func TestApplyDeficitBoundedByStoredEnergy(t *testing.T) {
	s := State{CapacityKWH: 10, SOC: 0.25, EtaCharge: 1, EtaDischarge: 1}
	res, err := Apply(s, -500)
	assert.NilError(t, err)
	assert.Equal(t, res.DischargedKWH, 2.5)
	assert.Equal(t, res.State.SOC, 0.0)
}

func TestApplyZeroBalance(t *testing.T) {
	s := snapshot()
	res, err := Apply(s, 0)
	assert.NilError(t, err)
	assert.Equal(t, res.StoredKWH, 0.0)
	assert.Equal(t, res.DischargedKWH, 0.0)
	assert.Equal(t, res.State.SOC, 0.5)
}

func TestApplySOCStaysInRange(t *testing.T) {
	states := []State{
		{CapacityKWH: 100, SOC: 0, EtaCharge: 0.85, EtaDischarge: 0.85},
		{CapacityKWH: 100, SOC: 0.5, EtaCharge: 0.85, EtaDischarge: 0.85},
		{CapacityKWH: 100, SOC: 1, EtaCharge: 0.85, EtaDischarge: 0.85},
		{CapacityKWH: 3.5, SOC: 0.2, EtaCharge: 1, EtaDischarge: 0.6},
	}
	balances := []float64{-1e6, -50, -0.1, 0, 0.1, 50, 1e6}

	for _, s := range states {
		for _, bal := range balances {
			res, err := Apply(s, bal)
			assert.NilError(t, err)
			assert.Assert(t, res.State.SOC >= 0 && res.State.SOC <= 1)
			if bal >= 0 {
				assert.Assert(t, res.State.SOC >= s.SOC)
			} else {
				assert.Assert(t, res.State.SOC <= s.SOC)
			}
		}
	}
}

func TestApplyInvalidCapacity(t *testing.T) {
	for _, c := range []float64{0, -1} {
		_, err := Apply(State{CapacityKWH: c, SOC: 0.5, EtaCharge: 1, EtaDischarge: 1}, 5)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestSOCPercent(t *testing.T) {
	assert.Equal(t, State{SOC: 0.41}.SOCPercent(), 41.0)
}
