package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscalateDryPassThrough(t *testing.T) {
	adj := Escalate(6, RiskSafe, ModeDry)
	assert.Equal(t, RiskSafe, adj.Level)
	assert.Equal(t, 1.0, adj.Multiplier)
}

func TestEscalateWetCriticalForcesReplaceNow(t *testing.T) {
	adj := Escalate(2, RiskPlanSoon, ModeWet)
	assert.Equal(t, RiskReplaceNow, adj.Level)
	assert.Equal(t, 1.35, adj.Multiplier)
	assert.Contains(t, adj.Description, "hydroplaning")
}

func TestEscalateWetThresholds(t *testing.T) {
	// depth <= warning (5): +2 steps.
	adj := Escalate(4.5, RiskSafe, ModeWet)
	assert.Equal(t, RiskPlanSoon, adj.Level)

	// depth <= warning+1: +1 step.
	adj = Escalate(5.5, RiskSafe, ModeWet)
	assert.Equal(t, RiskMonitor, adj.Level)

	// Deep tread: unchanged.
	adj = Escalate(9, RiskSafe, ModeWet)
	assert.Equal(t, RiskSafe, adj.Level)
	assert.Equal(t, 1.35, adj.Multiplier)
}

func TestEscalateSnowThresholds(t *testing.T) {
	adj := Escalate(4, RiskSafe, ModeSnow)
	assert.Equal(t, RiskReplaceNow, adj.Level, "snow critical is 4/32")
	assert.Equal(t, 1.70, adj.Multiplier)
	assert.Contains(t, adj.Description, "traction")

	adj = Escalate(5.5, RiskMonitor, ModeSnow)
	assert.Equal(t, RiskReplaceNow, adj.Level, "warning band bumps two steps")

	adj = Escalate(6.5, RiskMonitor, ModeSnow)
	assert.Equal(t, RiskPlanSoon, adj.Level, "warning+1 band bumps one step")
}

func TestEscalateMonotonicAndBounded(t *testing.T) {
	depths := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for _, mode := range []Mode{ModeDry, ModeWet, ModeSnow} {
		for base := RiskSafe; base <= RiskReplaceNow; base++ {
			for _, d := range depths {
				adj := Escalate(d, base, mode)
				assert.GreaterOrEqual(t, int(adj.Level), int(base),
					"escalation must never lower risk (%v base=%v depth=%.0f)", mode, base, d)
				assert.LessOrEqual(t, adj.Level, RiskReplaceNow)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeDry, m, "missing mode falls back to dry")

	m, err = ParseMode("snow")
	require.NoError(t, err)
	assert.Equal(t, ModeSnow, m)

	_, err = ParseMode("hail")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseRiskLevel(t *testing.T) {
	r, err := ParseRiskLevel("Plan Soon")
	require.NoError(t, err)
	assert.Equal(t, RiskPlanSoon, r)

	_, err = ParseRiskLevel("Panic")
	assert.ErrorIs(t, err, ErrUnknownRisk)
}

func TestRiskLevelOrdering(t *testing.T) {
	assert.True(t, RiskSafe < RiskMonitor)
	assert.True(t, RiskMonitor < RiskPlanSoon)
	assert.True(t, RiskPlanSoon < RiskReplaceNow)
	assert.Equal(t, "Replace Now", RiskReplaceNow.String())
}
