// Package timetravel derives tire state at an arbitrary point on the
// projected wear timeline.
//
// Everything here is a pure function of (prediction, t, toggles, now): the
// slider can be scrubbed continuously and every position recomputes the
// full state from scratch. t=0 must reproduce the prediction's current
// depth and base risk exactly.
package timetravel

import (
	"math"
	"time"

	"treadscope/internal/wear"
	"treadscope/internal/weather"
)

// Toggles are the user-adjustable what-if switches on the timeline.
type Toggles struct {
	WeatherMode       weather.Mode
	SkipRotations     bool
	AggressiveDriving bool
}

// State is the derived tire state at normalized time t. Serialization is
// the transport boundary's job; these are in-process values only.
type State struct {
	T                 float64
	Date              time.Time
	Depth32           float64
	Score             int
	BaseRisk          weather.RiskLevel
	Risk              weather.RiskLevel
	RiskDescription   string
	RiskMultiplier    float64
	TotalMonths       int
	WeatherMode       weather.Mode
	SkipRotations     bool
	AggressiveDriving bool
}

// Derive computes the state at t in [0,1] along the prediction's timeline.
// t outside [0,1] is clamped, matching the clamp-don't-throw policy for
// numeric inputs.
func Derive(pred wear.Prediction, t float64, tog Toggles, now time.Time) State {
	t = clamp01(t)

	rotMult := 1.0
	if tog.SkipRotations {
		rotMult = wear.RotationSkipped.WearMultiplier()
	}
	aggMult := 1.0
	if tog.AggressiveDriving {
		aggMult = wear.DrivingAggressive.WearMultiplier()
	}

	// Toggles speed up wear: the monthly loss scales up and the month
	// budget scales down. Weather deflates the month budget only; it
	// shortens the usable timeline without changing physical wear.
	monthly := pred.MonthlyWear * rotMult * aggMult
	months := float64(pred.RemainingMonths) / (rotMult * aggMult)

	weatherMult := weather.Escalate(pred.CurrentDepth32, weather.RiskSafe, tog.WeatherMode).Multiplier
	totalMonths := int(math.Round(math.Max(0, months/weatherMult)))

	depth := pred.CurrentDepth32 - t*float64(totalMonths)*monthly
	depth = math.Max(0, round2(depth))

	score := ScoreFromDepth(depth)
	base := baseRiskFromScore(score)
	adj := weather.Escalate(depth, base, tog.WeatherMode)

	return State{
		T:                 t,
		Date:              now.AddDate(0, int(math.Round(t*float64(totalMonths))), 0),
		Depth32:           depth,
		Score:             score,
		BaseRisk:          base,
		Risk:              adj.Level,
		RiskDescription:   adj.Description,
		RiskMultiplier:    adj.Multiplier,
		TotalMonths:       totalMonths,
		WeatherMode:       tog.WeatherMode,
		SkipRotations:     tog.SkipRotations,
		AggressiveDriving: tog.AggressiveDriving,
	}
}

// ScoreFromDepth maps a tread depth in 32nds linearly onto [0, 100].
func ScoreFromDepth(depth32 float64) int {
	score := int(math.Round(depth32 / 10 * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// baseRiskFromScore is the weather-independent risk classification.
func baseRiskFromScore(score int) weather.RiskLevel {
	switch {
	case score >= 70:
		return weather.RiskSafe
	case score >= 50:
		return weather.RiskMonitor
	case score > 25:
		return weather.RiskPlanSoon
	default:
		return weather.RiskReplaceNow
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
