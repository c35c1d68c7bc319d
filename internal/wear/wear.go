// Package wear projects a tread depth reading into a dated wear timeline.
//
// The projection is a straight linear extrapolation: depth decreases at a
// constant adjusted rate until it crosses the wet-traction and legal-minimum
// thresholds. A tire is considered dead at the legal minimum, not at zero
// depth. Driving below 2/32" is the end of the usable timeline.
package wear

import (
	"math"
	"time"

	"treadscope/internal/tread"
)

// Depth thresholds in 32nds of an inch.
const (
	WetTractionDepth  = 4
	LegalMinimumDepth = 2

	// BaseWearRate is the nominal tread loss in 32nds per 1000 miles.
	BaseWearRate = 0.14

	// sentinelYears is the horizon used when the wear rate degenerates to
	// zero: "assume indefinite life", encoded as a far-future date rather
	// than an error.
	sentinelYears  = 10
	sentinelMonths = 120

	daysPerMonth = 30.44
)

// Climate is the coarse climate band a tire lives in.
type Climate int

const (
	ClimateNeutral Climate = iota
	ClimateCold
	ClimateModerate
	ClimateHot
)

func (c Climate) String() string {
	switch c {
	case ClimateCold:
		return "cold"
	case ClimateModerate:
		return "moderate"
	case ClimateHot:
		return "hot"
	default:
		return "neutral"
	}
}

// Rotation describes the owner's rotation habit.
type Rotation int

const (
	RotationNormal Rotation = iota
	RotationSkipped
)

// DrivingStyle describes how hard the tire is driven.
type DrivingStyle int

const (
	DrivingNormal DrivingStyle = iota
	DrivingAggressive
)

// Multiplier tables as exhaustive switches: an unrecognized value falls
// through to the neutral multiplier only because the zero value of each
// enum is the neutral case.

func (c Climate) WearMultiplier() float64 {
	switch c {
	case ClimateCold:
		return 1.05
	case ClimateHot:
		return 1.15
	default: // moderate, neutral
		return 1.0
	}
}

func (r Rotation) WearMultiplier() float64 {
	if r == RotationSkipped {
		return 1.15
	}
	return 1.0
}

func (d DrivingStyle) WearMultiplier() float64 {
	if d == DrivingAggressive {
		return 1.10
	}
	return 1.0
}

// Profile captures the usage parameters supplied at ingestion.
type Profile struct {
	MilesPerYear int
	Climate      Climate
	Rotation     Rotation
	Driving      DrivingStyle
}

// Prediction is the projected wear timeline for one depth reading.
// Invariant: WetTractionDropDate <= LegalMinimumDate == TireDeadDate.
type Prediction struct {
	CurrentDepth32    float64
	WearRatePer1000Mi float64
	MonthlyWear       float64
	WetTractionDrop   time.Time
	LegalMinimum      time.Time
	TireDead          time.Time
	RemainingMonths   int
	MonthsToZeroDepth float64
	ConfidenceBand    float64 // [0.15, 0.20]
}

// Project builds the wear timeline for a depth range and usage profile,
// anchored at now.
func Project(depth tread.DepthRange, prof Profile, now time.Time) Prediction {
	current := depth.Mid()
	rate := BaseWearRate *
		prof.Climate.WearMultiplier() *
		prof.Rotation.WearMultiplier() *
		prof.Driving.WearMultiplier()
	monthly := float64(prof.MilesPerYear) / 12 / 1000 * rate

	p := Prediction{
		CurrentDepth32:    current,
		WearRatePer1000Mi: rate,
		MonthlyWear:       monthly,
		ConfidenceBand:    confidenceBand(current, prof.MilesPerYear),
	}

	if monthly <= 0 {
		// Degenerate input (zero miles): not an error, just an
		// indefinite-life sentinel.
		far := now.AddDate(sentinelYears, 0, 0)
		p.WetTractionDrop = far
		p.LegalMinimum = far
		p.TireDead = far
		p.RemainingMonths = sentinelMonths
		p.MonthsToZeroDepth = sentinelMonths
		p.ConfidenceBand = 0.20
		return p
	}

	monthsToWet := monthsTo(current, WetTractionDepth, monthly)
	monthsToLegal := monthsTo(current, LegalMinimumDepth, monthly)

	p.WetTractionDrop = addMonths(now, monthsToWet)
	p.LegalMinimum = addMonths(now, monthsToLegal)
	p.TireDead = p.LegalMinimum
	p.RemainingMonths = int(math.Round(monthsToLegal))
	p.MonthsToZeroDepth = current / monthly
	return p
}

// monthsTo returns the months until depth crosses threshold, floored at zero.
func monthsTo(current, threshold, monthly float64) float64 {
	return math.Max(0, (current-threshold)/monthly)
}

func addMonths(t time.Time, months float64) time.Time {
	return t.Add(time.Duration(months * daysPerMonth * 24 * float64(time.Hour)))
}

// confidenceBand widens the ±band for shallow treads and unusual mileage.
func confidenceBand(depth float64, milesPerYear int) float64 {
	band := 0.175
	if depth < 3 {
		band += 0.025
	}
	if milesPerYear > 18000 {
		band += 0.015
	}
	if milesPerYear < 6000 {
		band += 0.01
	}
	if band < 0.15 {
		band = 0.15
	}
	if band > 0.20 {
		band = 0.20
	}
	return band
}
