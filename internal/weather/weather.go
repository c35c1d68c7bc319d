// Package weather escalates a base tread risk for wet or snowy conditions.
//
// Escalation is strictly monotonic: a weather mode can only move risk up
// the ordered scale, never down, and never past "Replace Now".
package weather

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned for weather modes outside {dry, wet, snow}.
var ErrUnknownMode = errors.New("weather: unknown mode")

// ErrUnknownRisk is returned for risk names outside the ordered scale.
var ErrUnknownRisk = errors.New("weather: unknown risk level")

// Mode is the active weather condition.
type Mode int

const (
	ModeDry Mode = iota
	ModeWet
	ModeSnow
)

func (m Mode) String() string {
	switch m {
	case ModeWet:
		return "wet"
	case ModeSnow:
		return "snow"
	default:
		return "dry"
	}
}

// ParseMode maps a mode name to its value. The empty string is the
// documented fallback to dry (multiplier 1.0); any other unknown string is
// rejected.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "dry":
		return ModeDry, nil
	case "wet":
		return ModeWet, nil
	case "snow":
		return ModeSnow, nil
	default:
		return ModeDry, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// RiskLevel is the ordered safety classification.
type RiskLevel int

const (
	RiskSafe RiskLevel = iota
	RiskMonitor
	RiskPlanSoon
	RiskReplaceNow
)

var riskNames = [...]string{"Safe", "Monitor", "Plan Soon", "Replace Now"}

func (r RiskLevel) String() string {
	if r < RiskSafe || r > RiskReplaceNow {
		return fmt.Sprintf("RiskLevel(%d)", int(r))
	}
	return riskNames[r]
}

// ParseRiskLevel maps a risk name back to its level.
func ParseRiskLevel(s string) (RiskLevel, error) {
	for i, name := range riskNames {
		if s == name {
			return RiskLevel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRisk, s)
}

// bump raises a risk by n steps, clamped at the top of the scale.
func (r RiskLevel) bump(n int) RiskLevel {
	out := r + RiskLevel(n)
	if out > RiskReplaceNow {
		return RiskReplaceNow
	}
	return out
}

// Adjustment is the weather-adjusted risk verdict.
type Adjustment struct {
	Level       RiskLevel
	Multiplier  float64
	Description string
}

// Per-mode depth thresholds in 32nds. Depth at or below the critical
// threshold forces Replace Now regardless of the base risk.
const (
	wetMultiplier  = 1.35
	wetWarnDepth   = 5
	wetCritDepth   = 3
	snowMultiplier = 1.70
	snowWarnDepth  = 6
	snowCritDepth  = 4
)

// Escalate adjusts a base risk level for the given weather mode and tread
// depth. Dry mode is a pass-through.
func Escalate(depth32 float64, base RiskLevel, mode Mode) Adjustment {
	switch mode {
	case ModeWet:
		return escalate(depth32, base, wetMultiplier, wetWarnDepth, wetCritDepth,
			"Wet roads raise hydroplaning risk and stretch stopping distance at this tread depth.",
			"Shallow tread sheds standing water poorly; expect longer wet stops.",
			"Wet grip is beginning to fall off; watch stopping distances in rain.")
	case ModeSnow:
		return escalate(depth32, base, snowMultiplier, snowWarnDepth, snowCritDepth,
			"Snow traction is critically compromised at this depth; control margins are gone.",
			"Tread this shallow packs with snow quickly, cutting traction and control.",
			"Snow traction is starting to degrade; leave extra following room.")
	default:
		return Adjustment{
			Level:       base,
			Multiplier:  1.0,
			Description: "Dry pavement: no weather adjustment applied.",
		}
	}
}

func escalate(depth32 float64, base RiskLevel, mult float64, warn, crit float64, critMsg, warnMsg, nearMsg string) Adjustment {
	switch {
	case depth32 <= crit:
		return Adjustment{Level: RiskReplaceNow, Multiplier: mult, Description: critMsg}
	case depth32 <= warn:
		return Adjustment{Level: base.bump(2), Multiplier: mult, Description: warnMsg}
	case depth32 <= warn+1:
		return Adjustment{Level: base.bump(1), Multiplier: mult, Description: nearMsg}
	default:
		return Adjustment{Level: base, Multiplier: mult, Description: "Tread depth holds a safe margin for these conditions."}
	}
}
