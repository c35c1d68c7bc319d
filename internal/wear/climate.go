package wear

import (
	"errors"
	"fmt"
)

// ErrBadZIP indicates a ZIP string that is not exactly five digits.
var ErrBadZIP = errors.New("wear: malformed ZIP code")

// ClimateFromZIP maps a US ZIP code to a coarse climate band by its leading
// digit. An empty ZIP is a documented fallback to ClimateNeutral; anything
// else that is not five digits is rejected.
//
// The bands are intentionally crude: northeastern and midwestern prefixes
// read as cold winters, the southeast and south-central prefixes as hot
// summers, everything else as moderate.
func ClimateFromZIP(zip string) (Climate, error) {
	if zip == "" {
		return ClimateNeutral, nil
	}
	if len(zip) != 5 {
		return ClimateNeutral, fmt.Errorf("%w: %q", ErrBadZIP, zip)
	}
	for _, c := range zip {
		if c < '0' || c > '9' {
			return ClimateNeutral, fmt.Errorf("%w: %q", ErrBadZIP, zip)
		}
	}

	switch zip[0] {
	case '0', '1', '4', '5':
		// New England, NY/PA, Midwest, Upper Midwest.
		return ClimateCold, nil
	case '3', '7':
		// Southeast, South Central.
		return ClimateHot, nil
	default:
		// Mid-Atlantic, Plains, Mountain, West Coast.
		return ClimateModerate, nil
	}
}

// ParseClimate maps a climate name to its enum value. Unknown names are
// rejected rather than defaulted; the empty string is the documented
// neutral fallback.
func ParseClimate(s string) (Climate, error) {
	switch s {
	case "":
		return ClimateNeutral, nil
	case "neutral":
		return ClimateNeutral, nil
	case "cold":
		return ClimateCold, nil
	case "moderate":
		return ClimateModerate, nil
	case "hot":
		return ClimateHot, nil
	default:
		return ClimateNeutral, fmt.Errorf("wear: unknown climate %q", s)
	}
}
