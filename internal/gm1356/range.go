package gm1356

import "fmt"

// Range identifies one of the meter's measurement bands. The wire encoding
// is the low 4 bits of the flags byte; values 5-15 decode to RangeUnknown.
type Range uint8

const (
	Range30to130 Range = iota
	Range30to80
	Range50to100
	Range60to110
	Range80to130
	RangeUnknown
)

// RangeFromBits maps a 4-bit wire value to a Range. Total: every possible
// value yields a Range, unknown codes included.
func RangeFromBits(v byte) Range {
	if v&rangeMask > byte(Range80to130) {
		return RangeUnknown
	}
	return Range(v & rangeMask)
}

// Valid reports whether r is one of the five bands the device accepts.
func (r Range) Valid() bool {
	return r <= Range80to130
}

func (r Range) String() string {
	switch r {
	case Range30to130:
		return "30-130 dB"
	case Range30to80:
		return "30-80 dB"
	case Range50to100:
		return "50-100 dB"
	case Range60to110:
		return "60-110 dB"
	case Range80to130:
		return "80-130 dB"
	default:
		return "unknown"
	}
}

// ParseRange converts a configuration string such as "50-100" to a Range.
func ParseRange(s string) (Range, error) {
	switch s {
	case "30-130":
		return Range30to130, nil
	case "30-80":
		return Range30to80, nil
	case "50-100":
		return Range50to100, nil
	case "60-110":
		return Range60to110, nil
	case "80-130":
		return Range80to130, nil
	default:
		return RangeUnknown, fmt.Errorf("unknown range %q", s)
	}
}

// Weighting selects the meter's frequency weighting curve.
type Weighting uint8

const (
	WeightingDBA Weighting = iota
	WeightingDBC
)

func (w Weighting) String() string {
	if w == WeightingDBC {
		return "dBC"
	}
	return "dBA"
}

// ParseWeighting converts a configuration string to a Weighting.
func ParseWeighting(s string) (Weighting, error) {
	switch s {
	case "dBA":
		return WeightingDBA, nil
	case "dBC":
		return WeightingDBC, nil
	default:
		return WeightingDBA, fmt.Errorf("unknown weighting %q", s)
	}
}
