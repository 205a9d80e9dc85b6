package domain

import "strconv"

// Points is a score quantity measured in half points, so the 0.5 penalties
// used by the checks accumulate without rounding error.
type Points int

const (
	HalfPoint Points = 1
	FullPoint Points = 2
)

// Float returns the value in whole points
func (p Points) Float() float64 {
	return float64(p) / float64(FullPoint)
}

func (p Points) String() string {
	return strconv.FormatFloat(p.Float(), 'f', -1, 64)
}

// MarshalJSON encodes points as a plain number (e.g. 0.5)
func (p Points) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// MarshalYAML encodes points as a plain number (e.g. 0.5)
func (p Points) MarshalYAML() (interface{}, error) {
	return p.Float(), nil
}

// Score accumulates penalties against a fixed maximum.
type Score struct {
	max    Points
	earned Points
}

// NewScore creates a score worth one full point per check
func NewScore(checks int) *Score {
	max := Points(checks) * FullPoint
	return &Score{max: max, earned: max}
}

// Deduct subtracts a penalty. The running total may go negative;
// it is clamped when read.
func (s *Score) Deduct(p Points) {
	s.earned -= p
}

// Max returns the starting value
func (s *Score) Max() Points {
	return s.max
}

// Earned returns the remaining points, floored at zero
func (s *Score) Earned() Points {
	if s.earned < 0 {
		return 0
	}
	return s.earned
}

// Percent returns earned/max as a truncated integer percentage
func (s *Score) Percent() int {
	if s.max <= 0 {
		return 0
	}
	return int(s.Earned() * 100 / s.max)
}

// ScoreBand groups a percentage for presentation
type ScoreBand string

const (
	ScoreBandGood ScoreBand = "good"
	ScoreBandFair ScoreBand = "fair"
	ScoreBandPoor ScoreBand = "poor"
)

// Band thresholds
const (
	GoodScoreThreshold = 90
	FairScoreThreshold = 70
)

// BandFor returns the presentation band for a percentage
func BandFor(percent int) ScoreBand {
	switch {
	case percent >= GoodScoreThreshold:
		return ScoreBandGood
	case percent >= FairScoreThreshold:
		return ScoreBandFair
	default:
		return ScoreBandPoor
	}
}
