package waveplot

import (
	"fmt"
	"math"
)

// Scale is a continuous position scale. It learns its domain from data
// (Train) or from fixed limits (SetLimits) and maps the domain onto the
// unit range [0,1] once prepared.
type Scale struct {
	Name string

	DomainMin float64
	DomainMax float64

	// Fixed scales ignore further training.
	Fixed bool

	// Pos maps domain values into [0,1]; set up by Prepare.
	Pos func(x float64) float64
}

// NewScale returns an untrained scale.
func NewScale(name string) *Scale {
	return &Scale{
		Name:      name,
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
	}
}

func (s *Scale) String() string {
	return fmt.Sprintf("Scale %s [%g,%g]", s.Name, s.DomainMin, s.DomainMax)
}

// Train widens the domain of s to cover the values of f.
func (s *Scale) Train(f Field) {
	min, max, mini, maxi := f.MinMax()
	if mini == -1 || maxi == -1 {
		return
	}
	s.TrainByValue(min, max)
}

// TrainByValue widens the domain of s to cover xs. NaN and infinite
// values are ignored.
func (s *Scale) TrainByValue(xs ...float64) {
	if s.Fixed {
		return
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < s.DomainMin {
			s.DomainMin = x
		}
		if x > s.DomainMax {
			s.DomainMax = x
		}
	}
}

// SetLimits fixes the domain to [min,max].
func (s *Scale) SetLimits(min, max float64) {
	if min > max {
		min, max = max, min
	}
	s.DomainMin, s.DomainMax = min, max
	s.Fixed = true
}

// Prepare sets up Pos. Untrained scales get the domain [0,1],
// degenerate domains are widened by 1 on both sides.
func (s *Scale) Prepare() {
	if s.DomainMin > s.DomainMax {
		s.DomainMin, s.DomainMax = 0, 1
	}
	if s.DomainMin == s.DomainMax {
		s.DomainMin--
		s.DomainMax++
	}
	min, fullRange := s.DomainMin, s.DomainMax-s.DomainMin
	s.Pos = func(x float64) float64 {
		return (x - min) / fullRange
	}
}
