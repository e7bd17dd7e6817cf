// Package scale maps scale degrees onto steps and pitches of a tuning system
package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-see/sol/internal/memo"
	"github.com/james-see/sol/pkg/mode"
	"github.com/james-see/sol/pkg/tuning"
	"github.com/james-see/sol/pkg/tuning/systems"
)

// DefaultTonic is used when no tonic is configured
const DefaultTonic = "C4"

// Limits for Range
const (
	MaxDegree = 1 << 24 // largest degree magnitude
	MaxRange  = 1 << 16 // most degrees resolved by one call
)

// ErrRange is returned for degree ranges out of bounds
var ErrRange = errors.New("degree out of range")

// Config describes a scale. Only Mode is required.
type Config struct {
	Mode      mode.Mode
	Tonic     tuning.Key    // defaults to DefaultTonic
	System    tuning.System // defaults to systems.Default
	Name      string
	PitchMode bool // At returns frequencies instead of steps
}

// Degree is one resolved scale degree
type Degree struct {
	Degree    int     `json:"degree"`
	Step      int     `json:"step"`
	Frequency float64 `json:"frequency"`
}

// StepTable is the read-only table of memoized steps, keyed by zero based degree
type StepTable = memo.View[int, int]

// Scale resolves scale degrees within a tuning system.
// Degree 1 is the tonic; degrees below 1 descend below it.
type Scale struct {
	mode      mode.Mode
	tonic     int
	system    tuning.System
	name      string
	pitchMode bool

	steps *memo.Table[int, int]
}

// New creates a scale, resolving a named tonic through the system
func New(cfg Config) (*Scale, error) {
	if cfg.Mode.IsZero() {
		return nil, fmt.Errorf("%w: must specify a mode", tuning.ErrConfig)
	}

	sys := cfg.System
	if sys == nil {
		sys = systems.Default
	}

	key := cfg.Tonic
	if key.IsZero() {
		key = tuning.NameKey(DefaultTonic)
	}
	tonic, err := key.Resolve(sys)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tonic: %w", err)
	}

	return &Scale{
		mode:      cfg.Mode,
		tonic:     tonic,
		system:    sys,
		name:      cfg.Name,
		pitchMode: cfg.PitchMode,
		steps:     memo.New[int, int]("step"),
	}, nil
}

// Mode returns the interval pattern
func (s *Scale) Mode() mode.Mode {
	return s.mode
}

// Tonic returns the step of degree 1
func (s *Scale) Tonic() int {
	return s.tonic
}

// System returns the bound tuning system
func (s *Scale) System() tuning.System {
	return s.system
}

// Name returns the optional scale name
func (s *Scale) Name() string {
	return s.name
}

// PitchMode reports whether At returns frequencies
func (s *Scale) PitchMode() bool {
	return s.pitchMode
}

// StepAt returns the system step of a scale degree
func (s *Scale) StepAt(degree int) int {
	d := degree - 1
	return s.steps.Lookup(d, func() int {
		n := s.mode.Len()
		octave := floorDiv(d, n)
		return s.tonic + s.mode.Span()*octave + s.mode.Offset(d-octave*n)
	})
}

// PitchAt returns the frequency in Hz of a scale degree
func (s *Scale) PitchAt(degree int) float64 {
	return s.system.FrequencyOf(s.StepAt(degree))
}

// At returns PitchAt in pitch mode and StepAt otherwise
func (s *Scale) At(degree int) float64 {
	if s.pitchMode {
		return s.PitchAt(degree)
	}
	return float64(s.StepAt(degree))
}

// CheckDegree reports whether degree lies within ±MaxDegree
func CheckDegree(degree int) error {
	if degree < -MaxDegree || degree > MaxDegree {
		return fmt.Errorf("%w: %d is beyond ±%d", ErrRange, degree, MaxDegree)
	}
	return nil
}

// Count returns the number of degrees from from to to inclusive.
// It saturates at math.MaxUint64 rather than overflowing.
func Count(from, to int) uint64 {
	if from > to {
		from, to = to, from
	}
	n := uint64(to) - uint64(from)
	if n == math.MaxUint64 {
		return n
	}
	return n + 1
}

// Range resolves every degree from from to to inclusive, descending when from > to.
// Both ends must pass CheckDegree and the range may hold at most MaxRange degrees.
func (s *Scale) Range(from, to int) ([]Degree, error) {
	if err := CheckDegree(from); err != nil {
		return nil, err
	}
	if err := CheckDegree(to); err != nil {
		return nil, err
	}
	n := Count(from, to)
	if n > MaxRange {
		return nil, fmt.Errorf("%w: %d degrees requested, at most %d", ErrRange, n, MaxRange)
	}

	dir := 1
	if from > to {
		dir = -1
	}
	out := make([]Degree, 0, n)
	for d := from; ; d += dir {
		step := s.StepAt(d)
		out = append(out, Degree{
			Degree:    d,
			Step:      step,
			Frequency: s.system.FrequencyOf(step),
		})
		if d == to {
			break
		}
	}
	return out, nil
}

// Steps returns the memoized degree to step table
func (s *Scale) Steps() StepTable {
	return s.steps.View()
}

func (s *Scale) String() string {
	if s.name != "" {
		return s.name
	}
	return fmt.Sprintf("Scale: %d - %s", s.tonic, s.mode)
}

// floorDiv rounds towards negative infinity so degrees below the tonic
// land in the octave beneath it
func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
