package tuning

import (
	"fmt"
	"math"
	"strconv"

	"github.com/james-see/sol/internal/memo"
)

// EqualSystem divides a span of octaves into equal steps.
// Step 0 sounds at the root frequency.
type EqualSystem struct {
	octaves   float64
	divisions float64
	root      float64
	name      string

	pitches *memo.Table[int, float64]
}

// NewEqualSystem creates an equal division system. A zero root selects StandardA0.
func NewEqualSystem(octaves, divisions, root float64, name string) (*EqualSystem, error) {
	if !(octaves > 0) || !(divisions > 0) {
		return nil, fmt.Errorf("%w: octaves and divisions must be positive (got %v/%v)", ErrConfig, octaves, divisions)
	}
	if root < 0 || math.IsNaN(root) || math.IsInf(root, 0) {
		return nil, fmt.Errorf("%w: root must be a positive frequency (got %v)", ErrConfig, root)
	}
	if root == 0 {
		root = StandardA0
	}

	return &EqualSystem{
		octaves:   octaves,
		divisions: divisions,
		root:      root,
		name:      name,
		pitches:   memo.New[int, float64]("pitch"),
	}, nil
}

// Octaves returns the number of octaves the divisions span
func (s *EqualSystem) Octaves() float64 {
	return s.octaves
}

// Divisions returns the number of steps per span
func (s *EqualSystem) Divisions() float64 {
	return s.divisions
}

// Root returns the frequency of step 0
func (s *EqualSystem) Root() float64 {
	return s.root
}

// Name returns the optional system name
func (s *EqualSystem) Name() string {
	return s.name
}

// FrequencyOf returns the frequency in Hz of a step
func (s *EqualSystem) FrequencyOf(step int) float64 {
	return s.pitches.Lookup(step, func() float64 {
		return math.Pow(1+s.octaves, float64(step)/s.divisions) * s.root
	})
}

// ResolveNoteName is not available on a bare equal division system
func (s *EqualSystem) ResolveNoteName(name string) (int, error) {
	return 0, fmt.Errorf("%w: %s cannot resolve note name %q", ErrUnsupported, s, name)
}

// Pitches returns the memoized step to frequency table
func (s *EqualSystem) Pitches() PitchTable {
	return s.pitches.View()
}

func (s *EqualSystem) String() string {
	if s.name != "" {
		return s.name
	}
	return "System: " + formatNumber(s.divisions) + "/" + formatNumber(s.octaves)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
