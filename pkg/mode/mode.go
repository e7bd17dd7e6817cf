// Package mode provides interval patterns for scales
package mode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/james-see/sol/pkg/tuning"
)

// Mode errors. ErrEmpty and ErrInterval also match tuning.ErrConfig.
var (
	ErrEmpty    = fmt.Errorf("%w: mode has no intervals", tuning.ErrConfig)
	ErrInterval = fmt.Errorf("%w: mode intervals must be positive", tuning.ErrConfig)
	ErrUnknown  = errors.New("unknown mode")
)

// Mode is an immutable sequence of step intervals spanning one octave
type Mode struct {
	name      string
	intervals []int
	span      int
}

// New creates an unnamed mode
func New(intervals ...int) (Mode, error) {
	return Named("", intervals...)
}

// Named creates a mode with a name
func Named(name string, intervals ...int) (Mode, error) {
	if len(intervals) == 0 {
		return Mode{}, ErrEmpty
	}

	m := Mode{
		name:      name,
		intervals: make([]int, len(intervals)),
	}
	for i, iv := range intervals {
		if iv <= 0 {
			return Mode{}, fmt.Errorf("%w: interval %d is %d", ErrInterval, i, iv)
		}
		m.intervals[i] = iv
		m.span += iv
	}
	return m, nil
}

// MustNamed is like Named but panics on error
func MustNamed(name string, intervals ...int) Mode {
	m, err := Named(name, intervals...)
	if err != nil {
		panic(err)
	}
	return m
}

// IsZero reports whether the mode has no intervals
func (m Mode) IsZero() bool {
	return len(m.intervals) == 0
}

// Name returns the optional mode name
func (m Mode) Name() string {
	return m.name
}

// Len returns the number of scale steps per octave
func (m Mode) Len() int {
	return len(m.intervals)
}

// Span returns the size of one octave in system steps
func (m Mode) Span() int {
	return m.span
}

// Interval returns the i-th interval
func (m Mode) Interval(i int) int {
	return m.intervals[i]
}

// Intervals returns a copy of the intervals
func (m Mode) Intervals() []int {
	out := make([]int, len(m.intervals))
	copy(out, m.intervals)
	return out
}

// Offset returns the sum of the first n intervals
func (m Mode) Offset(n int) int {
	sum := 0
	for _, iv := range m.intervals[:n] {
		sum += iv
	}
	return sum
}

// Rotate returns the mode starting n intervals later. Negative n rotates backwards.
func (m Mode) Rotate(n int) Mode {
	if m.IsZero() {
		return m
	}
	n = floorMod(n, len(m.intervals))
	out := Mode{
		intervals: make([]int, 0, len(m.intervals)),
		span:      m.span,
	}
	out.intervals = append(out.intervals, m.intervals[n:]...)
	out.intervals = append(out.intervals, m.intervals[:n]...)
	return out
}

// WithName returns a copy of the mode carrying name
func (m Mode) WithName(name string) Mode {
	m.name = name
	return m
}

// Equal reports whether two modes have the same intervals
func (m Mode) Equal(o Mode) bool {
	if len(m.intervals) != len(o.intervals) {
		return false
	}
	for i := range m.intervals {
		if m.intervals[i] != o.intervals[i] {
			return false
		}
	}
	return true
}

// FormatIntervals renders the intervals as a comma separated list
func (m Mode) FormatIntervals() string {
	parts := make([]string, len(m.intervals))
	for i, iv := range m.intervals {
		parts[i] = strconv.Itoa(iv)
	}
	return strings.Join(parts, ",")
}

func (m Mode) String() string {
	if m.name != "" {
		return m.name
	}
	return "[" + m.FormatIntervals() + "]"
}

func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
