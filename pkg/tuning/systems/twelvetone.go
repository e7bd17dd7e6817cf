// Package systems provides concrete tuning systems
package systems

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/james-see/sol/pkg/tuning"
)

// Twelve tone constants
const (
	Divisions = 12
	Octaves   = 1
)

// Accidentals
const (
	Sharp = '#'
	Flat  = 'b'
)

// letterSteps holds each letter's distance in half steps from A
var letterSteps = map[byte]int{
	'A': 0,
	'B': 2,
	'C': 3,
	'D': 5,
	'E': 7,
	'F': 8,
	'G': 10,
}

var noteNameRe = regexp.MustCompile(`^([A-G])(#*|b*)(\d+)$`)

// Default is the shared twelve tone system tuned to A440
var Default = MustTwelveTone(tuning.StandardA0)

// TwelveTone is the standard twelve tone equal temperament with note name parsing.
// Octave numbers start at A, so A0 is step 0 and C4 is step 51.
type TwelveTone struct {
	*tuning.EqualSystem
}

// NewTwelveTone creates a twelve tone system. A zero root selects A0 = 27.5 Hz.
func NewTwelveTone(root float64) (*TwelveTone, error) {
	sys, err := tuning.NewEqualSystem(Octaves, Divisions, root, "")
	if err != nil {
		return nil, err
	}
	return &TwelveTone{EqualSystem: sys}, nil
}

// MustTwelveTone is like NewTwelveTone but panics on error
func MustTwelveTone(root float64) *TwelveTone {
	t, err := NewTwelveTone(root)
	if err != nil {
		panic(err)
	}
	return t
}

// ResolveNoteName converts a name like "C4", "F#3" or "Bbb2" into a step
func (t *TwelveTone) ResolveNoteName(name string) (int, error) {
	match := noteNameRe.FindStringSubmatch(name)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", tuning.ErrInvalidNoteName, name)
	}

	letter, ok := letterSteps[match[1][0]]
	if !ok {
		return 0, fmt.Errorf("%w: unknown letter in %q", tuning.ErrInvalidNoteName, name)
	}

	octave, err := strconv.Atoi(match[3])
	if err != nil || octave > (math.MaxInt-letter-len(match[2]))/Divisions {
		return 0, fmt.Errorf("%w: octave out of range in %q", tuning.ErrInvalidNoteName, name)
	}

	step := Divisions*octave + letter
	for i := 0; i < len(match[2]); i++ {
		if match[2][i] == Sharp {
			step++
		} else {
			step--
		}
	}
	return step, nil
}

func (t *TwelveTone) String() string {
	return "Twelve Tone (A0 = " + strconv.FormatFloat(t.Root(), 'f', -1, 64) + " Hz)"
}
