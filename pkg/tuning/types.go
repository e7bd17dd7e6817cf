// Package tuning converts steps and note names into frequencies
package tuning

import (
	"errors"

	"github.com/james-see/sol/internal/memo"
)

// StandardA0 is the frequency of A0 for A440 tuning
const StandardA0 = 27.5

// Error kinds
var (
	ErrConfig          = errors.New("invalid configuration")
	ErrInvalidNoteName = errors.New("invalid note name")
	ErrUnsupported     = errors.New("unsupported operation")
	ErrReadOnly        = memo.ErrReadOnly
)

// System converts steps, and optionally note names, into frequencies.
// Implementations that do not understand note names return ErrUnsupported
// from ResolveNoteName.
type System interface {
	FrequencyOf(step int) float64
	ResolveNoteName(name string) (int, error)
}

// PitchTable is the read-only step to frequency table of a System
type PitchTable = memo.View[int, float64]
