package systems

import (
	"fmt"
	"strconv"

	"github.com/james-see/sol/pkg/tuning"
)

// sharpNames spells each step of an A-based octave with sharps
var sharpNames = [Divisions]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// NoteName spells a step as a note name using sharps.
// Steps below A0 have no octave number and are rejected.
func NoteName(step int) (string, error) {
	if step < 0 {
		return "", fmt.Errorf("%w: step %d is below octave 0", tuning.ErrInvalidNoteName, step)
	}
	return sharpNames[step%Divisions] + strconv.Itoa(step/Divisions), nil
}
