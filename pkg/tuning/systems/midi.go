package systems

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

// MIDIOffset is the MIDI key number of step 0 (A0)
const MIDIOffset = 21

// ErrNoMIDINote is returned for steps outside the MIDI key range
var ErrNoMIDINote = errors.New("step has no MIDI note")

// MIDINote converts a twelve tone step into a MIDI key number
func MIDINote(step int) (midi.Note, error) {
	key := step + MIDIOffset
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: step %d maps to key %d (max 127)", ErrNoMIDINote, step, key)
	}
	return midi.Note(uint8(key)), nil
}

// StepOfMIDINote converts a MIDI key number into a twelve tone step
func StepOfMIDINote(n midi.Note) int {
	return int(uint8(n)) - MIDIOffset
}
