package systems

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/james-see/sol/pkg/tuning"
)

func TestResolveNoteName(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"A0", 0},
		{"A4", 48},
		{"C4", 51},
		{"A#0", 1},
		{"Ab0", -1},
		{"B0", 2},
		{"G9", 118},
		{"C##4", 53},
		{"Dbb3", 39},
		{"E10", 127},
		{"A004", 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default.ResolveNoteName(tt.name)
			if err != nil {
				t.Fatalf("ResolveNoteName(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ResolveNoteName(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveNoteNameInvalid(t *testing.T) {
	names := []string{
		"H4",
		"C",
		"C#b4",
		"4C",
		"",
		"c4",
		"C4 ",
		" C4",
		"C#",
		"Cx4",
		"C4b",
		"C99999999999999999999999",
		"A999999999999999999",
		"A768614336404564651",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := Default.ResolveNoteName(name)
			if !errors.Is(err, tuning.ErrInvalidNoteName) {
				t.Errorf("ResolveNoteName(%q) error = %v, want ErrInvalidNoteName", name, err)
			}
		})
	}
}

func TestResolveNoteNameOctaveLimit(t *testing.T) {
	top := math.MaxInt / Divisions

	name := "A" + strconv.Itoa(top)
	step, err := Default.ResolveNoteName(name)
	if err != nil {
		t.Fatalf("ResolveNoteName(%q) error = %v", name, err)
	}
	if step != Divisions*top {
		t.Errorf("ResolveNoteName(%q) = %d, want %d", name, step, Divisions*top)
	}

	over := []string{
		"A" + strconv.Itoa(top+1),
		"G" + strconv.Itoa(top),
		"A########" + strconv.Itoa(top),
	}
	for _, name := range over {
		if _, err := Default.ResolveNoteName(name); !errors.Is(err, tuning.ErrInvalidNoteName) {
			t.Errorf("ResolveNoteName(%q) error = %v, want ErrInvalidNoteName", name, err)
		}
	}

	name = "Abbb" + strconv.Itoa(top)
	if step, err := Default.ResolveNoteName(name); err != nil || step != Divisions*top-3 {
		t.Errorf("ResolveNoteName(%q) = %d, %v, want %d", name, step, err, Divisions*top-3)
	}
}

func TestTwelveToneFrequencies(t *testing.T) {
	tests := []struct {
		note string
		want float64
	}{
		{"A0", 27.5},
		{"A1", 55},
		{"A4", 440},
		{"C4", 523.2511306011972},
	}

	for _, tt := range tests {
		freq, err := tuning.FrequencyOf(Default, tuning.NameKey(tt.note))
		if err != nil {
			t.Fatalf("FrequencyOf(%q) error = %v", tt.note, err)
		}
		if math.Abs(freq-tt.want) > 1e-9 {
			t.Errorf("FrequencyOf(%q) = %v, want %v", tt.note, freq, tt.want)
		}
	}
}

func TestNewTwelveTone(t *testing.T) {
	sys, err := NewTwelveTone(0)
	if err != nil {
		t.Fatalf("NewTwelveTone() error = %v", err)
	}
	if sys.Root() != tuning.StandardA0 {
		t.Errorf("Root() = %v, want %v", sys.Root(), tuning.StandardA0)
	}
	if sys.Divisions() != Divisions || sys.Octaves() != Octaves {
		t.Errorf("system = %v/%v, want %d/%d", sys.Divisions(), sys.Octaves(), Divisions, Octaves)
	}

	baroque, err := NewTwelveTone(25.6875)
	if err != nil {
		t.Fatalf("NewTwelveTone() error = %v", err)
	}
	if got := baroque.FrequencyOf(48); math.Abs(got-411) > 1e-9 {
		t.Errorf("FrequencyOf(48) = %v, want 411", got)
	}

	if _, err := NewTwelveTone(-1); !errors.Is(err, tuning.ErrConfig) {
		t.Errorf("NewTwelveTone(-1) error = %v, want ErrConfig", err)
	}
}

func TestNoteName(t *testing.T) {
	tests := []struct {
		step int
		want string
	}{
		{0, "A0"},
		{1, "A#0"},
		{3, "C0"},
		{48, "A4"},
		{51, "C4"},
		{61, "A#5"},
		{62, "B5"},
	}

	for _, tt := range tests {
		got, err := NoteName(tt.step)
		if err != nil {
			t.Fatalf("NoteName(%d) error = %v", tt.step, err)
		}
		if got != tt.want {
			t.Errorf("NoteName(%d) = %q, want %q", tt.step, got, tt.want)
		}
	}

	if _, err := NoteName(-1); !errors.Is(err, tuning.ErrInvalidNoteName) {
		t.Errorf("NoteName(-1) error = %v, want ErrInvalidNoteName", err)
	}
}

func TestNoteNameRoundTrip(t *testing.T) {
	for step := 0; step < 120; step++ {
		name, err := NoteName(step)
		if err != nil {
			t.Fatalf("NoteName(%d) error = %v", step, err)
		}
		got, err := Default.ResolveNoteName(name)
		if err != nil {
			t.Fatalf("ResolveNoteName(%q) error = %v", name, err)
		}
		if got != step {
			t.Errorf("ResolveNoteName(NoteName(%d)) = %d", step, got)
		}
	}
}

func TestMIDINote(t *testing.T) {
	tests := []struct {
		step int
		want uint8
	}{
		{0, 21},
		{48, 69},
		{51, 72},
		{-21, 0},
		{106, 127},
	}

	for _, tt := range tests {
		n, err := MIDINote(tt.step)
		if err != nil {
			t.Fatalf("MIDINote(%d) error = %v", tt.step, err)
		}
		if uint8(n) != tt.want {
			t.Errorf("MIDINote(%d) = %d, want %d", tt.step, uint8(n), tt.want)
		}
		if back := StepOfMIDINote(n); back != tt.step {
			t.Errorf("StepOfMIDINote(%d) = %d, want %d", uint8(n), back, tt.step)
		}
	}

	for _, step := range []int{-22, 107} {
		if _, err := MIDINote(step); !errors.Is(err, ErrNoMIDINote) {
			t.Errorf("MIDINote(%d) error = %v, want ErrNoMIDINote", step, err)
		}
	}
}
