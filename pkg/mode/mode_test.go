package mode

import (
	"errors"
	"testing"

	"github.com/james-see/sol/pkg/tuning"
)

func TestNew(t *testing.T) {
	m, err := New(2, 2, 1, 2, 2, 2, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.Len() != 7 {
		t.Errorf("Len() = %d, want 7", m.Len())
	}
	if m.Span() != 12 {
		t.Errorf("Span() = %d, want 12", m.Span())
	}
	if m.String() != "[2,2,1,2,2,2,1]" {
		t.Errorf("String() = %q, want %q", m.String(), "[2,2,1,2,2,2,1]")
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name      string
		intervals []int
		want      error
	}{
		{"empty", nil, ErrEmpty},
		{"zero interval", []int{2, 0, 1}, ErrInterval},
		{"negative interval", []int{2, -1}, ErrInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.intervals...)
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%v) error = %v, want %v", tt.intervals, err, tt.want)
			}
			if !errors.Is(err, tuning.ErrConfig) {
				t.Errorf("New(%v) error = %v, want ErrConfig", tt.intervals, err)
			}
			if !m.IsZero() {
				t.Errorf("New(%v) should return the zero mode on error", tt.intervals)
			}
		})
	}
}

func TestIntervalsAreCopied(t *testing.T) {
	src := []int{2, 1, 2}
	m, err := New(src...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	src[0] = 9
	if m.Interval(0) != 2 {
		t.Errorf("Interval(0) = %d after mutating input, want 2", m.Interval(0))
	}

	out := m.Intervals()
	out[1] = 9
	if m.Interval(1) != 1 {
		t.Errorf("Interval(1) = %d after mutating Intervals(), want 1", m.Interval(1))
	}
}

func TestChurchModes(t *testing.T) {
	tests := []struct {
		mode Mode
		want []int
	}{
		{Ionian, []int{2, 2, 1, 2, 2, 2, 1}},
		{Dorian, []int{2, 1, 2, 2, 2, 1, 2}},
		{Phrygian, []int{1, 2, 2, 2, 1, 2, 2}},
		{Lydian, []int{2, 2, 2, 1, 2, 2, 1}},
		{Mixolydian, []int{2, 2, 1, 2, 2, 1, 2}},
		{Aeolian, []int{2, 1, 2, 2, 1, 2, 2}},
		{Locrian, []int{1, 2, 2, 1, 2, 2, 2}},
		{Harmonic, []int{2, 1, 2, 2, 1, 3, 1}},
		{Melodic, []int{2, 1, 2, 2, 2, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.Name(), func(t *testing.T) {
			want, _ := New(tt.want...)
			if !tt.mode.Equal(want) {
				t.Errorf("%s = %s, want %s", tt.mode.Name(), tt.mode.FormatIntervals(), want.FormatIntervals())
			}
			if tt.mode.Span() != 12 {
				t.Errorf("%s Span() = %d, want 12", tt.mode.Name(), tt.mode.Span())
			}
		})
	}
}

func TestRotate(t *testing.T) {
	if !Diatonic.Rotate(7).Equal(Ionian) {
		t.Error("Rotate(7) should wrap to ionian")
	}
	if !Diatonic.Rotate(-1).Equal(Locrian) {
		t.Errorf("Rotate(-1) = %s, want locrian", Diatonic.Rotate(-1).FormatIntervals())
	}
	if !Dorian.Rotate(-1).Equal(Ionian) {
		t.Error("dorian Rotate(-1) should be ionian")
	}
	if !(Mode{}).Rotate(3).IsZero() {
		t.Error("zero mode Rotate() should stay zero")
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 2},
		{3, 5},
		{7, 12},
	}
	for _, tt := range tests {
		if got := Ionian.Offset(tt.n); got != tt.want {
			t.Errorf("Offset(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"ionian", Ionian},
		{"Dorian", Dorian},
		{" LOCRIAN ", Locrian},
		{"aeolean", Aeolian},
		{"minor", Aeolian},
		{"major", Ionian},
		{"harmonic", Harmonic},
	}

	for _, tt := range tests {
		got, err := Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.name, err)
		}
		if !got.Equal(tt.want) || got.Name() != tt.want.Name() {
			t.Errorf("Lookup(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}

	if _, err := Lookup("bebop"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Lookup(bebop) error = %v, want ErrUnknown", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 10 {
		t.Errorf("Names() returned %d names, want 10", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"dorian", []int{2, 1, 2, 2, 2, 1, 2}},
		{"2,1,2,2,1,3,1", []int{2, 1, 2, 2, 1, 3, 1}},
		{"[1, 2, 4, 1, 4]", []int{1, 2, 4, 1, 4}},
		{"5", []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			want, _ := New(tt.want...)
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got.FormatIntervals(), want.FormatIntervals())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEmpty},
		{"[]", ErrEmpty},
		{"2,0,1", ErrInterval},
		{"2,x,1", ErrUnknown},
		{"bebop", ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if _, err := Parse(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}
