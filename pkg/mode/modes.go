package mode

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Diatonic is the seven note major pattern all church modes rotate
var Diatonic = MustNamed("diatonic", 2, 2, 1, 2, 2, 2, 1)

// Church modes
var (
	Ionian     = Diatonic.Rotate(0).WithName("ionian")
	Dorian     = Diatonic.Rotate(1).WithName("dorian")
	Phrygian   = Diatonic.Rotate(2).WithName("phrygian")
	Lydian     = Diatonic.Rotate(3).WithName("lydian")
	Mixolydian = Diatonic.Rotate(4).WithName("mixolydian")
	Aeolian    = Diatonic.Rotate(5).WithName("aeolian")
	Locrian    = Diatonic.Rotate(6).WithName("locrian")
)

// Minor variants
var (
	Harmonic = MustNamed("harmonic", 2, 1, 2, 2, 1, 3, 1)
	Melodic  = MustNamed("melodic", 2, 1, 2, 2, 2, 2, 1)
)

var registry = map[string]Mode{
	"diatonic":   Diatonic,
	"ionian":     Ionian,
	"dorian":     Dorian,
	"phrygian":   Phrygian,
	"lydian":     Lydian,
	"mixolydian": Mixolydian,
	"aeolian":    Aeolian,
	"locrian":    Locrian,
	"harmonic":   Harmonic,
	"melodic":    Melodic,
}

var aliases = map[string]string{
	"major":   "ionian",
	"minor":   "aeolian",
	"aeolean": "aeolian",
}

// Lookup returns a built-in mode by name, ignoring case
func Lookup(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	m, ok := registry[key]
	if !ok {
		return Mode{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return m, nil
}

// Names returns the built-in mode names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse accepts a built-in mode name or a comma separated interval list like "2,1,2,2,1,3,1"
func Parse(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Mode{}, ErrEmpty
	}
	if !strings.ContainsAny(s, "[,0123456789") {
		return Lookup(s)
	}

	fields := strings.Split(strings.Trim(s, "[]"), ",")
	intervals := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		iv, err := strconv.Atoi(f)
		if err != nil {
			return Mode{}, fmt.Errorf("%w: %q is not an interval", ErrUnknown, f)
		}
		intervals = append(intervals, iv)
	}
	return New(intervals...)
}
