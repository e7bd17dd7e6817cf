package tuning

import (
	"fmt"
	"strconv"
	"strings"
)

type keyKind uint8

const (
	keyUnset keyKind = iota
	keyStep
	keyName
)

// Key addresses a pitch either by step or by note name.
// The zero Key is unset.
type Key struct {
	kind keyKind
	step int
	name string
}

// StepKey addresses a step directly
func StepKey(step int) Key {
	return Key{kind: keyStep, step: step}
}

// NameKey addresses a note name to be resolved by a System
func NameKey(name string) Key {
	return Key{kind: keyName, name: name}
}

// ParseKey treats integer literals as steps and anything else as a note name
func ParseKey(s string) Key {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return StepKey(n)
	}
	return NameKey(s)
}

// IsZero reports whether the key is unset
func (k Key) IsZero() bool {
	return k.kind == keyUnset
}

// IsName reports whether the key holds a note name
func (k Key) IsName() bool {
	return k.kind == keyName
}

// Resolve returns the step the key addresses in sys
func (k Key) Resolve(sys System) (int, error) {
	switch k.kind {
	case keyStep:
		return k.step, nil
	case keyName:
		if sys == nil {
			return 0, fmt.Errorf("%w: no system to resolve %q", ErrConfig, k.name)
		}
		return sys.ResolveNoteName(k.name)
	default:
		return 0, fmt.Errorf("%w: key is unset", ErrConfig)
	}
}

func (k Key) String() string {
	switch k.kind {
	case keyStep:
		return strconv.Itoa(k.step)
	case keyName:
		return k.name
	default:
		return "<unset>"
	}
}

// StepOf resolves a key to a step. Note names are parsed by sys.
func StepOf(sys System, k Key) (int, error) {
	return k.Resolve(sys)
}

// FrequencyOf resolves a key straight to a frequency in Hz
func FrequencyOf(sys System, k Key) (float64, error) {
	if sys == nil {
		return 0, fmt.Errorf("%w: no system to look up %s", ErrConfig, k)
	}
	step, err := k.Resolve(sys)
	if err != nil {
		return 0, err
	}
	return sys.FrequencyOf(step), nil
}
