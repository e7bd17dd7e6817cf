package main

import (
	"github.com/james-see/sol/pkg/mode"
	"github.com/spf13/pflag"
)

// modeValue is a flag holding a mode name or interval list.
// Built-in names and interval lists are checked when the flag is parsed;
// other names are left for the configuration to resolve.
type modeValue struct {
	spec string
}

var _ pflag.Value = (*modeValue)(nil)

func (v *modeValue) String() string {
	return v.spec
}

func (v *modeValue) Set(s string) error {
	if _, err := mode.Parse(s); err != nil && !isPlainName(s) {
		return err
	}
	v.spec = s
	return nil
}

func (v *modeValue) Type() string {
	return "mode"
}

// isPlainName reports whether s could name a mode defined in a config file:
// a letter followed by letters, digits, dashes or underscores
func isPlainName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_'):
		default:
			return false
		}
	}
	return true
}
