// Package config loads tuning systems, modes and scale defaults from TOML
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/james-see/sol/pkg/mode"
	"github.com/james-see/sol/pkg/scale"
	"github.com/james-see/sol/pkg/tuning"
	"github.com/james-see/sol/pkg/tuning/systems"
)

// TwelveTone is the name of the built-in twelve tone system
const TwelveTone = "12tet"

// ErrUnknownSystem is returned for system names that are not configured
var ErrUnknownSystem = errors.New("unknown system")

// Defaults apply to lookups that leave a field empty
type Defaults struct {
	System string  `toml:"system"`
	Mode   string  `toml:"mode"`
	Tonic  string  `toml:"tonic"`
	Root   float64 `toml:"root"` // root of the built-in twelve tone system
}

// System describes an equal division tuning system
type System struct {
	Octaves   float64 `toml:"octaves"`
	Divisions float64 `toml:"divisions"`
	Root      float64 `toml:"root"`
	Name      string  `toml:"name"`
}

// Config is the decoded configuration file. It also acts as the catalog
// the CLI, API and TUI resolve system and mode names through.
type Config struct {
	Defaults Defaults          `toml:"defaults"`
	Systems  map[string]System `toml:"systems"`
	Modes    map[string][]int  `toml:"modes"`

	once    sync.Once
	err     error
	systems map[string]tuning.System
	modes   map[string]mode.Mode
}

// Default returns the configuration used when no file is given
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and validates a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a configuration. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	c := &Config{}
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Defaults.System == "" {
		c.Defaults.System = TwelveTone
	}
	if c.Defaults.Mode == "" {
		c.Defaults.Mode = "ionian"
	}
	if c.Defaults.Tonic == "" {
		c.Defaults.Tonic = scale.DefaultTonic
	}
	if c.Defaults.Root == 0 {
		c.Defaults.Root = tuning.StandardA0
	}
}

// Validate builds every configured system and mode and checks the defaults
func (c *Config) Validate() error {
	if err := c.build(); err != nil {
		return err
	}
	if _, err := c.System(c.Defaults.System); err != nil {
		return fmt.Errorf("defaults.system: %w", err)
	}
	if _, err := c.Mode(c.Defaults.Mode); err != nil {
		return fmt.Errorf("defaults.mode: %w", err)
	}
	if _, err := c.Scale("", "", "", false); err != nil {
		return fmt.Errorf("defaults.tonic: %w", err)
	}
	return nil
}

func (c *Config) build() error {
	c.once.Do(func() {
		c.err = c.buildCatalog()
	})
	return c.err
}

func (c *Config) buildCatalog() error {
	root := c.Defaults.Root
	if root == 0 {
		root = tuning.StandardA0
	}
	tts, err := systems.NewTwelveTone(root)
	if err != nil {
		return fmt.Errorf("defaults.root: %w", err)
	}

	built := map[string]tuning.System{TwelveTone: tts}
	for name, sc := range c.Systems {
		key := normalize(name)
		if _, ok := built[key]; ok {
			return fmt.Errorf("systems.%s: %w: name already defined", name, tuning.ErrConfig)
		}
		label := sc.Name
		if label == "" {
			label = name
		}
		sys, err := tuning.NewEqualSystem(sc.Octaves, sc.Divisions, sc.Root, label)
		if err != nil {
			return fmt.Errorf("systems.%s: %w", name, err)
		}
		built[key] = sys
	}

	modes := make(map[string]mode.Mode, len(c.Modes))
	for name, intervals := range c.Modes {
		key := normalize(name)
		if _, err := mode.Lookup(key); err == nil {
			return fmt.Errorf("modes.%s: %w: name already defined", name, tuning.ErrConfig)
		}
		if _, ok := modes[key]; ok {
			return fmt.Errorf("modes.%s: %w: name already defined", name, tuning.ErrConfig)
		}
		m, err := mode.Named(name, intervals...)
		if err != nil {
			return fmt.Errorf("modes.%s: %w", name, err)
		}
		modes[key] = m
	}

	c.systems = built
	c.modes = modes
	return nil
}

// System returns a configured system by name. An empty name selects the default.
// Systems are built once and shared by every scale using them.
func (c *Config) System(name string) (tuning.System, error) {
	if err := c.build(); err != nil {
		return nil, err
	}
	if name == "" {
		name = c.Defaults.System
	}
	sys, ok := c.systems[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return sys, nil
}

// Mode resolves a configured mode name, a built-in mode name or an interval list.
// An empty spec selects the default mode.
func (c *Config) Mode(spec string) (mode.Mode, error) {
	if err := c.build(); err != nil {
		return mode.Mode{}, err
	}
	if spec == "" {
		spec = c.Defaults.Mode
	}
	if m, ok := c.modes[normalize(spec)]; ok {
		return m, nil
	}
	return mode.Parse(spec)
}

// Scale builds a scale from names, falling back to the defaults for empty arguments.
// The tonic may be a step number or a note name.
func (c *Config) Scale(modeSpec, tonic, systemName string, pitchMode bool) (*scale.Scale, error) {
	m, err := c.Mode(modeSpec)
	if err != nil {
		return nil, err
	}
	sys, err := c.System(systemName)
	if err != nil {
		return nil, err
	}
	if tonic == "" {
		tonic = c.Defaults.Tonic
	}
	return scale.New(scale.Config{
		Mode:      m,
		Tonic:     tuning.ParseKey(tonic),
		System:    sys,
		PitchMode: pitchMode,
	})
}

// SystemNames returns every system name in sorted order
func (c *Config) SystemNames() []string {
	if err := c.build(); err != nil {
		return nil
	}
	names := make([]string, 0, len(c.systems))
	for name := range c.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModeNames returns built-in and configured mode names in sorted order
func (c *Config) ModeNames() []string {
	if err := c.build(); err != nil {
		return nil
	}
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, name := range mode.Names() {
		seen[name] = true
		names = append(names, name)
	}
	for name := range c.modes {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
