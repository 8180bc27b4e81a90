package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/panes/internal/split"
)

const appName = "panes"

// DefaultStep is the keyboard nudge, in percent, when none is configured.
const DefaultStep = 5.0

type Config struct {
	Layout LayoutConfig `koanf:"layout"`
	Keys   KeysConfig   `koanf:"keys"`
}

// LayoutConfig describes the split layout.
type LayoutConfig struct {
	Direction string        `koanf:"direction"` // "horizontal" or "vertical" (default: horizontal)
	OnLimit   string        `koanf:"on_limit"`  // "freeze" or "saturate" (default: freeze)
	Panels    []PanelConfig `koanf:"panels"`
}

// PanelConfig describes one panel. Sizes are percentages; unset sizes use
// the engine defaults.
type PanelConfig struct {
	Title       string   `koanf:"title"`
	Body        []string `koanf:"body"`
	InitialSize *float64 `koanf:"initial_size"`
	MinSize     *float64 `koanf:"min_size"`
	MaxSize     *float64 `koanf:"max_size"`
}

// KeysConfig holds keyboard resizing settings.
type KeysConfig struct {
	Step float64 `koanf:"step"` // percent per key press (0 < step <= 50, default: 5)
}

// defaultPanels is used when no panels are configured.
var defaultPanels = []PanelConfig{
	{Title: "Left", Body: []string{"Drag a handle with the mouse,", "or press tab and use the arrows."}},
	{Title: "Center"},
	{Title: "Right"},
}

// Load reads the config files from the standard locations. Missing files
// are skipped; later files override earlier ones.
func Load() (*Config, error) {
	return LoadFrom(Paths()...)
}

// LoadFrom reads the given TOML files in order. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Paths returns the config file locations, lowest priority first.
func Paths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/panes/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// GetPanels returns the configured panels, or the default three panels when
// none are configured. Untitled panels are named by position.
func (c *Config) GetPanels() []PanelConfig {
	src := c.Layout.Panels
	if len(src) == 0 {
		src = defaultPanels
	}
	panels := make([]PanelConfig, len(src))
	copy(panels, src)
	for i := range panels {
		if panels[i].Title == "" {
			panels[i].Title = fmt.Sprintf("Panel %d", i+1)
		}
	}
	return panels
}

// Split converts the layout section into an engine configuration.
func (c *Config) Split() (split.Config, error) {
	dir, err := split.ParseDirection(c.Layout.Direction)
	if err != nil {
		return split.Config{}, err
	}

	panels := c.GetPanels()
	constraints := make([]split.Constraint, len(panels))
	for i, p := range panels {
		constraints[i] = split.Constraint{
			InitialSize: clonePercent(p.InitialSize),
			MinSize:     clonePercent(p.MinSize),
			MaxSize:     clonePercent(p.MaxSize),
		}
	}
	return split.Config{Direction: dir, Panels: constraints}, nil
}

// clonePercent copies an optional size so the engine never shares memory
// with the decoded config.
func clonePercent(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Policy returns the configured limit policy.
func (c *Config) Policy() (split.Policy, error) {
	return split.ParsePolicy(c.Layout.OnLimit)
}

// GetKeysConfig returns the keyboard configuration with defaults applied.
func (c *Config) GetKeysConfig() KeysConfig {
	cfg := c.Keys

	if cfg.Step <= 0 || cfg.Step > 50 {
		cfg.Step = DefaultStep
	}

	return cfg
}
