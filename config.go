// SPDX-License-Identifier: Unlicense OR MIT

package recordbutton

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gioui.org/font"
	"gioui.org/unit"
	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the configurable surface of a button, as stored in a TOML
// or YAML file. Colors are hex strings, "#rrggbb" or "#rrggbbaa".
type Config struct {
	MinPressDuration Duration `toml:"min_press_duration" yaml:"min_press_duration"`
	RingWidth        float32  `toml:"ring_width" yaml:"ring_width"`
	RingColor        string   `toml:"ring_color" yaml:"ring_color"`
	CircleMargin     float32  `toml:"circle_margin" yaml:"circle_margin"`
	CircleColor      string   `toml:"circle_color" yaml:"circle_color"`
	TooltipText      string   `toml:"tooltip_text" yaml:"tooltip_text"`
	TooltipTextSize  float32  `toml:"tooltip_text_size" yaml:"tooltip_text_size"`
	TooltipColor     string   `toml:"tooltip_color" yaml:"tooltip_color"`
	TooltipTextColor string   `toml:"tooltip_text_color" yaml:"tooltip_text_color"`
	TooltipBold      bool     `toml:"tooltip_bold" yaml:"tooltip_bold"`
}

// Duration is a time.Duration stored as a string such as "750ms".
type Duration struct {
	time.Duration
}

// DefaultConfig returns the configuration matching RecordButton.
func DefaultConfig() Config {
	return Config{
		MinPressDuration: Duration{time.Second},
		RingWidth:        4,
		RingColor:        "#ffffff",
		CircleMargin:     0,
		CircleColor:      "#ff0000",
		TooltipText:      "Tap and Hold",
		TooltipTextSize:  12,
		TooltipColor:     "#ffffff",
		TooltipTextColor: "#000000cc",
	}
}

// LoadConfig reads a configuration file. The format is chosen by the
// file extension: .toml, .yaml or .yml. Settings missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("recordbutton: read config: %w", err)
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("recordbutton: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("recordbutton: parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("recordbutton: unsupported config format %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("recordbutton: %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig stores cfg in path, in the format given by the file
// extension.
func WriteConfig(path string, cfg Config) error {
	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("recordbutton: encode config: %w", err)
		}
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("recordbutton: encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("recordbutton: encode config: %w", err)
		}
	default:
		return fmt.Errorf("recordbutton: unsupported config format %q", ext)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("recordbutton: write config: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.MinPressDuration.Duration < 0:
		return errors.New("negative min_press_duration")
	case c.RingWidth < 0:
		return errors.New("negative ring_width")
	case c.CircleMargin < 0:
		return errors.New("negative circle_margin")
	case c.TooltipTextSize < 0:
		return errors.New("negative tooltip_text_size")
	}
	for _, col := range []struct{ key, val string }{
		{"ring_color", c.RingColor},
		{"circle_color", c.CircleColor},
		{"tooltip_color", c.TooltipColor},
		{"tooltip_text_color", c.TooltipTextColor},
	} {
		if _, err := ParseColor(col.val); err != nil {
			return fmt.Errorf("%s: %w", col.key, err)
		}
	}
	return nil
}

// Apply configures s and its button.
func (c Config) Apply(s *ButtonStyle) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.Button.MinPressDuration = c.MinPressDuration.Duration
	s.RingWidth = unit.Dp(c.RingWidth)
	s.RingColor, _ = ParseColor(c.RingColor)
	s.CircleMargin = unit.Dp(c.CircleMargin)
	s.CircleColor, _ = ParseColor(c.CircleColor)
	s.Tooltip.Text = c.TooltipText
	s.Tooltip.TextSize = unit.Sp(c.TooltipTextSize)
	s.Tooltip.Background, _ = ParseColor(c.TooltipColor)
	s.Tooltip.Color, _ = ParseColor(c.TooltipTextColor)
	s.Tooltip.Font.Weight = font.Normal
	if c.TooltipBold {
		s.Tooltip.Font.Weight = font.Bold
	}
	return nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}
