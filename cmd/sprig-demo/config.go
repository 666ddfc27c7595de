package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/sprig"
	"github.com/iw2rmb/sprig/buffer"
	"github.com/iw2rmb/sprig/input"
)

// FormConfig describes the demo form. It is read from a TOML file given with
// --config; empty or missing keys take their defaults.
type FormConfig struct {
	// Version is the sprig version that wrote the file. Empty is accepted.
	Version string `toml:"version,omitempty"`

	Title  string        `toml:"title"`
	Fields []FieldConfig `toml:"fields"`
	List   ListConfig    `toml:"list"`
	Cursor CursorConfig  `toml:"cursor"`
	Log    LogConfig     `toml:"log"`
}

type FieldConfig struct {
	Label       string `toml:"label"`
	Placeholder string `toml:"placeholder"`
	Text        string `toml:"text"`
	Width       int    `toml:"width"`
}

type ListConfig struct {
	Title  string   `toml:"title"`
	Items  []string `toml:"items"`
	Height int      `toml:"height"`
}

type CursorConfig struct {
	// Shape is one of "underline", "block" or "line".
	Shape   string `toml:"shape"`
	Bold    bool   `toml:"bold"`
	Blink   bool   `toml:"blink"`
	BlinkMS int    `toml:"blink_ms"`
}

type LogConfig struct {
	Height int  `toml:"height"`
	Debug  bool `toml:"debug"`
}

func DefaultFormConfig() FormConfig {
	return FormConfig{
		Title: "sprig demo",
		Fields: []FieldConfig{
			{Label: "Name", Placeholder: "your name", Width: 32},
			{Label: "Branch", Placeholder: "feature/...", Width: 32},
		},
		List: ListConfig{
			Title:  "Target",
			Items:  []string{"main", "develop", "release"},
			Height: 3,
		},
		Cursor: CursorConfig{
			Shape:   buffer.ShapeUnderline.String(),
			BlinkMS: int(input.DefaultBlinkInterval / time.Millisecond),
		},
		Log: LogConfig{Height: 4},
	}
}

// LoadFormConfig reads path and fills in defaults for empty values. An empty
// path returns the defaults.
func LoadFormConfig(path string) (FormConfig, error) {
	if path == "" {
		return DefaultFormConfig(), nil
	}

	var cfg FormConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// SaveFormConfig writes cfg as TOML to path, stamped with the sprig version.
func SaveFormConfig(path string, cfg FormConfig) error {
	cfg.Version = sprig.Version()
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (c *FormConfig) applyDefaults() {
	def := DefaultFormConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if len(c.Fields) == 0 {
		c.Fields = def.Fields
	}
	if c.List.Title == "" {
		c.List.Title = def.List.Title
	}
	if len(c.List.Items) == 0 {
		c.List.Items = def.List.Items
	}
	if c.List.Height == 0 {
		c.List.Height = def.List.Height
	}
	if c.Cursor.Shape == "" {
		c.Cursor.Shape = def.Cursor.Shape
	}
	if c.Cursor.BlinkMS == 0 {
		c.Cursor.BlinkMS = def.Cursor.BlinkMS
	}
	if c.Log.Height == 0 {
		c.Log.Height = def.Log.Height
	}
}

func (c FormConfig) validate() error {
	if c.Version != "" && !sprig.Compatible(c.Version) {
		return fmt.Errorf("version %q is not compatible with sprig %s", c.Version, sprig.Version())
	}
	for i, f := range c.Fields {
		if f.Label == "" {
			return fmt.Errorf("field %d: missing label", i+1)
		}
		if f.Width < 0 {
			return fmt.Errorf("field %q: negative width %d", f.Label, f.Width)
		}
	}
	if _, err := buffer.ParseShape(c.Cursor.Shape); err != nil {
		return err
	}
	if c.Cursor.BlinkMS < 0 {
		return fmt.Errorf("negative blink_ms %d", c.Cursor.BlinkMS)
	}
	return nil
}

func (c CursorConfig) blinkInterval() time.Duration {
	return time.Duration(c.BlinkMS) * time.Millisecond
}
