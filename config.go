package blueberry

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the window and frame a game runs with. Zero fields take
// the defaults from DefaultConfig.
type Config struct {
	Title  string `json:"title" yaml:"title"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	// Scale is the window pixels per frame pixel.
	Scale int `json:"scale" yaml:"scale"`
	// TPS is updates per second.
	TPS           int    `json:"tps" yaml:"tps"`
	AssetDir      string `json:"asset_dir" yaml:"asset_dir"`
	ScreenshotDir string `json:"screenshot_dir" yaml:"screenshot_dir"`
	Debug         bool   `json:"debug" yaml:"debug"`
}

// DefaultConfig returns a 240×160 frame shown at 4× and updated 60 times a
// second.
func DefaultConfig() Config {
	return Config{
		Title:         "blueberry",
		Width:         240,
		Height:        160,
		Scale:         4,
		TPS:           60,
		AssetDir:      DefaultAssetDir,
		ScreenshotDir: defaultScreenshotDir,
	}
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blueberry: open config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// ParseConfig decodes YAML config bytes.
func ParseConfig(data []byte) (*Config, error) {
	return DecodeConfig(bytes.NewReader(data))
}

// DecodeConfig reads YAML from r and fills unset fields with defaults.
// Unknown keys are rejected.
func DecodeConfig(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("blueberry: parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Scale == 0 {
		c.Scale = d.Scale
	}
	if c.TPS == 0 {
		c.TPS = d.TPS
	}
	if c.AssetDir == "" {
		c.AssetDir = d.AssetDir
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
}

// Validate rejects non-positive sizes, scales and rates.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("blueberry: config frame %dx%d: %w", c.Width, c.Height, ErrInvalidSize)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("blueberry: config scale %d: %w", c.Scale, ErrInvalidSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("blueberry: config tps %d must be positive", c.TPS)
	}
	return nil
}
