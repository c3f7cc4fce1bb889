package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/candleterm/chart"
	"github.com/rustyeddy/candleterm/term"
)

// Config is the complete application configuration.
type Config struct {
	Chart  ChartConfig  `json:"chart" yaml:"chart"`
	Volume VolumeConfig `json:"volume" yaml:"volume"`
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}

// ChartConfig covers the price pane and axis.
type ChartConfig struct {
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Mode         string `json:"mode,omitempty" yaml:"mode,omitempty"` // fit | fixed | price
	BullColor    string `json:"bull_color,omitempty" yaml:"bull_color,omitempty"`
	BearColor    string `json:"bear_color,omitempty" yaml:"bear_color,omitempty"`
	MarginTop    int    `json:"margin_top" yaml:"margin_top"`
	MarginLeft   int    `json:"margin_left" yaml:"margin_left"`
	MarginRight  int    `json:"margin_right" yaml:"margin_right"`
	MarginBottom int    `json:"margin_bottom" yaml:"margin_bottom"`

	RangeStart *int     `json:"range_start,omitempty" yaml:"range_start,omitempty"`
	RangeEnd   *int     `json:"range_end,omitempty" yaml:"range_end,omitempty"`
	PriceMin   *float64 `json:"price_min,omitempty" yaml:"price_min,omitempty"`
	PriceMax   *float64 `json:"price_max,omitempty" yaml:"price_max,omitempty"`

	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Highlights is an ordered list; earlier entries win row conflicts.
	Highlights []HighlightConfig `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// HighlightConfig pins a price to a colored axis label.
type HighlightConfig struct {
	Price float64 `json:"price" yaml:"price"`
	Color string  `json:"color" yaml:"color"`
}

// VolumeConfig covers the volume pane.
type VolumeConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Height    int    `json:"height" yaml:"height"`
	FillChar  string `json:"fill_char,omitempty" yaml:"fill_char,omitempty"`
	BullColor string `json:"bull_color,omitempty" yaml:"bull_color,omitempty"`
	BearColor string `json:"bear_color,omitempty" yaml:"bear_color,omitempty"`
}

// FetchConfig covers the exchange fetcher defaults.
type FetchConfig struct {
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Symbol   string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Interval string `json:"interval,omitempty" yaml:"interval,omitempty"`
	Limit    int    `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// StoreConfig covers the snapshot database.
type StoreConfig struct {
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks everything the renderer would otherwise trip over at
// configuration time: mode names, color syntax, margins, ranges.
func (c *Config) Validate() error {
	if _, err := chart.ParseScalingMode(c.Chart.Mode); err != nil {
		return err
	}
	for _, col := range []string{c.Chart.BullColor, c.Chart.BearColor, c.Volume.BullColor, c.Volume.BearColor} {
		if col == "" {
			continue
		}
		if _, err := term.Parse(col); err != nil {
			return err
		}
	}
	for _, h := range c.Chart.Highlights {
		if _, err := term.Parse(h.Color); err != nil {
			return fmt.Errorf("highlight %v: %w", h.Price, err)
		}
	}
	if c.Chart.MarginTop < 0 || c.Chart.MarginLeft < 0 || c.Chart.MarginRight < 0 || c.Chart.MarginBottom < 0 {
		return fmt.Errorf("margins must be non-negative")
	}
	if c.Chart.PriceMin != nil && c.Chart.PriceMax != nil && *c.Chart.PriceMin >= *c.Chart.PriceMax {
		return fmt.Errorf("price_min %v must be below price_max %v", *c.Chart.PriceMin, *c.Chart.PriceMax)
	}
	if (c.Chart.RangeStart == nil) != (c.Chart.RangeEnd == nil) {
		return fmt.Errorf("range_start and range_end must be set together")
	}
	if c.Volume.Enabled && c.Volume.Height < 1 {
		return fmt.Errorf("volume.height must be at least 1")
	}
	if n := len([]rune(c.Volume.FillChar)); n > 1 {
		return fmt.Errorf("volume.fill_char must be a single character")
	}
	if c.Fetch.Limit < 0 {
		return fmt.Errorf("fetch.limit must be non-negative")
	}
	return nil
}

// SaveToFile writes the configuration, format chosen by extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			Mode:      "fit",
			MarginTop: 1,
		},
		Volume: VolumeConfig{
			Enabled: true,
			Height:  5,
		},
		Fetch: FetchConfig{
			BaseURL:  "https://api.binance.com",
			Interval: "1h",
			Limit:    500,
		},
		Store: StoreConfig{
			DBPath: "./candleterm.sqlite",
		},
	}
}
