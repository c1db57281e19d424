package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"logoOverlay/matrixdisplay"
	"logoOverlay/overlay"
)

// Config holds the run settings loaded from disk. JSON files are accepted as
// YAML documents.
type Config struct {
	Source     string   `yaml:"source"`
	Text       string   `yaml:"text"`
	Font       string   `yaml:"font"`
	Size       float64  `yaml:"size"`
	Color      string   `yaml:"color"`
	Modes      []string `yaml:"modes"`
	X          *int     `yaml:"x,omitempty"`
	Y          *int     `yaml:"y,omitempty"`
	OutputDir  string   `yaml:"output_dir"`
	Preview    bool     `yaml:"preview"`
	Brightness *int     `yaml:"brightness,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Source: "teacher.png",
		Text:   "Joe Bloggs",
		Font:   overlay.DefaultFontFamily,
		Size:   280,
		Color:  "#fa1414fa",
		Modes:  []string{"beneath", "above", "overlay"},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config: open %q: %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return cfg, fmt.Errorf("load config: read %q: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config: parse %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %v", c.Size)
	}
	if _, err := overlay.ParseColor(c.Color); err != nil {
		return err
	}
	if _, err := overlay.ParseModes(strings.Join(c.Modes, ",")); err != nil {
		return err
	}
	if c.Brightness != nil {
		if err := matrixdisplay.CheckBrightness(*c.Brightness); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) options() (overlay.Options, error) {
	if err := c.validate(); err != nil {
		return overlay.Options{}, err
	}
	fill, err := overlay.ParseColor(c.Color)
	if err != nil {
		return overlay.Options{}, err
	}
	modes, err := overlay.ParseModes(strings.Join(c.Modes, ","))
	if err != nil {
		return overlay.Options{}, err
	}
	return overlay.Options{
		SourcePath: c.Source,
		Text:       c.Text,
		Font:       overlay.FontSpec{Family: c.Font, Size: c.Size},
		Color:      fill,
		Modes:      modes,
		Anchor:     overlay.Anchor{X: c.X, Y: c.Y},
		OutputDir:  c.OutputDir,
	}, nil
}

func (c Config) brightness() int {
	if c.Brightness == nil {
		return matrixdisplay.DefaultBrightness
	}
	return *c.Brightness
}
