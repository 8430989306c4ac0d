// Package config loads the instrument description used to bind banks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-pixelgeom/pixel"
)

// EnvPrefix prefixes every environment override, e.g. PIXELGEOM_LOG_LEVEL.
const EnvPrefix = "PIXELGEOM"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the top-level configuration file.
type Config struct {
	Logging    Logging    `yaml:"logging"`
	Instrument Instrument `yaml:"instrument"`
}

// Logging contains logging configuration. Both fields can be overridden
// from the environment.
type Logging struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

// Instrument describes where banks live and what to read for each.
type Instrument struct {
	Name        string      `yaml:"name"`
	Root        string      `yaml:"root"`
	BankPattern string      `yaml:"bank_pattern"`
	Geometry    Geometry    `yaml:"geometry"`
	Attributes  []Attribute `yaml:"attributes"`
}

// Geometry selects the geometry variant and its sources.
type Geometry struct {
	Variant   string `yaml:"variant"`
	Primary   Scalar `yaml:"primary_flight_path"`
	Secondary Scalar `yaml:"secondary_flight_path"`
	Polar     Scalar `yaml:"polar_angle"`
	Azimuthal Scalar `yaml:"azimuthal_angle"`
	LegA      Scalar `yaml:"secondary_leg_a"`
	LegB      Scalar `yaml:"secondary_leg_b"`
}

// Scalar is a constant value or a dataset name relative to the bank group.
type Scalar struct {
	Value       *float64 `yaml:"value"`
	Uncertainty float64  `yaml:"uncertainty"`
	Dataset     string   `yaml:"dataset"`
	Unit        string   `yaml:"unit"`
}

// Attribute describes one per-bank calibration table.
type Attribute struct {
	Name            string `yaml:"name"`
	Dataset         string `yaml:"dataset"`
	VarianceDataset string `yaml:"variance_dataset"`
	Selector        string `yaml:"selector"`
	RowStride       int    `yaml:"row_stride"`
	Units           string `yaml:"units"`
}

// DefaultConfig returns a configuration that binds "bankN" groups under
// /entry with a base geometry and no attributes.
func DefaultConfig() *Config {
	return &Config{
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Instrument: Instrument{
			Root:        "/",
			BankPattern: pixel.DefaultBankPattern,
			Geometry: Geometry{
				Variant: pixel.VariantBase,
			},
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides logging settings from PIXELGEOM_* variables.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, &c.Logging); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

// Validate checks the instrument description.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}

	g := c.Instrument.Geometry
	switch g.Variant {
	case "", pixel.VariantBase, pixel.VariantSum:
	case pixel.VariantDirect:
		required := []struct {
			name string
			s    Scalar
		}{
			{"primary_flight_path", g.Primary},
			{"secondary_flight_path", g.Secondary},
			{"polar_angle", g.Polar},
			{"azimuthal_angle", g.Azimuthal},
		}
		for _, r := range required {
			if r.s.Value == nil && r.s.Dataset == "" {
				return fmt.Errorf("%w: geometry.%s is required for the direct variant", ErrInvalid, r.name)
			}
		}
	default:
		return fmt.Errorf("%w: geometry.variant %q", ErrInvalid, g.Variant)
	}

	seen := make(map[string]bool)
	for i, a := range c.Instrument.Attributes {
		if a.Name == "" {
			return fmt.Errorf("%w: attributes[%d].name is empty", ErrInvalid, i)
		}
		if a.Dataset == "" {
			return fmt.Errorf("%w: attribute %q has no dataset", ErrInvalid, a.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: attribute %q declared twice", ErrInvalid, a.Name)
		}
		seen[a.Name] = true
		if _, err := pixel.NewSelector(a.Selector, pixel.SelectorConfig{RowStride: a.RowStride}); err != nil {
			return fmt.Errorf("%w: attribute %q: %w", ErrInvalid, a.Name, err)
		}
	}
	return nil
}

// Layout converts the instrument description for pixel.NewBinder.
func (i Instrument) Layout() pixel.Layout {
	l := pixel.Layout{
		BankPattern: i.BankPattern,
		Geometry: pixel.GeometrySpec{
			Variant:   i.Geometry.Variant,
			Primary:   i.Geometry.Primary.source(),
			Secondary: i.Geometry.Secondary.source(),
			Polar:     i.Geometry.Polar.source(),
			Azimuthal: i.Geometry.Azimuthal.source(),
			LegA:      i.Geometry.LegA.source(),
			LegB:      i.Geometry.LegB.source(),
		},
	}
	for _, a := range i.Attributes {
		l.Attributes = append(l.Attributes, pixel.AttributeSpec{
			Name:            a.Name,
			Dataset:         a.Dataset,
			VarianceDataset: a.VarianceDataset,
			Selector:        a.Selector,
			RowStride:       a.RowStride,
			Units:           a.Units,
		})
	}
	return l
}

func (s Scalar) source() pixel.Source {
	return pixel.Source{
		Value:       s.Value,
		Uncertainty: s.Uncertainty,
		Dataset:     s.Dataset,
		Unit:        s.Unit,
	}
}
