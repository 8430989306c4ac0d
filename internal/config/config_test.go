package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-pixelgeom/pixel"
)

const sampleYAML = `
logging:
  level: debug
instrument:
  name: POWGEN
  root: /entry
  bank_pattern: '^bank\d+$'
  geometry:
    variant: direct
    primary_flight_path:
      value: 60.0
      unit: m
    secondary_flight_path:
      dataset: distance
      uncertainty: 0.01
    polar_angle:
      dataset: polar_angle
    azimuthal_angle:
      value: 0
  attributes:
    - name: efficiency
      dataset: efficiency
      variance_dataset: efficiency_errors
      selector: slow
    - name: gain
      dataset: gain
      selector: combined
      row_stride: 128
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instrument.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, pixel.DefaultBankPattern, cfg.Instrument.BankPattern)
	assert.Equal(t, pixel.VariantBase, cfg.Instrument.Geometry.Variant)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format, "default survives a partial file")
	assert.Equal(t, "POWGEN", cfg.Instrument.Name)
	assert.Equal(t, "/entry", cfg.Instrument.Root)

	g := cfg.Instrument.Geometry
	require.NotNil(t, g.Primary.Value)
	assert.Equal(t, 60.0, *g.Primary.Value)
	assert.Equal(t, "distance", g.Secondary.Dataset)
	require.NotNil(t, g.Azimuthal.Value)
	assert.Zero(t, *g.Azimuthal.Value)
	require.Len(t, cfg.Instrument.Attributes, 2)
	assert.Equal(t, 128, cfg.Instrument.Attributes[1].RowStride)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PIXELGEOM_LOG_LEVEL", "warn")
	t.Setenv("PIXELGEOM_LOG_FORMAT", "json")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "instrument: [not, a, map]"))
	assert.Error(t, err)

	tests := []struct {
		name string
		yaml string
	}{
		{"bad variant", "instrument:\n  geometry:\n    variant: cubic\n"},
		{"direct missing quantity", "instrument:\n  geometry:\n    variant: direct\n    primary_flight_path: {value: 1}\n"},
		{"attribute without name", "instrument:\n  attributes:\n    - dataset: x\n      selector: slow\n"},
		{"attribute without dataset", "instrument:\n  attributes:\n    - name: x\n      selector: slow\n"},
		{"duplicate attribute", "instrument:\n  attributes:\n    - {name: x, dataset: x, selector: slow}\n    - {name: x, dataset: y, selector: fast}\n"},
		{"unknown selector", "instrument:\n  attributes:\n    - {name: x, dataset: x, selector: spiral}\n"},
		{"bad log format", "logging:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLayout(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	l := cfg.Instrument.Layout()
	assert.Equal(t, `^bank\d+$`, l.BankPattern)
	assert.Equal(t, pixel.VariantDirect, l.Geometry.Variant)
	assert.Equal(t, "m", l.Geometry.Primary.Unit)
	assert.Equal(t, 0.01, l.Geometry.Secondary.Uncertainty)
	assert.False(t, l.Geometry.LegA.Defined())
	require.Len(t, l.Attributes, 2)
	assert.Equal(t, pixel.AttributeSpec{
		Name:            "efficiency",
		Dataset:         "efficiency",
		VarianceDataset: "efficiency_errors",
		Selector:        "slow",
	}, l.Attributes[0])

	_, err = pixel.NewBinder(pixel.NewMapNamespace(), l)
	assert.NoError(t, err)
}
