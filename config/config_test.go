// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/packfit/bounds"
	"github.com/katalvlaran/packfit/params"
	"github.com/katalvlaran/packfit/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Setenv(EnvBoundPolicy, "")
	t.Setenv(EnvWorkers, "")
	t.Setenv(EnvPackingCorrection, "")
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "packfit.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// TestLoadDefaults verifies that an empty path yields the built-in configuration.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, params.Default(), c.Constants)
	assert.Equal(t, bounds.Ratio, c.Policy())
	assert.Equal(t, 1, c.Workers)
	assert.Equal(t, record.DefaultClassifier(), c.Classifier)
	assert.Contains(t, c.Columns[record.ColWeight], "重量")
}

// TestLoadFileOverlay checks that a YAML file overrides only the keys it sets.
func TestLoadFileOverlay(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
bound_policy: population-spread
workers: 4
constants:
  packing_correction: 2.1
  fr_width_margin: 12
classifier:
  fr_prefixes: [FR, XR]
columns:
  weight: [net_g]
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, bounds.PopulationSpread, c.Policy())
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 2.1, c.Constants.PackingCorrection)
	assert.Equal(t, 12.0, c.Constants.FRWidthMargin)
	assert.Equal(t, params.DefaultFlatLengthMargin, c.Constants.FlatLengthMargin, "untouched keys keep defaults")
	assert.Equal(t, []string{"FR", "XR"}, c.Classifier.FRPrefixes)
	assert.NotEmpty(t, c.Classifier.FlatAliases)
	assert.Equal(t, []string{"net_g"}, c.Columns[record.ColWeight])
	assert.Contains(t, c.Columns[record.ColSpecificGravity], "比重")
}

// TestLoadEnvOverrides ensures environment variables override the defaults.
func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBoundPolicy, "stdev")
	t.Setenv(EnvWorkers, "3")
	t.Setenv(EnvPackingCorrection, "1.5")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, bounds.PopulationSpread, c.Policy())
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, 1.5, c.Constants.PackingCorrection)
}

// TestLoadErrors covers malformed files, unknown keys, invalid values and bad env overrides.
func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "unknown key", body: "colour: red\n"},
		{name: "bad yaml", body: "workers: [\n"},
		{name: "bad policy", body: "bound_policy: median\n"},
		{name: "zero workers", body: "workers: 0\n"},
		{name: "bad constant", body: "constants:\n  lower_band_divisor: 0\n"},
		{name: "bad env int", env: map[string]string{EnvWorkers: "many"}},
		{name: "bad env float", env: map[string]string{EnvPackingCorrection: "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			if tc.body != "" {
				path = writeFile(t, tc.body)
			}
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// TestLoadMissingFile ensures a nonexistent path is an error.
func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadEmptyFile verifies that an empty file is the same as no file.
func TestLoadEmptyFile(t *testing.T) {
	clearEnv(t)
	c, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default().Constants, c.Constants)
}
