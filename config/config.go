// SPDX-License-Identifier: MIT

// Package config loads packfit runtime settings from an optional YAML file
// and environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/packfit/bounds"
	"github.com/katalvlaran/packfit/params"
	"github.com/katalvlaran/packfit/record"
	"github.com/katalvlaran/packfit/tabular"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment overrides.
const (
	EnvBoundPolicy       = "PACKFIT_BOUND_POLICY"
	EnvWorkers           = "PACKFIT_WORKERS"
	EnvPackingCorrection = "PACKFIT_PACKING_CORRECTION"
)

// Config holds everything a batch or simulation run can be tuned with.
type Config struct {
	Constants   params.Table      `yaml:"constants"`
	BoundPolicy string            `yaml:"bound_policy"`
	Workers     int               `yaml:"workers"`
	Classifier  record.Classifier `yaml:"classifier"`
	Columns     tabular.Columns   `yaml:"columns"`
}

// Default returns production settings.
func Default() Config {
	return Config{
		Constants:   params.Default(),
		BoundPolicy: bounds.Ratio.String(),
		Workers:     1,
		Classifier:  record.DefaultClassifier(),
		Columns:     tabular.DefaultColumns(),
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty), applies environment overrides and validates the result.
// Keys absent from the file keep their defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read %s: %w", path, errors.Join(ErrInvalidConfig, err))
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse %s: %w", path, errors.Join(ErrInvalidConfig, err))
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the constants table, the bound policy name and the
// worker count.
func (c Config) Validate() error {
	if err := c.Constants.Validate(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if _, err := bounds.ParsePolicy(c.BoundPolicy); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers=%d must be >= 1: %w", c.Workers, ErrInvalidConfig)
	}
	return nil
}

// Policy returns the parsed bound policy.
func (c Config) Policy() bounds.Policy {
	p, _ := bounds.ParsePolicy(c.BoundPolicy)
	return p
}

func applyEnv(cfg *Config) error {
	if v := getenv(EnvBoundPolicy, ""); v != "" {
		cfg.BoundPolicy = v
	}
	n, err := atoienv(EnvWorkers, cfg.Workers)
	if err != nil {
		return err
	}
	cfg.Workers = n

	pc, err := floatenv(EnvPackingCorrection, cfg.Constants.PackingCorrection)
	if err != nil {
		return err
	}
	cfg.Constants.PackingCorrection = pc
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) (int, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidConfig)
	}
	return n, nil
}

func floatenv(key string, def float64) (float64, error) {
	v := getenv(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidConfig)
	}
	return f, nil
}
