// SPDX-License-Identifier: MIT

// Package config loads the modularity CLI configuration from YAML.
//
// A file only needs the keys it changes: decoding starts from Default(), so
// absent keys keep their defaults. Unknown keys are rejected.
//
//	network: { topology: random, min_nodes: 100, max_nodes: 200, edge_probability: 0.9, seed: 1 }
//	network: { topology: cycle, size: 12, ids: symbol, weights: uniform, weight_min: 1, weight_max: 5 }
//	session: { communities: 3 }
//	log:     { level: info, format: text }
//	metrics: { enabled: false, address: ":9090" }
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modularity/builder"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Network NetworkConfig `yaml:"network"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Network topologies, one per builder constructor.
const (
	TopologyRandom   = "random"
	TopologyPairs    = "pairs"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyComplete = "complete"
)

// Node ID schemes; IDsAuto keeps each constructor's own scheme.
const (
	IDsAuto   = "auto"
	IDsNumber = "number"
	IDsSymbol = "symbol"
	IDsExcel  = "excel"
)

// Edge weight generators.
const (
	WeightsUnit        = "unit"
	WeightsUniform     = "uniform"
	WeightsExponential = "exponential"
)

// NetworkConfig selects the generated graph. MinNodes, MaxNodes and
// EdgeProbability drive the random topology; Size drives the others
// (for pairs it counts pairs, not nodes).
type NetworkConfig struct {
	Topology        string  `yaml:"topology" validate:"oneof=random pairs cycle star complete"`
	MinNodes        int     `yaml:"min_nodes" validate:"min=2"`
	MaxNodes        int     `yaml:"max_nodes" validate:"gtefield=MinNodes"`
	EdgeProbability float64 `yaml:"edge_probability" validate:"gte=0,lte=1"`
	Size            int     `yaml:"size" validate:"min=1"`
	IDs             string  `yaml:"ids" validate:"oneof=auto number symbol excel"`
	Weights         string  `yaml:"weights" validate:"oneof=unit uniform exponential"`
	WeightMin       float64 `yaml:"weight_min" validate:"gt=0"`
	WeightMax       float64 `yaml:"weight_max" validate:"gtefield=WeightMin"`
	WeightRate      float64 `yaml:"weight_rate" validate:"gt=0"`
	// Seed 0 asks the CLI for a time-derived seed.
	Seed int64 `yaml:"seed"`
}

// SessionConfig controls the interactive session.
type SessionConfig struct {
	// Communities is the number of labels "cycle" rotates through.
	Communities int `yaml:"communities" validate:"min=1"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address" validate:"required_if=Enabled true"`
}

// Defaults outside the builder's own.
const (
	DefaultCommunities = 3
	DefaultSize        = 10
	DefaultWeightMin   = 1.0
	DefaultWeightMax   = 10.0
	DefaultWeightRate  = 1.0
)

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Network: NetworkConfig{
			Topology:        TopologyRandom,
			MinNodes:        builder.DefaultNetworkMinNodes,
			MaxNodes:        builder.DefaultNetworkMaxNodes,
			EdgeProbability: builder.DefaultNetworkEdgeProbability,
			Size:            DefaultSize,
			IDs:             IDsAuto,
			Weights:         WeightsUnit,
			WeightMin:       DefaultWeightMin,
			WeightMax:       DefaultWeightMax,
			WeightRate:      DefaultWeightRate,
			Seed:            1,
		},
		Session: SessionConfig{Communities: DefaultCommunities},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Enabled: false, Address: ":9090"},
	}
}

// Load reads and validates the file at path. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags and reports the first violation by field
// path, e.g. "Network.MaxNodes: failed gtefield (MinNodes), got 10".
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	e := verrs[0]
	field := e.StructNamespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:] // drop the root "Config."
	}
	if e.Param() != "" {
		return fmt.Errorf("%w: %s: failed %s (%s), got %v", ErrInvalidConfig, field, e.Tag(), e.Param(), e.Value())
	}

	return fmt.Errorf("%w: %s: failed %s, got %v", ErrInvalidConfig, field, e.Tag(), e.Value())
}
