// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/modularity/builder"
	"github.com/katalvlaran/modularity/community"
	"github.com/katalvlaran/modularity/core"
	"github.com/katalvlaran/modularity/internal/config"
	"github.com/katalvlaran/modularity/internal/logging"
	"github.com/katalvlaran/modularity/internal/metrics"
	"github.com/katalvlaran/modularity/internal/session"
)

// Flag names.
const (
	flagEnvFile         = "env-file"
	flagConfig          = "config"
	flagSeed            = "seed"
	flagMinNodes        = "min-nodes"
	flagMaxNodes        = "max-nodes"
	flagEdgeProbability = "edge-probability"
	flagTopology        = "topology"
	flagSize            = "size"
	flagIDs             = "ids"
	flagWeights         = "weights"
	flagWeightMin       = "weight-min"
	flagWeightMax       = "weight-max"
	flagWeightRate      = "weight-rate"
	flagLogLevel        = "log-level"
	flagLogFormat       = "log-format"
	flagPartition       = "partition"
	flagBreakdown       = "breakdown"
	flagCommunities     = "communities"
	flagMetrics         = "metrics"
	flagMetricsAddress  = "metrics-address"
)

// Starting partitions selectable with --partition.
const (
	partitionSingle     = "single"
	partitionSingletons = "singletons"
)

// envPrefix namespaces the environment variables that mirror flags.
const envPrefix = "MODULARITY_"

// defaultEnvFile is loaded when present; an explicit --env-file must exist.
const defaultEnvFile = ".env"

var (
	errUnknownPartition = errors.New("unknown partition")
	errTooManySymbols   = errors.New("symbol IDs cover at most 26 nodes")
)

func env(name string) []string { return []string{envPrefix + name} }

// networkFlags returns the flags shared by every command.
func networkFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: flagConfig, Aliases: []string{"c"}, EnvVars: env("CONFIG"), Usage: "YAML configuration `FILE`"},
		&cli.Int64Flag{Name: flagSeed, EnvVars: env("SEED"), Usage: "RNG seed; 0 derives one from the clock"},
		&cli.IntFlag{Name: flagMinNodes, EnvVars: env("MIN_NODES"), Usage: "smallest generated network"},
		&cli.IntFlag{Name: flagMaxNodes, EnvVars: env("MAX_NODES"), Usage: "largest generated network"},
		&cli.Float64Flag{Name: flagEdgeProbability, EnvVars: env("EDGE_PROBABILITY"), Usage: "chance that a node gains an edge"},
		&cli.StringFlag{Name: flagTopology, EnvVars: env("TOPOLOGY"), Usage: "random, pairs, cycle, star or complete"},
		&cli.IntFlag{Name: flagSize, EnvVars: env("SIZE"), Usage: "node count (pair count for pairs) of non-random topologies"},
		&cli.StringFlag{Name: flagIDs, EnvVars: env("IDS"), Usage: "node IDs: auto, number, symbol or excel"},
		&cli.StringFlag{Name: flagWeights, EnvVars: env("WEIGHTS"), Usage: "edge weights: unit, uniform or exponential"},
		&cli.Float64Flag{Name: flagWeightMin, EnvVars: env("WEIGHT_MIN"), Usage: "lower bound of uniform weights"},
		&cli.Float64Flag{Name: flagWeightMax, EnvVars: env("WEIGHT_MAX"), Usage: "upper bound of uniform weights"},
		&cli.Float64Flag{Name: flagWeightRate, EnvVars: env("WEIGHT_RATE"), Usage: "rate of exponential weights"},
		&cli.StringFlag{Name: flagLogLevel, EnvVars: env("LOG_LEVEL"), Usage: "debug, info, warn or error"},
		&cli.StringFlag{Name: flagLogFormat, EnvVars: env("LOG_FORMAT"), Usage: "text or json"},
		&cli.StringFlag{Name: flagPartition, Value: partitionSingle, Usage: "starting partition: single or singletons"},
	}

	return append(flags, extra...)
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "modularity",
		Usage:     "score community partitions of weighted graphs",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagEnvFile, Value: defaultEnvFile, Usage: "dotenv `FILE` with " + envPrefix + "* settings"},
		},
		Before: loadEnvFile,
		Commands: []*cli.Command{
			{
				Name:  "score",
				Usage: "generate a network and print the modularity of the starting partition",
				Flags: networkFlags(
					&cli.BoolFlag{Name: flagBreakdown, Usage: "print each community's contribution"},
				),
				Action: scoreAction,
			},
			{
				Name:  "session",
				Usage: "generate a network and reassign communities interactively",
				Flags: networkFlags(
					&cli.IntFlag{Name: flagCommunities, EnvVars: env("COMMUNITIES"), Usage: "labels cycled through by the cycle command"},
					&cli.BoolFlag{Name: flagMetrics, EnvVars: env("METRICS"), Usage: "serve Prometheus metrics"},
					&cli.StringFlag{Name: flagMetricsAddress, EnvVars: env("METRICS_ADDRESS"), Usage: "metrics listen `ADDR`"},
				),
				Action: sessionAction,
			},
		},
	}
}

// loadEnvFile exports the dotenv file's variables without overriding ones
// already set. A missing default file is not an error.
func loadEnvFile(c *cli.Context) error {
	path := c.String(flagEnvFile)
	err := godotenv.Load(path)
	if err != nil && !c.IsSet(flagEnvFile) && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}

	return nil
}

// loadConfig reads --config and applies every explicitly set flag on top.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String(flagConfig))
	if err != nil {
		return config.Config{}, err
	}
	if c.IsSet(flagSeed) {
		cfg.Network.Seed = c.Int64(flagSeed)
	}
	if c.IsSet(flagMinNodes) {
		cfg.Network.MinNodes = c.Int(flagMinNodes)
	}
	if c.IsSet(flagMaxNodes) {
		cfg.Network.MaxNodes = c.Int(flagMaxNodes)
	}
	if c.IsSet(flagEdgeProbability) {
		cfg.Network.EdgeProbability = c.Float64(flagEdgeProbability)
	}
	if c.IsSet(flagTopology) {
		cfg.Network.Topology = c.String(flagTopology)
	}
	if c.IsSet(flagSize) {
		cfg.Network.Size = c.Int(flagSize)
	}
	if c.IsSet(flagIDs) {
		cfg.Network.IDs = c.String(flagIDs)
	}
	if c.IsSet(flagWeights) {
		cfg.Network.Weights = c.String(flagWeights)
	}
	if c.IsSet(flagWeightMin) {
		cfg.Network.WeightMin = c.Float64(flagWeightMin)
	}
	if c.IsSet(flagWeightMax) {
		cfg.Network.WeightMax = c.Float64(flagWeightMax)
	}
	if c.IsSet(flagWeightRate) {
		cfg.Network.WeightRate = c.Float64(flagWeightRate)
	}
	if c.IsSet(flagLogLevel) {
		cfg.Log.Level = c.String(flagLogLevel)
	}
	if c.IsSet(flagLogFormat) {
		cfg.Log.Format = c.String(flagLogFormat)
	}
	if c.IsSet(flagCommunities) {
		cfg.Session.Communities = c.Int(flagCommunities)
	}
	if c.IsSet(flagMetrics) {
		cfg.Metrics.Enabled = c.Bool(flagMetrics)
	}
	if c.IsSet(flagMetricsAddress) {
		cfg.Metrics.Address = c.String(flagMetricsAddress)
	}

	return cfg, cfg.Validate()
}

// buildNetwork generates the network described by cfg.
func buildNetwork(cfg config.NetworkConfig, logger *log.Logger) (*core.WeightedGraph[string], error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.IDs == config.IDsSymbol && maxIndex(cfg) >= builder.MaxSymbolIDs {
		return nil, fmt.Errorf("%s network of up to %d nodes: %w", cfg.Topology, maxIndex(cfg)+1, errTooManySymbols)
	}
	g, err := builder.BuildGraph(networkOptions(cfg, seed), networkConstructor(cfg))
	if err != nil {
		return nil, err
	}
	logger.Info("network generated", "topology", cfg.Topology, "seed", seed,
		"nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}

// maxIndex is the largest index the topology passes to its ID scheme.
func maxIndex(cfg config.NetworkConfig) int {
	if cfg.Topology == config.TopologyRandom {
		return cfg.MaxNodes - 1
	}

	return cfg.Size - 1
}

// networkConstructor maps a validated topology name to its constructor.
func networkConstructor(cfg config.NetworkConfig) builder.Constructor {
	switch cfg.Topology {
	case config.TopologyPairs:
		return builder.Pairs(cfg.Size)
	case config.TopologyCycle:
		return builder.Cycle(cfg.Size)
	case config.TopologyStar:
		return builder.Star(cfg.Size)
	case config.TopologyComplete:
		return builder.Complete(cfg.Size)
	default:
		return builder.RandomNetwork(cfg.MinNodes, cfg.MaxNodes, cfg.EdgeProbability)
	}
}

// networkOptions seeds the builder and applies the ID and weight schemes.
// Weight bounds are already validated, so the weight options cannot panic.
func networkOptions(cfg config.NetworkConfig, seed int64) []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	switch cfg.IDs {
	case config.IDsNumber:
		opts = append(opts, builder.WithDefaultIDs())
	case config.IDsSymbol:
		opts = append(opts, builder.WithSymbolIDs())
	case config.IDsExcel:
		opts = append(opts, builder.WithExcelColumnIDs())
	}
	switch cfg.Weights {
	case config.WeightsUniform:
		opts = append(opts, builder.WithUniformWeight(cfg.WeightMin, cfg.WeightMax))
	case config.WeightsExponential:
		opts = append(opts, builder.WithExponentialWeight(cfg.WeightRate))
	}

	return opts
}

func startingPartition(name string, g *core.WeightedGraph[string]) (community.Partition[string, int], error) {
	switch name {
	case partitionSingle:
		return builder.SingleCommunity(g), nil
	case partitionSingletons:
		return builder.Singletons(g), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, errUnknownPartition)
	}
}

// setup is shared by both commands: config, logger, network, partition.
func setup(c *cli.Context) (config.Config, *log.Logger, *core.WeightedGraph[string], community.Partition[string, int], error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	logger, err := logging.New(cfg.Log, c.App.ErrWriter)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	g, err := buildNetwork(cfg.Network, logger)
	if err != nil {
		return cfg, nil, nil, nil, err
	}
	p, err := startingPartition(c.String(flagPartition), g)
	if err != nil {
		return cfg, nil, nil, nil, err
	}

	return cfg, logger, g, p, nil
}

func scoreAction(c *cli.Context) error {
	_, logger, g, p, err := setup(c)
	if err != nil {
		return err
	}

	out := c.App.Writer
	stats := g.Stats()
	fmt.Fprintf(out, "nodes=%d edges=%d weight=%g\n", stats.NodeCount, stats.EdgeCount, stats.TotalWeight)
	if c.Bool(flagBreakdown) {
		res := community.Breakdown(g, p)
		for _, s := range res.Communities {
			fmt.Fprintf(out, "community %d: members=%d internal=%g degree=%g contribution=%.4f\n",
				s.Community, len(s.Members), s.InternalWeight, s.TotalDegree, s.Contribution)
		}
		fmt.Fprintf(out, "modularity=%.4f\n", res.Modularity)
		logger.Debug("evaluated", "modularity", res.Modularity)

		return nil
	}
	q := community.Evaluate(g, p)
	fmt.Fprintf(out, "modularity=%.4f\n", q)
	logger.Debug("evaluated", "modularity", q)

	return nil
}

func sessionAction(c *cli.Context) error {
	cfg, logger, g, p, err := setup(c)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithCommunities(cfg.Session.Communities),
		session.WithPrompt(isTerminal(c.App.Reader)),
	}
	var rec *metrics.Recorder
	if cfg.Metrics.Enabled {
		rec = metrics.NewRecorder()
		opts = append(opts, session.WithRecorder(rec))
	}
	s := session.New(g, p, opts...)

	// The session owns the lifetime: when it ends, the metrics server stops.
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	eg, gctx := errgroup.WithContext(ctx)
	if rec != nil {
		eg.Go(func() error {
			logger.Info("serving metrics", "address", cfg.Metrics.Address, "path", metrics.MetricsPath)
			return metrics.Serve(gctx, cfg.Metrics.Address, rec)
		})
	}
	eg.Go(func() error {
		defer cancel()
		return s.Run(gctx, c.App.Reader, c.App.Writer)
	})

	err = eg.Wait()
	if err != nil && c.Context.Err() != nil && errors.Is(err, c.Context.Err()) {
		return nil // interrupted
	}

	return err
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
