package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlarray/bench"
)

// Default sizes per suite; the quadratic baselines bound how large they go.
var (
	defaultGrowthSizes = []int{10_000, 100_000}
	defaultMatrixSizes = []int{128, 256, 512}
	defaultRotateSizes = []int{100_000, 1_000_000}
	defaultWindowSizes = []int{1_000, 5_000}
	defaultTraverse    = []int{256, 512, 1024, 2048}
	defaultFrontInsert = []int{100, 1_000, 5_000, 10_000, 50_000}
	defaultBlocks      = []int{16, 32, 64}
)

type config struct {
	logLevel string
	json     bool
	reps     int
	sizes    []int
	blocks   []int
	workers  int

	logger *zap.Logger
	runner *bench.Runner
}

// suiteFunc runs one suite on the configured runner.
type suiteFunc func(c *config, cmd *cobra.Command) ([]bench.Sample, error)

func newRootCmd() *cobra.Command {
	c := &config{}

	root := &cobra.Command{
		Use:          "lvlarray",
		Short:        "Time dynamic array growth and matrix kernels",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), c.logLevel, c.json)
			if err != nil {
				return err
			}
			c.logger = logger
			c.runner, err = bench.NewRunner(logger, bench.WithReps(c.reps))
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&c.json, "json", false, "log as JSON instead of console text")
	pf.IntVar(&c.reps, "reps", bench.DefaultReps, "timed repetitions per case; the median is reported")
	pf.IntSliceVar(&c.sizes, "sizes", nil, "input sizes (suite defaults when unset)")
	pf.IntSliceVar(&c.blocks, "blocks", defaultBlocks, "tile sizes for the tiled kernels")
	pf.IntVar(&c.workers, "workers", 0, "goroutines for the parallel multiply (0 = GOMAXPROCS)")

	suites := []struct {
		use, short, suite string
		run               suiteFunc
	}{
		{"growth", "Push n values under each growth policy", bench.SuiteGrowth, func(c *config, cmd *cobra.Command) ([]bench.Sample, error) {
			return c.runner.GrowthSuite(c.sizesOr(cmd, defaultGrowthSizes))
		}},
		{"transpose", "Transpose n×n matrices with every strategy", bench.SuiteTranspose, func(c *config, cmd *cobra.Command) ([]bench.Sample, error) {
			return c.runner.TransposeSuite(c.sizesOr(cmd, defaultMatrixSizes), c.blocks)
		}},
		{"multiply", "Multiply n×n matrices with every strategy", bench.SuiteMultiply, func(c *config, cmd *cobra.Command) ([]bench.Sample, error) {
			return c.runner.MultiplySuite(c.sizesOr(cmd, defaultMatrixSizes), c.blocks, c.workers)
		}},
		{"rotate", "Rotate [1..n] by n/3", bench.SuiteRotate, func(c *config, cmd *cobra.Command) ([]bench.Sample, error) {
			return c.runner.RotateSuite(c.sizesOr(cmd, defaultRotateSizes))
		}},
		{"count-sum-k", "Count runs summing to k", bench.SuiteCountSumK, func(c *config, cmd *cobra.Command) ([]bench.Sample, error) {
			return c.runner.CountSumKSuite(c.sizesOr(cmd, defaultWindowSizes))
		}},
		{"min-len", "Find the shortest run reaching a target", bench.SuiteMinLen, func(c *config, cmd *cobra.Command) ([]bench.Sample, error) {
			return c.runner.MinLenSuite(c.sizesOr(cmd, defaultWindowSizes))
		}},
		{"traversal", "Sum n×n row-wise vs column-wise and rotate it per block size", bench.SuiteTraversal, func(c *config, cmd *cobra.Command) ([]bench.Sample, error) {
			return c.runner.TraversalSuite(c.sizesOr(cmd, defaultTraverse), c.blocks)
		}},
		{"front-insert", "Insert n values at the front of a slice and of a linked list", bench.SuiteFrontInsert, func(c *config, cmd *cobra.Command) ([]bench.Sample, error) {
			return c.runner.FrontInsertSuite(c.sizesOr(cmd, defaultFrontInsert))
		}},
	}

	for _, s := range suites {
		root.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.runSuite(cmd, s.suite, s.run)
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range suites {
				if err := c.runSuite(cmd, s.suite, s.run); err != nil {
					return err
				}
			}
			return nil
		},
	})

	return root
}

// sizesOr returns --sizes when it was given and def otherwise.
func (c *config) sizesOr(cmd *cobra.Command, def []int) []int {
	if cmd.Flags().Changed("sizes") {
		return c.sizes
	}

	return def
}

func (c *config) runSuite(cmd *cobra.Command, suite string, run suiteFunc) error {
	c.logger.Info("suite start", zap.String("suite", suite))
	samples, err := run(c, cmd)
	if err != nil {
		c.logger.Error("suite failed", zap.String("suite", suite), zap.Error(err))
		return fmt.Errorf("%s: %w", suite, err)
	}

	return writeSamples(cmd.OutOrStdout(), samples)
}

// writeSamples writes one table per suite present in samples, in order of
// first appearance, each against its baseline.
func writeSamples(w io.Writer, samples []bench.Sample) error {
	var order []string
	bySuite := map[string][]bench.Sample{}
	for _, s := range samples {
		if _, ok := bySuite[s.Suite]; !ok {
			order = append(order, s.Suite)
		}
		bySuite[s.Suite] = append(bySuite[s.Suite], s)
	}

	for _, suite := range order {
		if _, err := fmt.Fprintf(w, "\n== %s ==\n", suite); err != nil {
			return err
		}
		if err := bench.WriteTable(w, bySuite[suite], bench.Baselines[suite]); err != nil {
			return err
		}
		if suite == bench.SuiteFrontInsert {
			if err := writeKnee(w, bySuite[suite]); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeKnee(w io.Writer, samples []bench.Sample) error {
	size, ok := bench.FrontInsertKnee(samples)
	if !ok {
		_, err := fmt.Fprintln(w, "knee: slice front insert never lost to the list")
		return err
	}
	_, err := fmt.Fprintf(w, "knee: slice front insert loses from n=%d\n", size)

	return err
}
