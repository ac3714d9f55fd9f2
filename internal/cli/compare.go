package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CGLemon/2025NCTU-placement/internal/anneal"
	"github.com/CGLemon/2025NCTU-placement/internal/config"
	"github.com/CGLemon/2025NCTU-placement/internal/ioformat"
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	seed       uint64
	timeBudget time.Duration
	configPath string
}

func newCompareCmd() *cobra.Command {
	opts := compareOpts{}

	cmd := &cobra.Command{
		Use:   "compare <input>",
		Short: "Run a handful of Config variants against the same input and log how each did",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "RNG seed shared by every scenario, so differences come from the config, not the seed")
	cmd.Flags().DurationVar(&opts.timeBudget, "time-budget", 0, "wall-clock budget per scenario (0 keeps --config's value, default 290s)")
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "path to the base annealer tuning file every scenario starts from")

	return cmd
}

func runCompare(cmd *cobra.Command, inputPath string, opts compareOpts) error {
	logger := loggerFromContext(cmd.Context())

	base, err := config.LoadAnnealConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.seed != 0 {
		base.Seed = opts.seed
	}
	if opts.timeBudget != 0 {
		base.TimeBudget = opts.timeBudget
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	blocks, groups, err := ioformat.ParseInput(in, base.DefaultAxis)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	scenarios := anneal.BuildDefaultScenarios(base)
	logger.Info("comparing scenarios", "input", inputPath, "count", len(scenarios))

	results := anneal.CompareConfigs(scenarios, blocks, groups)
	for _, r := range results {
		logger.Info("scenario result",
			"name", r.Scenario.Name,
			"best_area", r.Result.BestArea,
			"best_cost", r.Result.BestCost,
			"steps", r.Result.Steps,
			"elapsed", r.Result.Elapsed,
		)
	}

	return nil
}
