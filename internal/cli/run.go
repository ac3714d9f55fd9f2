package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/CGLemon/2025NCTU-placement/internal/anneal"
	"github.com/CGLemon/2025NCTU-placement/internal/config"
	"github.com/CGLemon/2025NCTU-placement/internal/export"
	"github.com/CGLemon/2025NCTU-placement/internal/hbtree"
	"github.com/CGLemon/2025NCTU-placement/internal/ioformat"
	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	seed        uint64
	timeBudget  time.Duration
	alpha, beta float64
	k           int
	cooling     float64
	configPath  string
	reportDir   string
}

func newRunCmd() *cobra.Command {
	opts := runOpts{}

	cmd := &cobra.Command{
		Use:   "run <input> <output>",
		Short: "Anneal a placement and write the solution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlacement(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "RNG seed (0 keeps --config's value; a zero seed there picks a fixed default seed)")
	cmd.Flags().DurationVar(&opts.timeBudget, "time-budget", 0, "wall-clock budget for annealing (0 keeps --config's value, default 290s)")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", -1, "cost weight on normalized area (overrides --config)")
	cmd.Flags().Float64Var(&opts.beta, "beta", -1, "cost weight on normalized HPWL (overrides --config)")
	cmd.Flags().IntVar(&opts.k, "k", 0, "inner-loop generation factor (0 keeps --config's value)")
	cmd.Flags().Float64Var(&opts.cooling, "cooling", 0, "temperature cooling factor (0 keeps --config's value)")
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "path to the annealer tuning file")
	cmd.Flags().StringVar(&opts.reportDir, "report-dir", "", "if set, write PDF/DXF/XLSX reports to this directory")

	return cmd
}

func runPlacement(cmd *cobra.Command, inputPath, outputPath string, opts runOpts) error {
	logger := loggerFromContext(cmd.Context())
	runID := uuid.New()
	start := time.Now()
	logger.Info("starting run", "run_id", runID, "input", inputPath)

	cfg, err := config.LoadAnnealConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	p := newProgress(logger)
	blocks, groups, err := ioformat.ParseInput(in, cfg.DefaultAxis)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	p.done(fmt.Sprintf("parsed %d blocks, %d symmetry groups", len(blocks), len(groups)))

	if len(blocks) == 0 {
		return writeResult(outputPath, 0, blocks)
	}

	p = newProgress(logger)
	hb := &hbtree.HbTree{}
	hb.Initialize(blocks, groups)
	p.done("built initial HB-tree")

	cfg.OnOuterStep = func(iteration int, temperature float64, bestArea int64) {
		logger.Debug("outer iteration", "iteration", iteration, "temperature", temperature, "best_area", bestArea)
	}

	p = newProgress(logger)
	result := anneal.Run(hb, blocks, cfg)
	p.done(fmt.Sprintf("annealed %d steps, best area %d", result.Steps, result.BestArea))

	if err := writeResult(outputPath, result.BestArea, result.BestBlocks); err != nil {
		return err
	}

	if opts.reportDir != "" {
		report := &model.RunReport{
			RunID:     runID,
			InputPath: inputPath,
			Area:      result.BestArea,
			Blocks:    result.BestBlocks,
			Groups:    groups,
			Elapsed:   time.Since(start),
			Seed:      cfg.Seed,
		}
		if err := writeReports(opts.reportDir, report); err != nil {
			return fmt.Errorf("write reports: %w", err)
		}
		logger.Info("wrote reports", "dir", opts.reportDir)
	}

	return nil
}

func applyOverrides(cfg *anneal.Config, opts runOpts) {
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.timeBudget != 0 {
		cfg.TimeBudget = opts.timeBudget
	}
	if opts.alpha >= 0 {
		cfg.Alpha = opts.alpha
	}
	if opts.beta >= 0 {
		cfg.Beta = opts.beta
	}
	if opts.k != 0 {
		cfg.K = opts.k
	}
	if opts.cooling != 0 {
		cfg.CoolingFactor = opts.cooling
	}
}

func writeResult(path string, area int64, blocks []model.Block) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := ioformat.WriteOutput(out, area, blocks); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writeReports(dir string, report *model.RunReport) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	runID := report.RunID.String()
	if err := export.ExportPDF(filepath.Join(dir, runID+".pdf"), report); err != nil {
		return err
	}
	if err := export.ExportDXF(filepath.Join(dir, runID+".dxf"), report); err != nil {
		return err
	}
	if err := export.ExportXLSX(filepath.Join(dir, runID+".xlsx"), report); err != nil {
		return err
	}
	return export.ExportRunLabel(filepath.Join(dir, runID+"_label.pdf"), report)
}
