package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/okian/squads/internal/adapters/report"
	app "github.com/okian/squads/internal/app"
	"github.com/okian/squads/internal/config"
	"github.com/okian/squads/internal/domain/taxonomy"
	"github.com/okian/squads/pkg/logger"
	"github.com/okian/squads/pkg/metrics"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// flagKeys maps CLI flags to the config keys they override.
var flagKeys = map[string]string{ //nolint:gochecknoglobals // static flag table
	"input":        "input",
	"output":       "output",
	"taxonomy":     "taxonomy",
	"size":         "group_size",
	"heuristic":    "heuristic",
	"key":          "key",
	"metrics-file": "metrics_file",
	"log-level":    "log_level",
	"log-format":   "log_format",
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "squads",
		Short: "Assign survey volunteers to teams",
		Long: `squads reads a volunteer survey CSV, classifies every respondent as
designer, developer and/or team lead, and partitions them into groups with
one of the naive, language, framework, experience or magic heuristics.
The result is written to <output>/output.json.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSquads,
	}

	defaults := config.New(context.Background())
	f := cmd.Flags()
	f.StringP("input", "i", "", "survey CSV to read")
	f.StringP("output", "o", "", "directory to write output.json to (default: input name without extension)")
	f.StringP("taxonomy", "t", "", "JSON or YAML taxonomy of frameworks, languages and skills")
	f.IntP("size", "s", defaults.GroupSize, "maximum group size")
	f.StringP("heuristic", "g", defaults.Heuristic, "assignment heuristic: naive, language, framework, experience or magic")
	f.String("key", defaults.Key, "member identifier: email or id")
	f.String("metrics-file", "", "write prometheus metrics in textfile format to this path")
	f.String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	f.String("log-format", defaults.LogFormat, "log format: text, json or pretty")

	return cmd
}

// overrides collects the flags the user set explicitly, keyed by config key,
// so that unset flags do not mask file or env values.
func overrides(cmd *cobra.Command) (map[string]any, error) {
	out := make(map[string]any)
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if flag == "size" {
			n, err := cmd.Flags().GetInt(flag)
			if err != nil {
				return nil, err
			}
			out[key] = n
			continue
		}
		out[key] = f.Value.String()
	}
	return out, nil
}

func runSquads(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// A missing .env is fine; it only seeds SQUADS_* variables.
	_ = godotenv.Load()

	ov, err := overrides(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(ctx, ov)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithOutput(cmd.ErrOrStderr())); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	tax, err := taxonomy.Load(cfg.Taxonomy)
	if err != nil {
		return err
	}
	log.Info(ctx, "taxonomy loaded",
		logger.String("path", cfg.Taxonomy),
		logger.Int("frameworks", len(tax.Frameworks())))
	log.Debug(ctx, "known frameworks", logger.Any("frameworks", tax.Frameworks()))

	in, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	svc := app.New(
		app.WithLogger(log),
		app.WithTaxonomy(tax),
		app.WithHeuristic(cfg.Heuristic),
		app.WithGroupSize(cfg.GroupSize),
		app.WithKey(strings.ToLower(cfg.Key)),
	)
	res, err := svc.Run(ctx, in)
	if err != nil {
		return err
	}

	path, err := report.NewWriter(cfg.OutputDir(), report.WithLogger(log)).Write(ctx, res)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		families, err := metrics.GetRegistry().Gather()
		if err != nil {
			return fmt.Errorf("failed to gather metrics: %w", err)
		}
		log.Info(ctx, "metrics written",
			logger.String("path", cfg.MetricsFile),
			logger.Int("families", len(families)))
	}
	return nil
}
