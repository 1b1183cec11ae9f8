package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ctames/mapreduce/config"
	mr "github.com/ctames/mapreduce/map_reduce"
	"github.com/ctames/mapreduce/output"
	"github.com/ctames/mapreduce/source"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func wordCountAction(c *cli.Context) error {
	cfg, err := config.ReadConfig(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	config.InitLogging(cfg.Log.Level)
	logger := slog.Default().With("run_id", uuid.NewString())

	records, err := readRecords(c, cfg.Input.Format)
	if err != nil {
		logger.Error("failed to read records", "error", err)
		return err
	}

	start := time.Now()
	results, err := mr.NewWordCountRunner(cfg.WordCount.Normalize).Run(records)
	if err != nil {
		logger.Error("map reduce failed", "error", err)
		return err
	}
	logger.Info("map reduce complete",
		"records", len(records),
		"keys", len(results),
		"duration", time.Since(start))

	results = arrange(results, cfg.Output.Order, cfg.Output.Top)
	if err := output.Write(c.App.Writer, cfg.Output.Format, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	return nil
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("html") {
		cfg.Input.Format = config.InputText
		if c.Bool("html") {
			cfg.Input.Format = config.InputHTML
		}
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("order") {
		cfg.Output.Order = c.String("order")
	}
	if c.IsSet("top") {
		cfg.Output.Top = c.Int("top")
	}
	if c.IsSet("normalize") {
		cfg.WordCount.Normalize = c.Bool("normalize")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
}

func readRecords(c *cli.Context, format string) ([]string, error) {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return source.Demo(), nil
	}

	if len(paths) == 1 && paths[0] == "-" {
		if format == config.InputHTML {
			return source.HTML(c.App.Reader)
		}
		return source.Lines(c.App.Reader)
	}

	if format == config.InputHTML {
		return source.HTMLFiles(paths...)
	}
	return source.Files(paths...)
}

func arrange(results []mr.Pair[string, int], order string, top int) []mr.Pair[string, int] {
	switch order {
	case config.OrderCount:
		return mr.TopN(results, top)
	case config.OrderKey:
		results = mr.SortByKey(results)
	}

	if top > 0 && len(results) > top {
		results = results[:top]
	}
	return results
}
