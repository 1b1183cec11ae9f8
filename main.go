package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("mapreduce failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "mapreduce",
		Usage: "run a single process map reduce over text records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file (default config.yaml)",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "wordcount",
				Usage:     "count words across records; with no files the tutorial records are used",
				ArgsUsage: "[file ...] (use - for stdin)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "html", Usage: "treat inputs as HTML, one record per text block"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: text, json or yaml"},
					&cli.StringFlag{Name: "order", Usage: "result order: key, count or none"},
					&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Usage: "keep only the first N results (0 keeps all)"},
					&cli.BoolFlag{Name: "normalize", Usage: "lowercase words and strip surrounding punctuation"},
					&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
				},
				Action: wordCountAction,
			},
		},
	}
}
