// Command graphparity checks that a legacy and a new code-graph extraction
// describe the same nodes and edges.
//
//	graphparity [OPTIONS] <legacy_input> <new_file>
//
// legacy_input is a directory holding nodes.jsonl and edges.jsonl, a single
// JSONL file mixing nodes and edges, or a Neo4j URI the legacy graph was
// imported into. new_file is a JSONL file mixing nodes and edges.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/agenthands/graphparity/internal/config"
	"github.com/agenthands/graphparity/internal/core"
	"github.com/agenthands/graphparity/internal/logger"
	"github.com/agenthands/graphparity/internal/report"
)

const (
	exitOK       = 0
	exitError    = 1
	exitMismatch = 2
)

type options struct {
	Config  string `short:"c" long:"config" description:"TOML config file"`
	Format  string `short:"f" long:"format" description:"report format" choice:"text" choice:"json"`
	Samples int    `short:"n" long:"samples" description:"example entries listed per set"`
	Strict  bool   `long:"strict" description:"exit with status 2 when the graphs differ"`
	Debug   bool   `short:"d" long:"debug" description:"enable debug logging"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "graphparity"
	parser.Usage = "[OPTIONS] <legacy_input> <new_file>"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}

	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env")
	}

	cfg, err := loadConfig(parser, &opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	logger.Init(level)

	textMode := cfg.Report.Format == "text"
	if textMode {
		fmt.Fprintln(stdout, report.Banner)
	}

	if len(rest) < 2 {
		parser.WriteHelp(stderr)
		return exitError
	}
	legacyInput, newInput := rest[0], rest[1]

	res, err := core.NewChecker(cfg).Run(ctx, legacyInput, newInput)
	if err != nil {
		slog.Error("comparison failed", "err", err)
		return exitError
	}

	reportOpts := report.Options{Samples: cfg.Report.Samples, NewSide: cfg.Report.NewSide}
	if textMode {
		err = report.WriteText(stdout, res, reportOpts)
	} else {
		err = report.WriteJSON(stdout, res, reportOpts)
	}
	if err != nil {
		slog.Error("failed to write report", "err", err)
		return exitError
	}

	if cfg.Report.Strict && !res.Match() {
		return exitMismatch
	}
	return exitOK
}

// loadConfig layers defaults, the optional config file, the environment and
// finally the flags that were given explicitly.
func loadConfig(parser *flags.Parser, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if isSet(parser, "format") {
		cfg.Report.Format = opts.Format
	}
	if isSet(parser, "samples") {
		cfg.Report.Samples = opts.Samples
	}
	if opts.Strict {
		cfg.Report.Strict = true
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func isSet(parser *flags.Parser, long string) bool {
	opt := parser.FindOptionByLongName(long)
	return opt != nil && opt.IsSet()
}
