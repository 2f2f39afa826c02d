package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rickgorman/nixshell-args/internal/cli"
	"github.com/rickgorman/nixshell-args/internal/config"
	"github.com/rickgorman/nixshell-args/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout))
}

func run(argv []string, getenv func(string) string, stdout io.Writer) int {
	cfg, err := config.Load(getenv)
	if cfg != nil && cfg.NoColor {
		ui.DisableColor()
	}
	if err != nil {
		ui.Fail("Configuration error: %v", err)
		return 1
	}

	logger := newLogger(cfg.Debug)

	raw := argv
	if cfg.HasLine {
		raw, err = cli.SplitLine(cfg.Line)
		if err != nil {
			ui.Fail("%v", err)
			return 1
		}
	}
	tokens := cfg.Tokens(raw)

	logger.Debug("parsing arguments",
		"shebang", cfg.Shebang,
		"tokens", tokens,
		"expanded", cli.Expand(tokens),
		"defaults", len(cfg.Defaults))

	args, err := cli.Parse(tokens, cfg.Shebang)
	if err != nil {
		var perr *cli.ParseError
		if errors.As(err, &perr) {
			ui.Fail("Error parsing arguments: %s", perr.Msg)
		} else {
			ui.Fail("%v", err)
		}
		return 1
	}

	printSummary(args, cfg)
	for _, tok := range args.ForwardArgs() {
		fmt.Fprintln(stdout, tok)
	}

	logger.Debug("parsed arguments", "fingerprint", args.Fingerprint(), "run", args.Run.String())
	return 0
}

func printSummary(args *cli.Args, cfg *config.Config) {
	mode := "command line"
	if cfg.Shebang {
		mode = "shebang"
	}
	ui.Success("Parsed %s arguments", mode)
	ui.Field("packages", args.Packages)
	ui.Field("pure", args.Pure)
	ui.Field("interpreter", args.Interpreter)
	ui.Field("run", args.Run)
	ui.Field("rest", ui.Tokens(args.Rest))
	ui.Field("other", ui.Tokens(args.OtherKW))
	ui.Field("fingerprint", ui.Bold(args.Fingerprint()))
	if len(cfg.Defaults) > 0 {
		ui.Info("Included %d token(s) from %s", len(cfg.Defaults), cfg.DefaultsFile)
	}
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
