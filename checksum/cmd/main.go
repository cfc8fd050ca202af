// Package main provides the checksum CLI that prints the hex digest of
// each file named on the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aasierra/acg/checksum"
	"github.com/aasierra/acg/config"
	"github.com/aasierra/acg/report"
)

var errFilesFailed = errors.New("some files could not be hashed")

type options struct {
	configPath string
	algorithm  string
	bufferSize int
	format     string
	json       bool
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "checksum [flags] FILE...",
		Short:         "Print the hex digest of files",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}

			setupLogging(stderr, cfg, opts.verbose)

			return hashFiles(cfg, args, stdout, stderr)
		},
	}

	fl := root.Flags()
	fl.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	fl.StringVarP(&opts.algorithm, "algorithm", "a", string(checksum.SHA256), "hash algorithm")
	fl.IntVar(&opts.bufferSize, "buffer-size", checksum.DefaultBufferSize, "read chunk size in bytes")
	fl.StringVar(&opts.format, "format", config.DefaultFormat, "output line template")
	fl.BoolVar(&opts.json, "json", false, "print one JSON object per file")
	fl.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "algorithms",
		Short: "List supported hash algorithms",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, alg := range checksum.Algorithms() {
				if _, err := fmt.Fprintf(
					stdout, "%-12s %d bits\n", alg, alg.Size()*8,
				); err != nil {
					return fmt.Errorf("listing algorithms: %w", err)
				}
			}

			return nil
		},
	})

	return root
}

// resolveConfig loads the config file, if any, and applies the flags
// the user set explicitly.
func resolveConfig(
	cmd *cobra.Command,
	opts *options,
) (config.Config, error) {
	const errCtx = "checksum"

	cfg := config.Default()

	if opts.configPath != "" {
		var err error

		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	fl := cmd.Flags()

	if fl.Changed("algorithm") {
		cfg.Algorithm = opts.algorithm
	}

	if fl.Changed("buffer-size") {
		cfg.BufferSize = opts.bufferSize
	}

	if fl.Changed("format") {
		cfg.Format = opts.format
	}

	if fl.Changed("json") {
		cfg.Output = config.OutputText
		if opts.json {
			cfg.Output = config.OutputJSON
		}
	}

	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", errCtx, err)
	}

	return cfg, nil
}

func setupLogging(w io.Writer, cfg config.Config, verbose bool) {
	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil || verbose {
		lvl = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})))
}

// hashFiles digests each path in turn and reports it. Failures are
// printed and counted; they do not stop the remaining files.
func hashFiles(
	cfg config.Config,
	paths []string,
	stdout io.Writer,
	stderr io.Writer,
) error {
	const errCtx = "checksum"

	en := &checksum.Engine{BufferSize: cfg.BufferSize}
	alg := checksum.Algorithm(cfg.Algorithm)

	w := &report.Writer{
		Out:    stdout,
		Err:    stderr,
		JSON:   cfg.Output == config.OutputJSON,
		Format: cfg.Format,
	}

	failed := 0

	for _, pa := range paths {
		res := en.Compute(pa, alg)
		if !res.Succeeded() {
			failed++
		}

		if err := w.Write(pa, alg, res); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf(
			"%s: %d of %d: %w",
			errCtx, failed, len(paths), errFilesFailed,
		)
	}

	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
