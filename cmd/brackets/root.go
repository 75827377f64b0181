package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/brackets/pkg/brackets"
	"github.com/dmitrymomot/brackets/pkg/config"
	"github.com/dmitrymomot/brackets/pkg/environment"
	"github.com/dmitrymomot/brackets/pkg/logger"
)

// appConfig is read from the environment; flags take precedence.
type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"brackets"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

type options struct {
	logLevel  string
	logFormat string
	showStack bool
	fromStdin bool
}

// referenceSamples run on a single shared validator when no input is given.
var referenceSamples = []string{"((((x))))", "(((())))", "(((()"}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "brackets [input...]",
		Short: "Check that bracket sequences are correctly nested",
		Long: "Prints true or false for every input, one per line, in order.\n" +
			"Only the symbols ()[]{} are allowed; any other character makes an input invalid.\n" +
			"Without inputs a few reference samples are checked on one validator and its stack is shown.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, opts)
			if err != nil {
				return err
			}

			inputs := args
			if opts.fromStdin {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				inputs = append(inputs, lines...)
			}

			out := cmd.OutOrStdout()
			switch {
			case len(inputs) == 0 && !opts.fromStdin:
				return runSamples(out, log)
			case opts.showStack:
				return runSequential(out, log, inputs)
			default:
				return runConcurrent(commandContext(cmd), out, log, inputs)
			}
		},
	}

	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "log format: json or text (overrides LOG_FORMAT)")
	cmd.Flags().BoolVar(&opts.showStack, "stack", false, "print the pending stack after every input")
	cmd.Flags().BoolVar(&opts.fromStdin, "stdin", false, "also read inputs from standard input, one per line")

	return cmd
}

// newLogger writes to the command's stderr so stdout carries only results.
func newLogger(cmd *cobra.Command, opts *options) (*slog.Logger, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	env, err := environment.Parse(cfg.Env)
	if err != nil {
		return nil, err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(env, cfg.Name),
		logger.WithOutput(cmd.ErrOrStderr()),
	}

	if level := firstNonEmpty(opts.logLevel, cfg.LogLevel); level != "" {
		l, err := logger.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithLevel(l))
	}

	if format := firstNonEmpty(opts.logFormat, cfg.LogFormat); format != "" {
		f, err := logger.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithFormat(f))
	}

	return logger.New(logOpts...).With(logger.Component("cli")), nil
}

// runSamples mirrors the reference demo: the stack is shown after the
// valid sample and after the one left open.
func runSamples(out io.Writer, log *slog.Logger) error {
	v := brackets.New()
	for i, s := range referenceSamples {
		ok := v.Check(s)
		log.Debug("sample checked", logger.Input(s), logger.Valid(ok), logger.Pending(v.Pending()))
		if _, err := fmt.Fprintln(out, ok); err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintf(out, "stack: %q\n", v.Pending()); err != nil {
				return err
			}
		}
	}
	return nil
}

func runSequential(out io.Writer, log *slog.Logger, inputs []string) error {
	v := brackets.New()
	for _, s := range inputs {
		ok := v.Check(s)
		log.Debug("input checked", logger.Input(s), logger.Valid(ok), logger.Pending(v.Pending()))
		if _, err := fmt.Fprintf(out, "%t\nstack: %q\n", ok, v.Pending()); err != nil {
			return err
		}
	}
	log.Info("checks completed", logger.Count(len(inputs)))
	return nil
}

func runConcurrent(ctx context.Context, out io.Writer, log *slog.Logger, inputs []string) error {
	results, err := brackets.CheckAll(ctx, inputs...)
	if err != nil {
		log.Error("checks interrupted", logger.Error(err))
		return err
	}

	for i, ok := range results {
		log.Debug("input checked", logger.Input(inputs[i]), logger.Valid(ok))
		if _, err := fmt.Fprintln(out, ok); err != nil {
			return err
		}
	}
	log.Info("checks completed", logger.Count(len(results)))
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
