package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dshills/tac/internal/app"
	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/logging"
	"github.com/dshills/tac/internal/renderer/backend"
)

// Flag names double as viper keys; TAC_<NAME> overrides them.
const (
	flagConfig   = "config"
	flagAutosave = "autosave"
	flagLogLevel = "log-level"
	flagLogFile  = "log-file"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

// stdioIsTerminal is replaced in tests.
var stdioIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

type cli struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "tac",
		Short: "Terminal analog clock",
		Long: "tac draws an analog clock in the terminal.\n" +
			"Press Escape to edit its settings and q to quit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.interactive(cmd.Context(), app.ModeClock)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringP(flagConfig, "c", config.DefaultPath(), "Path to the key/value document")
	flags.Bool(flagAutosave, true, "Write the document after every change")
	flags.String(flagLogLevel, "warn", "Log level (debug, info, warn, error)")
	flags.String(flagLogFile, "", "Write logs to this file")

	c.v.SetDefault(flagConfig, config.DefaultPath())
	c.v.SetDefault(flagAutosave, true)
	c.v.SetDefault(flagLogLevel, "warn")
	for _, name := range []string{flagConfig, flagAutosave, flagLogLevel, flagLogFile} {
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}
	c.v.SetEnvPrefix("TAC")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		c.editCommand(),
		c.dumpCommand(),
		c.versionCommand(),
	)
	return root
}

func (c *cli) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the configuration editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.interactive(cmd.Context(), app.ModeEditor)
		},
	}
}

func (c *cli) dumpCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := c.logLevel()
			if err != nil {
				return err
			}
			logger := logging.NewLogger(logging.LoggerConfig{
				Level:  level,
				Output: c.stderr,
				Prefix: "tac",
			})
			cfg := config.Load(c.v.GetString(flagConfig), config.WithLogger(logger))
			return cfg.Export(c.stdout, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatJSON, "Output format (json, yaml, toml)")
	return cmd
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.stdout, "tac %s\n", version)
			fmt.Fprintf(c.stdout, "Commit: %s\n", commit)
			fmt.Fprintf(c.stdout, "Built: %s\n", date)
		},
	}
}

func (c *cli) logLevel() (logging.LogLevel, error) {
	s := c.v.GetString(flagLogLevel)
	if !logging.ValidLogLevel(s) {
		return 0, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", s)
	}
	return logging.ParseLogLevel(s), nil
}

// options resolves flags and environment into app.Options. The returned
// function closes the log file, if any.
func (c *cli) options(mode app.Mode) (app.Options, func(), error) {
	if _, err := c.logLevel(); err != nil {
		return app.Options{}, nil, err
	}
	opts := app.Options{
		ConfigPath:  c.v.GetString(flagConfig),
		Autosave:    c.v.GetBool(flagAutosave),
		Mode:        mode,
		LogLevel:    c.v.GetString(flagLogLevel),
		Diagnostics: c.stderr,
	}

	path := c.v.GetString(flagLogFile)
	if path == "" {
		return opts, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return app.Options{}, nil, fmt.Errorf("open log file: %w", err)
	}
	opts.LogOutput = f
	return opts, func() { f.Close() }, nil
}

func (c *cli) interactive(ctx context.Context, mode app.Mode) error {
	if !stdioIsTerminal() {
		return errNotTerminal
	}

	opts, closeLog, err := c.options(mode)
	if err != nil {
		return err
	}
	defer closeLog()

	application, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(terminal); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		application.Shutdown()
	}()

	if err := application.Run(ctx); !app.IsQuit(err) {
		return err
	}
	return nil
}
