// Package cli wires the pattern demos into a cobra command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sghaida/patterns/internal/config"
	"github.com/sghaida/patterns/internal/console"
	"github.com/sghaida/patterns/internal/logging"
	"github.com/sghaida/patterns/lazy"
	"github.com/sghaida/patterns/singleton"
	"github.com/spf13/cobra"
)

const groupCreational = "creational"

// app carries what every subcommand needs. It is filled by the root
// PersistentPreRunE before any subcommand runs.
type app struct {
	version    string
	configPath string

	cfg     config.Config
	logger  *slog.Logger
	printer *console.Printer
	greeter *lazy.Provider[singleton.Greeter]
}

// Option customizes the command tree, mostly for tests.
type Option func(*app)

// WithGreeterProvider replaces the greeter provider that setup would otherwise
// build with the configured logger.
func WithGreeterProvider(p *lazy.Provider[singleton.Greeter]) Option {
	return func(a *app) {
		if p != nil {
			a.greeter = p
		}
	}
}

// NewRootCmd builds the full command tree.
func NewRootCmd(version string, opts ...Option) *cobra.Command {
	a := &app{version: version}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "patterns",
		Short: "Run design pattern demos",
		Long: `patterns runs small demos of design patterns.

Creational: a lazily constructed singleton, simple and method-based shape
factories, and an abstract furniture factory.
Structural: adapter, composite, decorator, facade, proxy.
Behavioral: chain of responsibility, command, mediator, observer, state,
template method.`,
		Version: version,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// returned by the demos (e.g. unknown tags)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "patterns version %s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (YAML)")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.String("log-format", config.DefaultLogFormat, "log format: text or json")
	pf.Bool("no-color", config.DefaultNoColor, "disable colored output")

	root.AddGroup(
		&cobra.Group{ID: groupCreational, Title: "Creational patterns:"},
		&cobra.Group{ID: groupStructural, Title: "Structural patterns:"},
		&cobra.Group{ID: groupBehavioral, Title: "Behavioral patterns:"},
	)
	root.AddCommand(inGroup(groupCreational,
		newSingletonCmd(a),
		newFactoryCmd(a),
		newFurnitureCmd(a),
	)...)
	root.AddCommand(newStructuralCmds(a)...)
	root.AddCommand(newBehavioralCmds(a)...)
	root.AddCommand(
		newCatalogCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	a.printer = console.New(cmd.OutOrStdout(), !cfg.NoColor)
	if a.greeter == nil {
		// The command tree lives for the whole process, so this provider is the
		// process-wide one for the binary.
		a.greeter = singleton.NewProvider(lazy.WithLogger(logger))
	}

	logger.Debug("configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("config", a.configPath),
		slog.String("log_level", cfg.LogLevel))
	return nil
}

// Execute runs the command tree with os.Args and returns the process exit code.
func Execute(version string) int {
	return run(NewRootCmd(version), nil, nil, nil)
}

// run executes root. Nil writers and args keep cobra's defaults.
func run(root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args != nil {
		root.SetArgs(args)
	}
	if stdout != nil {
		root.SetOut(stdout)
	}
	if stderr != nil {
		root.SetErr(stderr)
	}
	if err := root.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		return 1
	}
	return 0
}
