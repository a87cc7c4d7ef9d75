package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	selectable "github.com/albertocavalcante/go-selectable"
	"github.com/albertocavalcante/go-selectable/internal/config"
	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/manifest"
	"github.com/albertocavalcante/go-selectable/pool"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json" | "yaml"
	Manifest string
	Config   string
	Causer   string
	NoColor  bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

func newRootCmd() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "zyppsel",
		Short:         "Inspect and change package selections",
		Long:          "zyppsel loads a pool manifest and shows or changes what would happen to each package on commit.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return commandError(fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			if opts.NoColor {
				color.NoColor = true
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log decisions to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVarP(&opts.Manifest, "manifest", "m", "", "pool manifest (.zypp, .star, .yaml)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "TOML config file")
	cmd.PersistentFlags().StringVar(&opts.Causer, "causer", "", "rank of requested changes (solver|appl_low|appl_high|user)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newSetCmd(opts))
	cmd.AddCommand(newDiffCmd(opts))

	return cmd
}

// session is everything a command needs: the loaded proxy and the rank
// to request changes with.
type session struct {
	proxy  *selectable.Proxy
	causer pool.Causer
	logger *slog.Logger
}

func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := &config.Config{}
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, commandError("load config", err)
		}
	}

	if opts.Manifest == "" {
		return nil, commandError("no manifest given (use --manifest)", nil)
	}
	p, res, err := manifest.LoadFile(opts.Manifest)
	if res != nil {
		for _, w := range res.Warnings {
			logger.Warn("manifest", "warning", w.Error())
		}
	}
	if err != nil {
		return nil, commandError("load manifest", err)
	}

	pxOpts, err := cfg.Options()
	if err != nil {
		return nil, commandError("configure", err)
	}
	px, err := selectable.NewProxy(p, append(pxOpts, selectable.WithLogger(logger))...)
	if err != nil {
		return nil, commandError("configure", err)
	}

	causer := cfg.Causer()
	if opts.Causer != "" {
		if causer, err = pool.ParseCauser(opts.Causer); err != nil {
			return nil, commandError("bad --causer", err)
		}
	}
	return &session{proxy: px, causer: causer, logger: logger}, nil
}

// lookup resolves an identity argument such as "amarok" or "patch:amarok-sec".
func (s *session) lookup(arg string) (*selectable.Selectable, error) {
	id, err := label.ParseIdent(arg)
	if err != nil {
		return nil, commandError("bad identity", err)
	}
	sel, err := s.proxy.Lookup(id)
	if err != nil {
		return nil, commandError("lookup", err)
	}
	return sel, nil
}
