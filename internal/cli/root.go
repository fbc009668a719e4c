// Package cli implements the titleformat command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llehouerou/titleformat/internal/config"
	"github.com/llehouerou/titleformat/internal/errmsg"
	"github.com/llehouerou/titleformat/internal/store"
)

// Flag names for persistent global flags.
const (
	flagConfig  = "config"
	flagDB      = "db"
	flagVerbose = "verbose"
)

// app carries what every command needs once the root command has loaded the
// configuration.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

func (a *app) openStore() (*store.Manager, error) {
	st, err := store.Open(a.cfg.Database)
	if err != nil {
		return nil, errmsg.Error(errmsg.OpStoreOpen, err)
	}
	return st, nil
}

// NewRootCmd creates the root command. The configuration and logger are
// set up before any subcommand runs.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "titleformat",
		Short:         "Normalize titles with a configurable cleanup pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().String(flagConfig, "", "config file (default: XDG config dir, then ./config.toml)")
	cmd.PersistentFlags().String(flagDB, "", "library database path (overrides the config file)")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false, "log debug diagnostics")

	cmd.AddCommand(newFormatCmd(a))
	cmd.AddCommand(newLibraryCmd(a))
	cmd.AddCommand(newTagsCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString(flagConfig)
	dbPath, _ := cmd.Flags().GetString(flagDB)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)

	var (
		cfg *config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFrom([]string{cfgPath})
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return errmsg.Error(errmsg.OpConfigLoad, err)
	}
	if dbPath != "" {
		cfg.Database = dbPath
	}

	level, err := cfg.Level()
	if err != nil {
		return errmsg.Error(errmsg.OpConfigLoad, err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
