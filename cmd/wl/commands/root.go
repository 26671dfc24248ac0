package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchlist/internal/app"
	"watchlist/internal/config"
	"watchlist/internal/domain"
)

// Version is reported by --version.
var Version = "0.4.0"

// cli carries state shared by the subcommands of one root command.
type cli struct {
	wire *app.Wire
}

// Execute runs the wl command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh wl command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "wl",
		Short:         "Create and manage watch lists",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log := app.NewLogger(cfg, cmd.ErrOrStderr())
			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			log.WithField("command", cmd.Name()).Debug("wired")
			c.wire = w
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringP("file", "f", "", "watch list file (default ~/.wl/watchlist.json, env WATCHLIST_FILE_PATH)")
	root.PersistentFlags().String("config", "", "config file (default ~/.config/wl/config.toml, env WATCHLIST_CONFIG)")
	root.PersistentFlags().Bool("verbose", false, "log debug diagnostics to stderr")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	})

	root.AddCommand(
		newCmd(c),
		addCmd(c),
		showCmd(c),
		randomCmd(c),
		deleteCmd(c),
		searchCmd(c),
	)
	return root
}
