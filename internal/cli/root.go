// Package cli wires configuration, logging and the TUI behind a cobra command.
package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/splitbill/internal/config"
	"github.com/jask/splitbill/internal/friends"
	"github.com/jask/splitbill/internal/logging"
	"github.com/jask/splitbill/internal/tui"
)

type rootOptions struct {
	configPath string
	logFile    string
	logLevel   string
	noSeed     bool
}

// New returns the root command. It runs the TUI on the terminal.
func New() *cobra.Command {
	cmd, _ := newWithOptions()
	return cmd
}

func newWithOptions() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "splitbill",
		Short: "Split bills with friends and keep running balances.",
		Long: `splitbill keeps a list of friends with running balances for the
length of one session. Pick a friend, enter the bill and your share,
and say who paid; the friend's balance is adjusted accordingly.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.overrides(cmd))
			if err != nil {
				return err
			}
			closeLog, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer closeLog()

			app := newApp(cfg, slog.Default())
			slog.Info("starting", "friends", len(app.Friends()), "currency", cfg.UI.CurrencySymbol)
			return run(app)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $HOME/.config/splitbill/config.toml)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.noSeed, "no-seed", false, "start with an empty friend list")
	return cmd, opts
}

// overrides turns flags the user actually set into config keys.
func (o *rootOptions) overrides(cmd *cobra.Command) map[string]any {
	out := map[string]any{}
	if o.configPath != "" {
		out["config"] = o.configPath
	}
	if cmd.Flags().Changed("log-file") {
		out["log.path"] = o.logFile
	}
	if cmd.Flags().Changed("log-level") {
		out["log.level"] = o.logLevel
	}
	if o.noSeed {
		out["ui.seed_friends"] = false
	}
	return out
}

func newApp(cfg config.Config, logger *slog.Logger) *tui.App {
	var seed []friends.Friend
	if cfg.UI.SeedFriends {
		seed = friends.Seed()
	}
	return tui.New(tui.Options{
		Friends:        seed,
		CurrencySymbol: cfg.UI.CurrencySymbol,
		AvatarBaseURL:  cfg.UI.AvatarBaseURL,
		Logger:         logger,
	})
}

func run(app *tui.App) error {
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
