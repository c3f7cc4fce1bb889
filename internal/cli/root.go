// Package cli implements the candleterm command tree.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/candleterm/config"
	"github.com/rustyeddy/candleterm/term"
)

type rootConfig struct {
	configPath string
	dbPath     string
	logLevel   string
	noColor    bool
}

func (rc *rootConfig) loadConfig() (*config.Config, error) {
	if rc.configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(rc.configPath)
}

// profile picks the output color profile, honoring --no-color.
func (rc *rootConfig) profile() term.Profile {
	if rc.noColor {
		return term.ProfileNone
	}
	return term.DetectProfile(os.Stdout)
}

// resolveSize returns explicit dimensions when both flags are set,
// otherwise queries the terminal, falling back to 120x30 when there is no
// tty to ask.
func resolveSize(width, height int) term.Size {
	if width > 0 && height > 0 {
		return term.Size{Width: width, Height: height}
	}
	size, err := term.NewSizeProvider(os.Stdout).Size()
	if err != nil {
		log.WithError(err).Debug("terminal size query failed, using defaults")
		size = term.Size{Width: 120, Height: 30}
	}
	if width > 0 {
		size.Width = width
	}
	if height > 0 {
		size.Height = height
	}
	return size
}

func NewRootCmd() *cobra.Command {
	rc := &rootConfig{}

	cmd := &cobra.Command{
		Use:           "candleterm",
		Short:         "Candleterm — candlestick charts for your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.configPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.dbPath, "db", "./candleterm.sqlite", "SQLite snapshot database")
	cmd.PersistentFlags().StringVar(&rc.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&rc.noColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(rc.logLevel)
		if err != nil {
			return fmt.Errorf("bad --log-level %q: %w", rc.logLevel, err)
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)
		return nil
	}

	cmd.AddCommand(
		newRenderCmd(rc),
		newFetchCmd(rc),
		newSnapshotsCmd(rc),
		newStatsCmd(rc),
		newExportCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("candleterm (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
