package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/candleterm/internal/feed"
	"github.com/rustyeddy/candleterm/market"
)

func newRenderCmd(rc *rootConfig) *cobra.Command {
	cf := &chartFlags{}
	var file string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart from a candle file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.loadConfig()
			if err != nil {
				return err
			}
			if err := cf.merge(cmd, cfg); err != nil {
				return err
			}

			var candles []market.Candle
			if file == "" || file == "-" {
				candles, err = feed.ReadAuto(os.Stdin)
			} else {
				candles, err = feed.Load(file)
			}
			if err != nil {
				return err
			}
			if err := market.Validate(candles); err != nil {
				return err
			}

			ch, err := buildChart(cfg, candles, resolveSize(cf.width, cf.height), rc.profile())
			if err != nil {
				return err
			}

			fmt.Print(ch.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Candle file (csv, json, .xz, .zip); - for stdin")
	addChartFlags(cmd, cf)

	return cmd
}
