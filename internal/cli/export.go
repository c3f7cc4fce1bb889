package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/candleterm/internal/export"
	"github.com/rustyeddy/candleterm/internal/feed"
	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

func newExportCmd(rc *rootConfig) *cobra.Command {
	cf := &chartFlags{}
	var (
		file   string
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a chart to a text or PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file required")
			}
			if out == "" {
				return fmt.Errorf("--out required")
			}

			cfg, err := rc.loadConfig()
			if err != nil {
				return err
			}
			if err := cf.merge(cmd, cfg); err != nil {
				return err
			}

			candles, err := feed.Load(file)
			if err != nil {
				return err
			}
			if err := market.Validate(candles); err != nil {
				return err
			}

			switch format {
			case "text":
				size := resolveSize(cf.width, cf.height)
				ch, err := buildChart(cfg, candles, size, term.ProfileNone)
				if err != nil {
					return err
				}
				if err := export.WriteText(out, ch.Render()); err != nil {
					return err
				}
			case "png":
				opts := export.PNGOptions{Width: cf.width, Height: cf.height}
				if cfg.Chart.BullColor != "" {
					if opts.BullColor, err = term.Parse(cfg.Chart.BullColor); err != nil {
						return err
					}
				}
				if cfg.Chart.BearColor != "" {
					if opts.BearColor, err = term.Parse(cfg.Chart.BearColor); err != nil {
						return err
					}
				}
				if err := export.WritePNG(out, candles, opts); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q, want text or png", format)
			}

			log.WithFields(log.Fields{"out": out, "format": format}).Info("exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Candle file (csv, json, .xz, .zip)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file path")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|png")
	addChartFlags(cmd, cf)

	return cmd
}
