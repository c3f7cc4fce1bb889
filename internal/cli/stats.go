package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/candleterm/internal/feed"
	"github.com/rustyeddy/candleterm/market"
)

func newStatsCmd(rc *rootConfig) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate statistics for a candle file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var candles []market.Candle
			var err error
			if file == "" || file == "-" {
				candles, err = feed.ReadAuto(os.Stdin)
			} else {
				candles, err = feed.Load(file)
			}
			if err != nil {
				return err
			}

			st := market.ComputeStats(candles)

			variation := "N/A"
			if st.VariationDefined {
				variation = fmt.Sprintf("%+.2f%%", st.Variation)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Stat", "Value"})
			table.Append([]string{"Candles", fmt.Sprintf("%d", len(candles))})
			table.Append([]string{"Last price", fmt.Sprintf("%.2f", st.LastPrice)})
			table.Append([]string{"Highest", fmt.Sprintf("%.2f", st.MaxPrice)})
			table.Append([]string{"Lowest", fmt.Sprintf("%.2f", st.MinPrice)})
			table.Append([]string{"Average", fmt.Sprintf("%.2f", st.Average)})
			table.Append([]string{"Variation", variation})
			table.Append([]string{"Cumulative volume", humanize.CommafWithDigits(st.CumulativeVolume, 2)})
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Candle file; - for stdin")
	return cmd
}
