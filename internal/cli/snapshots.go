package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/candleterm/internal/store"
)

func newSnapshotsCmd(rc *rootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Saved candle snapshots",
	}

	cmd.AddCommand(
		newSnapshotsListCmd(rc),
		newSnapshotsShowCmd(rc),
	)

	return cmd
}

func newSnapshotsListCmd(rc *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(rc.dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			snaps, err := st.ListSnapshots(cmd.Context())
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Println("no snapshots")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Name", "Symbol", "Interval", "Created", "Candles"})
			for _, sn := range snaps {
				table.Append([]string{
					sn.ID, sn.Name, sn.Symbol, sn.Interval,
					sn.CreatedAt.Format(time.RFC3339),
					strconv.Itoa(sn.CandleCount),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newSnapshotsShowCmd(rc *rootConfig) *cobra.Command {
	cf := &chartFlags{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.loadConfig()
			if err != nil {
				return err
			}
			if err := cf.merge(cmd, cfg); err != nil {
				return err
			}

			st, err := store.Open(rc.dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			candles, err := st.LoadCandles(cmd.Context(), args[0])
			if err != nil {
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

	addChartFlags(cmd, cf)
	return cmd
}
