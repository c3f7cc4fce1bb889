package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/candleterm/internal/feed"
	"github.com/rustyeddy/candleterm/internal/store"
	"github.com/rustyeddy/candleterm/market"
)

func newFetchCmd(rc *rootConfig) *cobra.Command {
	cf := &chartFlags{}
	var (
		symbol   string
		interval string
		limit    int
		watch    time.Duration
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch klines from Binance and render them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.loadConfig()
			if err != nil {
				return err
			}
			if err := cf.merge(cmd, cfg); err != nil {
				return err
			}

			if symbol == "" {
				symbol = cfg.Fetch.Symbol
			}
			if symbol == "" {
				return fmt.Errorf("--symbol required")
			}
			if !cmd.Flags().Changed("interval") && cfg.Fetch.Interval != "" {
				interval = cfg.Fetch.Interval
			}
			if !cmd.Flags().Changed("limit") && cfg.Fetch.Limit > 0 {
				limit = cfg.Fetch.Limit
			}
			if cfg.Chart.Name == "" {
				cfg.Chart.Name = fmt.Sprintf("%s %s", symbol, interval)
			}

			client := &feed.BinanceClient{BaseURL: cfg.Fetch.BaseURL}
			opts := feed.FetchOptions{Symbol: symbol, Interval: interval, Limit: limit}

			run := func(ctx context.Context) error {
				candles, err := client.Fetch(ctx, opts)
				if err != nil {
					return err
				}
				if err := market.Validate(candles); err != nil {
					return err
				}

				if save {
					if err := saveSnapshot(ctx, rc, symbol, interval, candles); err != nil {
						return err
					}
				}

				ch, err := buildChart(cfg, candles, resolveSize(cf.width, cf.height), rc.profile())
				if err != nil {
					return err
				}
				if watch > 0 {
					// Home the cursor and clear so redraws don't scroll.
					fmt.Print("\x1b[2J\x1b[H")
				}
				fmt.Print(ch.Render())
				return nil
			}

			if err := run(cmd.Context()); err != nil {
				return err
			}
			if watch <= 0 {
				return nil
			}

			c := cron.New()
			_, err = c.AddFunc(fmt.Sprintf("@every %s", watch), func() {
				ctx, cancel := context.WithTimeout(context.Background(), watch)
				defer cancel()
				if err := run(ctx); err != nil {
					log.WithError(err).Warn("refresh failed")
				}
			})
			if err != nil {
				return fmt.Errorf("watch schedule: %w", err)
			}

			log.WithFields(log.Fields{
				"symbol": symbol,
				"every":  watch.String(),
			}).Info("watching")

			c.Start()
			defer c.Stop()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			<-sigCh
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Symbol like BTCUSDT")
	cmd.Flags().StringVar(&interval, "interval", "1h", "Kline interval: 1m, 5m, 1h, 1d, ...")
	cmd.Flags().IntVar(&limit, "limit", 150, "Number of candles to fetch")
	cmd.Flags().DurationVar(&watch, "watch", 0, "Refresh interval, e.g. 10s (0 = render once)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the fetched series as a snapshot")
	addChartFlags(cmd, cf)

	return cmd
}

func saveSnapshot(ctx context.Context, rc *rootConfig, symbol, interval string, candles []market.Candle) error {
	st, err := store.Open(rc.dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveSnapshot(ctx, symbol, symbol, interval, candles)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"id": id, "candles": len(candles)}).Info("snapshot saved")
	return nil
}
