package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/candleterm/market"
)

// BinanceClient fetches klines from the Binance public REST API.
type BinanceClient struct {
	BaseURL string
	HTTP    *http.Client
}

// FetchOptions selects the kline series to download.
type FetchOptions struct {
	Symbol   string // e.g. BTCUSDT
	Interval string // e.g. 1m, 1h, 1d
	Limit    int    // number of candles, capped by the API at 1000
}

// Fetch downloads a kline series and converts it to candles, oldest first.
func (c *BinanceClient) Fetch(ctx context.Context, opts FetchOptions) ([]market.Candle, error) {
	if opts.Symbol == "" {
		return nil, fmt.Errorf("feed: missing symbol")
	}
	if opts.Interval == "" {
		return nil, fmt.Errorf("feed: missing interval")
	}

	base := c.BaseURL
	if base == "" {
		base = "https://api.binance.com"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	u.Path = "/api/v3/klines"

	q := u.Query()
	q.Set("symbol", strings.ToUpper(strings.TrimSpace(opts.Symbol)))
	q.Set("interval", opts.Interval)
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return nil, fmt.Errorf("feed: binance klines http %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	// Klines come back as arrays:
	// [openTime, open, high, low, close, volume, closeTime, ...]
	// with prices and volume as strings.
	var raw [][]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("feed: decode klines: %w", err)
	}

	candles := make([]market.Candle, 0, len(raw))
	for i, k := range raw {
		if len(k) < 6 {
			return nil, fmt.Errorf("feed: kline %d truncated", i)
		}
		openTime, ok := k[0].(float64)
		if !ok {
			return nil, fmt.Errorf("feed: kline %d has a bad open time", i)
		}

		var prices [5]float64
		for j := 1; j <= 5; j++ {
			s, ok := k[j].(string)
			if !ok {
				return nil, fmt.Errorf("feed: kline %d field %d not a string", i, j)
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("feed: kline %d field %d: %w", i, j, err)
			}
			prices[j-1] = v
		}

		volume := prices[4]
		candles = append(candles, market.Candle{
			Open:      prices[0],
			High:      prices[1],
			Low:       prices[2],
			Close:     prices[3],
			Volume:    &volume,
			Timestamp: time.UnixMilli(int64(openTime)).UTC(),
		})
	}
	return candles, nil
}
