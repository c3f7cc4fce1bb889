package feed

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/rustyeddy/candleterm/market"
)

// csvCandle is the canonical candle CSV row:
// open,high,low,close,volume,timestamp — volume and timestamp optional.
type csvCandle struct {
	Open      float64  `csv:"open"`
	High      float64  `csv:"high"`
	Low       float64  `csv:"low"`
	Close     float64  `csv:"close"`
	Volume    *float64 `csv:"volume"`
	Timestamp *int64   `csv:"timestamp"` // unix seconds
}

// ReadCSV decodes a candle CSV stream into chronological candles.
func ReadCSV(r io.Reader) ([]market.Candle, error) {
	var rows []csvCandle
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("feed: parse csv: %w", err)
	}

	candles := make([]market.Candle, 0, len(rows))
	for _, row := range rows {
		c := market.Candle{
			Open:   row.Open,
			High:   row.High,
			Low:    row.Low,
			Close:  row.Close,
			Volume: row.Volume,
		}
		if row.Timestamp != nil {
			c.Timestamp = time.Unix(*row.Timestamp, 0).UTC()
		}
		candles = append(candles, c)
	}
	return candles, nil
}
