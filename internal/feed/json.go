package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/candleterm/market"
)

type jsonCandle struct {
	Open      float64  `json:"open"`
	High      float64  `json:"high"`
	Low       float64  `json:"low"`
	Close     float64  `json:"close"`
	Volume    *float64 `json:"volume,omitempty"`
	Timestamp *int64   `json:"timestamp,omitempty"` // unix seconds
}

// ReadJSON decodes a JSON array of candle objects.
func ReadJSON(r io.Reader) ([]market.Candle, error) {
	var rows []jsonCandle
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("feed: parse json: %w", err)
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
