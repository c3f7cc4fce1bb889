package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/candleterm/market"
)

func fv(v float64) *float64 { return &v }

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	candles := []market.Candle{
		{Open: 100, High: 105, Low: 99, Close: 103, Volume: fv(10), Timestamp: time.Unix(1700000000, 0).UTC()},
		{Open: 103, High: 108, Low: 102, Close: 106},
		{Open: 106, High: 110, Low: 104, Close: 109, Volume: fv(30), Timestamp: time.Unix(1700007200, 0).UTC()},
	}

	snapID, err := s.SaveSnapshot(ctx, "btc hourly", "BTCUSDT", "1h", candles)
	require.NoError(t, err)
	require.NotEmpty(t, snapID)

	loaded, err := s.LoadCandles(ctx, snapID)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, candles, loaded, "series survives a save/load cycle")
	assert.Nil(t, loaded[1].Volume)
	assert.True(t, loaded[1].Timestamp.IsZero())
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := t.Context()

	candles := []market.Candle{{Open: 1, High: 2, Low: 1, Close: 2}}

	first, err := s.SaveSnapshot(ctx, "first", "BTCUSDT", "1h", candles)
	require.NoError(t, err)
	second, err := s.SaveSnapshot(ctx, "second", "ETHUSDT", "4h", candles)
	require.NoError(t, err)

	snaps, err := s.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	assert.Equal(t, second, snaps[0].ID)
	assert.Equal(t, first, snaps[1].ID)
	assert.Equal(t, "second", snaps[0].Name)
	assert.Equal(t, "ETHUSDT", snaps[0].Symbol)
	assert.Equal(t, "4h", snaps[0].Interval)
	assert.Equal(t, 1, snaps[0].CandleCount)
	assert.WithinDuration(t, time.Now(), snaps[0].CreatedAt, time.Minute)
}

func TestLoadCandlesUnknownID(t *testing.T) {
	s := openTestStore(t)
	_, err := s.LoadCandles(t.Context(), "01J00000000000000000000000")
	assert.Error(t, err)
}
