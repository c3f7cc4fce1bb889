// Package store persists candle snapshots in SQLite so fetched series can
// be re-rendered offline.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/pkg/id"
)

// Snapshot describes a saved candle series.
type Snapshot struct {
	ID          string
	Name        string
	Symbol      string
	Interval    string
	CreatedAt   time.Time
	CandleCount int
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveSnapshot writes a series under a fresh ULID and returns the id.
func (s *Store) SaveSnapshot(ctx context.Context, name, symbol, interval string, candles []market.Candle) (string, error) {
	snapID := id.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, name, symbol, interval, created_at, candle_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		snapID, name, symbol, interval,
		time.Now().UTC().Format(time.RFC3339), len(candles),
	)
	if err != nil {
		return "", err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO candles (snapshot_id, idx, open, high, low, close, volume, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, c := range candles {
		var volume sql.NullFloat64
		if c.Volume != nil {
			volume = sql.NullFloat64{Float64: *c.Volume, Valid: true}
		}
		var ts sql.NullInt64
		if !c.Timestamp.IsZero() {
			ts = sql.NullInt64{Int64: c.Timestamp.Unix(), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, snapID, i, c.Open, c.High, c.Low, c.Close, volume, ts); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return snapID, nil
}

// ListSnapshots returns saved series newest first. ULIDs sort by creation
// time, so ordering by id is ordering by age.
func (s *Store) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, symbol, interval, created_at, candle_count
		FROM snapshots ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var sn Snapshot
		var created string
		if err := rows.Scan(&sn.ID, &sn.Name, &sn.Symbol, &sn.Interval, &created, &sn.CandleCount); err != nil {
			return nil, err
		}
		sn.CreatedAt, _ = time.Parse(time.RFC3339, created)
		snaps = append(snaps, sn)
	}
	return snaps, rows.Err()
}

// LoadCandles returns a snapshot's series in insertion order.
func (s *Store) LoadCandles(ctx context.Context, snapshotID string) ([]market.Candle, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT open, high, low, close, volume, ts
		FROM candles WHERE snapshot_id = ? ORDER BY idx`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candles []market.Candle
	for rows.Next() {
		var c market.Candle
		var volume sql.NullFloat64
		var ts sql.NullInt64
		if err := rows.Scan(&c.Open, &c.High, &c.Low, &c.Close, &volume, &ts); err != nil {
			return nil, err
		}
		if volume.Valid {
			v := volume.Float64
			c.Volume = &v
		}
		if ts.Valid {
			c.Timestamp = time.Unix(ts.Int64, 0).UTC()
		}
		candles = append(candles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("store: snapshot %s not found", snapshotID)
	}
	return candles, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
