package store

// Schema creates the snapshot tables. Candles are keyed by snapshot and
// sequence index so load order always matches insertion order.
const Schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	symbol       TEXT NOT NULL DEFAULT '',
	interval     TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL,
	candle_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS candles (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
	idx         INTEGER NOT NULL,
	open        REAL NOT NULL,
	high        REAL NOT NULL,
	low         REAL NOT NULL,
	close       REAL NOT NULL,
	volume      REAL,
	ts          INTEGER,
	PRIMARY KEY (snapshot_id, idx)
);
`
