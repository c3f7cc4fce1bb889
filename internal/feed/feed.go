// Package feed acquires candle data: CSV and JSON files (optionally
// xz- or zip-compressed), stdin streams, and exchange fetches.
package feed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/candleterm/market"
)

// Load reads candles from a file, dispatching on extension. Compressed
// files (.xz, .zip) are unwrapped transparently; the inner extension picks
// the format.
func Load(path string) ([]market.Candle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return loadXZ(path)
	case ".zip":
		return loadZip(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	defer f.Close()

	return readByExt(path, f)
}

// ReadAuto reads candles from a stream, sniffing JSON versus CSV from the
// first non-space byte.
func ReadAuto(r io.Reader) ([]market.Candle, error) {
	br := bufio.NewReader(r)
	for {
		b, err := br.Peek(1)
		if err != nil {
			return nil, fmt.Errorf("feed: empty input")
		}
		if b[0] == ' ' || b[0] == '\t' || b[0] == '\n' || b[0] == '\r' {
			br.Discard(1)
			continue
		}
		if b[0] == '[' {
			return ReadJSON(br)
		}
		return ReadCSV(br)
	}
}

func readByExt(path string, r io.Reader) ([]market.Candle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(r)
	case ".csv":
		return ReadCSV(r)
	default:
		return ReadAuto(r)
	}
}
