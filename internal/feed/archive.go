package feed

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"

	"github.com/rustyeddy/candleterm/market"
)

// loadXZ unwraps an xz stream; the format comes from the inner extension
// (data.csv.xz → csv).
func loadXZ(path string) ([]market.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("feed: open xz %s: %w", path, err)
	}
	return readByExt(strings.TrimSuffix(path, filepath.Ext(path)), r)
}

// loadZip extracts a zip archive to a scratch directory and reads the
// first candle file it contains.
func loadZip(path string) ([]market.Candle, error) {
	dir, err := os.MkdirTemp("", "candleterm-zip-")
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("feed: extract %s: %w", path, err)
	}

	var inner string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || inner != "" {
			return err
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".csv", ".json":
			inner = p
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("feed: scan %s: %w", path, err)
	}
	if inner == "" {
		return nil, fmt.Errorf("feed: no candle file inside %s", path)
	}

	f, err := os.Open(inner)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	defer f.Close()

	return readByExt(inner, f)
}
