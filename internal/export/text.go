// Package export writes rendered charts to files: plain text with escape
// sequences stripped, or PNG images re-derived from prices.
package export

import (
	"fmt"
	"os"

	"github.com/rustyeddy/candleterm/term"
)

// WriteText saves a rendered chart as plain text. Color escapes are
// stripped so the file is readable in any editor.
func WriteText(path, rendered string) error {
	if err := os.WriteFile(path, []byte(term.Strip(rendered)), 0644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
