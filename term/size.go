package term

import (
	"fmt"
	"os"

	xterm "golang.org/x/term"
)

// Size is a terminal dimension pair in character cells.
type Size struct {
	Width  int
	Height int
}

// SizeProvider supplies terminal dimensions. The chart core never queries
// the process environment itself; callers inject a provider and pass the
// resulting Size in.
type SizeProvider interface {
	Size() (Size, error)
}

// FixedSize is a SizeProvider returning a constant size, for explicit
// overrides and tests.
type FixedSize Size

func (f FixedSize) Size() (Size, error) {
	return Size(f), nil
}

type fileSizeProvider struct {
	f *os.File
}

// NewSizeProvider queries the terminal attached to f.
func NewSizeProvider(f *os.File) SizeProvider {
	return fileSizeProvider{f: f}
}

func (p fileSizeProvider) Size() (Size, error) {
	w, h, err := xterm.GetSize(int(p.f.Fd()))
	if err != nil {
		return Size{}, fmt.Errorf("term: query size: %w", err)
	}
	return Size{Width: w, Height: h}, nil
}
