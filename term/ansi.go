package term

import (
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

const reset = "\x1b[0m"

// Profile describes how much color the output target can take.
type Profile int

const (
	ProfileNone Profile = iota
	ProfileBasic
	ProfileTrueColor
)

// DetectProfile picks a color profile for a file descriptor. An explicit
// FORCE_COLOR wins, NO_COLOR disables everything, non-ttys get no color,
// and "256color"-capable or truecolor terminals get the full range.
// Everything else degrades to the basic eight colors.
func DetectProfile(f *os.File) Profile {
	if os.Getenv("NO_COLOR") != "" {
		return ProfileNone
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return ProfileTrueColor
	}
	if f == nil || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return ProfileNone
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ProfileTrueColor
	}
	if strings.Contains(os.Getenv("TERM"), "256color") {
		return ProfileTrueColor
	}
	return ProfileBasic
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes color escape sequences from s.
func Strip(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns the on-screen cell width of s, ignoring escape
// sequences and accounting for wide runes.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}
