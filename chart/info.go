package chart

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

// Info bar field keys, used in the label map. Setting a label to the empty
// string hides its field.
const (
	FieldPrice     = "price"
	FieldHighest   = "highest"
	FieldLowest    = "lowest"
	FieldVariation = "variation"
	FieldAverage   = "average"
	FieldVolume    = "volume"
)

var fieldOrder = []string{
	FieldPrice, FieldHighest, FieldLowest, FieldVariation, FieldAverage, FieldVolume,
}

// InfoBar renders the one-line statistics summary under the chart.
type InfoBar struct {
	Name   string
	labels map[string]string
}

func NewInfoBar(name string) *InfoBar {
	return &InfoBar{
		Name: name,
		labels: map[string]string{
			FieldPrice:     "Price:",
			FieldHighest:   "Highest:",
			FieldLowest:    "Lowest:",
			FieldVariation: "Var.:",
			FieldAverage:   "Avg.:",
			FieldVolume:    "Cum. Vol.:",
		},
	}
}

// SetLabel overrides a field label; the empty string hides the field.
func (ib *InfoBar) SetLabel(field, label string) {
	ib.labels[field] = label
}

// Render builds the stats line, each field individually colored, centered
// within width by visible (escape-stripped) length.
func (ib *InfoBar) Render(st market.Stats, width int, profile term.Profile) string {
	white := term.RGB(220, 220, 220)

	var parts []string
	if ib.Name != "" {
		parts = append(parts, term.Colorize(ib.Name, white, profile))
	}

	for _, field := range fieldOrder {
		label := ib.labels[field]
		if label == "" {
			continue
		}
		var value string
		switch field {
		case FieldPrice:
			value = term.Colorize(fmt.Sprintf("%.2f", st.LastPrice), term.Green, profile)
		case FieldHighest:
			value = term.Colorize(fmt.Sprintf("%.2f", st.MaxPrice), term.Green, profile)
		case FieldLowest:
			value = term.Colorize(fmt.Sprintf("%.2f", st.MinPrice), term.Red, profile)
		case FieldVariation:
			value = variationText(st, profile)
		case FieldAverage:
			// Green when price sits at or above the average.
			color := term.Red
			if st.LastPrice >= st.Average {
				color = term.Green
			}
			value = term.Colorize(fmt.Sprintf("%.2f", st.Average), color, profile)
		case FieldVolume:
			value = term.Colorize(humanize.CommafWithDigits(st.CumulativeVolume, 2), term.Gray, profile)
		}
		parts = append(parts, label+" "+value)
	}

	line := strings.Join(parts, " | ")

	if pad := (width - term.VisibleWidth(line)) / 2; pad > 0 {
		line = strings.Repeat(" ", pad) + line
	}
	return line
}

func variationText(st market.Stats, profile term.Profile) string {
	if !st.VariationDefined {
		return term.Colorize("N/A", term.Gray, profile)
	}
	color := term.Red
	if st.Variation >= 0 {
		color = term.Green
	}
	return term.Colorize(fmt.Sprintf("%+.2f%%", st.Variation), color, profile)
}
