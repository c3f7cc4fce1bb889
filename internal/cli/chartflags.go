package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/candleterm/chart"
	"github.com/rustyeddy/candleterm/config"
	"github.com/rustyeddy/candleterm/market"
	"github.com/rustyeddy/candleterm/term"
)

// chartFlags are the per-command chart options; set flags override the
// config file.
type chartFlags struct {
	width  int
	height int

	name      string
	mode      string
	bullColor string
	bearColor string

	rangeStart int
	rangeEnd   int
	priceMin   float64
	priceMax   float64

	noVolume     bool
	volumeHeight int

	highlights []string
}

func addChartFlags(cmd *cobra.Command, cf *chartFlags) {
	f := cmd.Flags()
	f.IntVar(&cf.width, "width", 0, "Chart width (0 = terminal width)")
	f.IntVar(&cf.height, "height", 0, "Chart height (0 = terminal height)")
	f.StringVar(&cf.name, "name", "", "Chart title shown in the info bar")
	f.StringVar(&cf.mode, "mode", "", "Scaling mode: fit|fixed|price")
	f.StringVar(&cf.bullColor, "bull-color", "", "Bullish candle color (name, r,g,b or #hex)")
	f.StringVar(&cf.bearColor, "bear-color", "", "Bearish candle color (name, r,g,b or #hex)")
	f.IntVar(&cf.rangeStart, "range-start", 0, "First candle index (fixed mode)")
	f.IntVar(&cf.rangeEnd, "range-end", 0, "Last candle index, inclusive (fixed mode)")
	f.Float64Var(&cf.priceMin, "price-min", 0, "Lower price bound (price mode)")
	f.Float64Var(&cf.priceMax, "price-max", 0, "Upper price bound (price mode)")
	f.BoolVar(&cf.noVolume, "no-volume", false, "Hide the volume pane")
	f.IntVar(&cf.volumeHeight, "volume-height", 0, "Volume pane height in rows")
	f.StringArrayVar(&cf.highlights, "highlight", nil, "Highlight price as price:color (repeatable)")
}

// merge folds set flags into the loaded config.
func (cf *chartFlags) merge(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.Chart.Name = cf.name
	}
	if flags.Changed("mode") {
		cfg.Chart.Mode = cf.mode
	}
	if flags.Changed("bull-color") {
		cfg.Chart.BullColor = cf.bullColor
	}
	if flags.Changed("bear-color") {
		cfg.Chart.BearColor = cf.bearColor
	}
	if flags.Changed("range-start") || flags.Changed("range-end") {
		start, end := cf.rangeStart, cf.rangeEnd
		cfg.Chart.RangeStart = &start
		cfg.Chart.RangeEnd = &end
		cfg.Chart.Mode = "fixed"
	}
	if flags.Changed("price-min") || flags.Changed("price-max") {
		lo, hi := cf.priceMin, cf.priceMax
		cfg.Chart.PriceMin = &lo
		cfg.Chart.PriceMax = &hi
		cfg.Chart.Mode = "price"
	}
	if cf.noVolume {
		cfg.Volume.Enabled = false
	}
	if flags.Changed("volume-height") {
		cfg.Volume.Height = cf.volumeHeight
	}
	for _, h := range cf.highlights {
		price, color, ok := strings.Cut(h, ":")
		if !ok {
			return fmt.Errorf("bad --highlight %q, want price:color", h)
		}
		p, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return fmt.Errorf("bad --highlight price %q: %w", price, err)
		}
		cfg.Chart.Highlights = append(cfg.Chart.Highlights, config.HighlightConfig{
			Price: p,
			Color: color,
		})
	}
	return cfg.Validate()
}

// buildChart assembles a chart from validated config. Colors resolve once
// here; rendering never re-parses them.
func buildChart(cfg *config.Config, candles []market.Candle, size term.Size, profile term.Profile) (*chart.Chart, error) {
	ch := chart.New(candles, size)
	ch.SetProfile(profile)
	ch.SetName(cfg.Chart.Name)

	if err := ch.Data().SetMargins(chart.Margins{
		Top:    cfg.Chart.MarginTop,
		Right:  cfg.Chart.MarginRight,
		Bottom: cfg.Chart.MarginBottom,
		Left:   cfg.Chart.MarginLeft,
	}); err != nil {
		return nil, err
	}

	if cfg.Chart.BullColor != "" {
		c, err := term.Parse(cfg.Chart.BullColor)
		if err != nil {
			return nil, err
		}
		ch.SetBullColor(c)
	}
	if cfg.Chart.BearColor != "" {
		c, err := term.Parse(cfg.Chart.BearColor)
		if err != nil {
			return nil, err
		}
		ch.SetBearColor(c)
	}

	for field, label := range cfg.Chart.Labels {
		ch.SetLabel(field, label)
	}
	for _, h := range cfg.Chart.Highlights {
		c, err := term.Parse(h.Color)
		if err != nil {
			return nil, err
		}
		ch.AddHighlight(h.Price, c)
	}

	if cfg.Volume.Enabled {
		pane := chart.NewVolumePane(cfg.Volume.Height)
		if cfg.Volume.FillChar != "" {
			pane.FillRune = []rune(cfg.Volume.FillChar)[0]
		}
		if cfg.Volume.BullColor != "" {
			c, err := term.Parse(cfg.Volume.BullColor)
			if err != nil {
				return nil, err
			}
			pane.BullColor = c
		}
		if cfg.Volume.BearColor != "" {
			c, err := term.Parse(cfg.Volume.BearColor)
			if err != nil {
				return nil, err
			}
			pane.BearColor = c
		}
		ch.SetVolumePane(pane)
	}

	mode, err := chart.ParseScalingMode(cfg.Chart.Mode)
	if err != nil {
		return nil, err
	}
	switch mode {
	case chart.ScaleFixed:
		if cfg.Chart.RangeStart == nil || cfg.Chart.RangeEnd == nil {
			return nil, fmt.Errorf("fixed mode needs range_start and range_end")
		}
		if err := ch.Data().SetTimeRange(*cfg.Chart.RangeStart, *cfg.Chart.RangeEnd); err != nil {
			return nil, err
		}
	case chart.ScalePrice:
		if cfg.Chart.PriceMin == nil || cfg.Chart.PriceMax == nil {
			return nil, fmt.Errorf("price mode needs price_min and price_max")
		}
		if err := ch.Data().SetPriceRange(*cfg.Chart.PriceMin, *cfg.Chart.PriceMax); err != nil {
			return nil, err
		}
	default:
		ch.Data().ScaleToFit()
	}

	return ch, nil
}
