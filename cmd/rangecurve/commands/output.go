package commands

import (
	"strconv"

	"github.com/fatih/color"

	"github.com/Sumatoshi-tech/rangecurve/internal/config"
)

// formatFloat renders a value with the configured significant digits.
func formatFloat(v float64, cfg *config.Config) string {
	return strconv.FormatFloat(v, 'g', cfg.Output.Precision, 64)
}

// warnColor returns the highlight for no-data notices, honoring the
// configured color switch.
func warnColor(cfg *config.Config) *color.Color {
	col := color.New(color.FgYellow)

	if !cfg.Output.Color {
		col.DisableColor()
	}

	return col
}
