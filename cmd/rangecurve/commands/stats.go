package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/rangecurve/internal/config"
	"github.com/Sumatoshi-tech/rangecurve/pkg/series"
)

const (
	statsCmdUse   = "stats <file>"
	statsCmdShort = "Per-series summary: sample count, gaps, domain, extremes"
	statsArgCount = 1

	noDataCell = "-"
)

// NewStatsCommand creates the stats subcommand.
func NewStatsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   statsCmdUse,
		Short: statsCmdShort,
		Args:  cobra.ExactArgs(statsArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			return runStats(cmd.OutOrStdout(), cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&configPath, configFlag, "", configUsage)

	return cmd
}

func runStats(out io.Writer, cfg *config.Config, path string) error {
	list, err := series.Load(path)
	if err != nil {
		return err
	}

	slog.Debug("loaded series file", "path", path, "series", len(list))

	if cfg.Output.Format == config.FormatPlain {
		return statsPlain(out, cfg, list)
	}

	return statsTable(out, cfg, list)
}

func statsTable(out io.Writer, cfg *config.Config, list []series.Series) error {
	w := table.NewWriter()
	w.SetOutputMirror(out)
	w.AppendHeader(table.Row{"Series", "Samples", "Gaps", "Domain", "Min", "Max"})

	for _, s := range list {
		c, err := s.Curve()
		if err != nil {
			return err
		}

		x0, x1 := c.Domain()
		mn, mx := noDataCell, noDataCell

		if mm, ok := c.MinMaxOver(x0, x1); ok {
			mn = formatFloat(mm.Min, cfg)
			mx = formatFloat(mm.Max, cfg)
		}

		w.AppendRow(table.Row{
			s.Name,
			humanize.Comma(int64(s.Len())),
			humanize.Comma(int64(s.Gaps())),
			fmt.Sprintf("[%s, %s]", formatFloat(x0, cfg), formatFloat(x1, cfg)),
			mn,
			mx,
		})
	}

	w.Render()

	return nil
}

func statsPlain(out io.Writer, cfg *config.Config, list []series.Series) error {
	for _, s := range list {
		c, err := s.Curve()
		if err != nil {
			return err
		}

		x0, x1 := c.Domain()

		mm, ok := c.MinMaxOver(x0, x1)
		if !ok {
			warnColor(cfg).Fprintf(out, "%s: %s samples, %s gaps, no data\n",
				s.Name, humanize.Comma(int64(s.Len())), humanize.Comma(int64(s.Gaps())))

			continue
		}

		fmt.Fprintf(out, "%s: %s samples, %s gaps, domain [%s, %s], min=%s max=%s\n",
			s.Name, humanize.Comma(int64(s.Len())), humanize.Comma(int64(s.Gaps())),
			formatFloat(x0, cfg), formatFloat(x1, cfg),
			formatFloat(mm.Min, cfg), formatFloat(mm.Max, cfg))
	}

	return nil
}
