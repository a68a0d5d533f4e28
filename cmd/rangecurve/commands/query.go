// Package commands implements the rangecurve CLI subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/rangecurve/internal/config"
	"github.com/Sumatoshi-tech/rangecurve/pkg/series"
)

const (
	queryCmdUse   = "query <file>"
	queryCmdShort = "Min/max of a series over an x interval"
	queryArgCount = 1

	fromFlag  = "from"
	fromUsage = "lower x bound of the query interval"
	toFlag    = "to"
	toUsage   = "upper x bound of the query interval"
)

// Flags shared by subcommands.
const (
	nameFlag    = "name"
	nameShort   = "n"
	nameUsage   = "series name (default: configured default, then first in file)"
	configFlag  = "config"
	configUsage = "config file path"
)

// ErrSeriesNotFound is returned when --name matches no series in the file.
var ErrSeriesNotFound = errors.New("series not found")

// ErrInvertedInterval is returned when --from exceeds --to.
var ErrInvertedInterval = errors.New("--from must not exceed --to")

// NewQueryCommand creates the query subcommand.
func NewQueryCommand() *cobra.Command {
	var (
		from, to   float64
		name       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   queryCmdUse,
		Short: queryCmdShort,
		Args:  cobra.ExactArgs(queryArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			return runQuery(cmd.OutOrStdout(), cfg, args[0], name, from, to)
		},
	}

	cmd.Flags().Float64Var(&from, fromFlag, 0, fromUsage)
	cmd.Flags().Float64Var(&to, toFlag, 0, toUsage)
	cmd.Flags().StringVarP(&name, nameFlag, nameShort, "", nameUsage)
	cmd.Flags().StringVar(&configPath, configFlag, "", configUsage)

	_ = cmd.MarkFlagRequired(fromFlag)
	_ = cmd.MarkFlagRequired(toFlag)

	return cmd
}

func runQuery(out io.Writer, cfg *config.Config, path, name string, from, to float64) error {
	if from > to {
		return fmt.Errorf("%w: %v > %v", ErrInvertedInterval, from, to)
	}

	s, err := selectSeries(path, name, cfg)
	if err != nil {
		return err
	}

	c, err := s.Curve()
	if err != nil {
		return err
	}

	slog.Debug("built curve", "series", s.Name, "samples", c.Len())

	mm, ok := c.MinMaxOver(from, to)
	if !ok {
		warnColor(cfg).Fprintf(out, "%s: no data in [%s, %s]\n",
			s.Name, formatFloat(from, cfg), formatFloat(to, cfg))

		return nil
	}

	if cfg.Output.Format == config.FormatPlain {
		fmt.Fprintf(out, "%s [%s, %s] min=%s max=%s\n",
			s.Name, formatFloat(from, cfg), formatFloat(to, cfg),
			formatFloat(mm.Min, cfg), formatFloat(mm.Max, cfg))

		return nil
	}

	w := table.NewWriter()
	w.SetOutputMirror(out)
	w.AppendHeader(table.Row{"Series", "Interval", "Min", "Max"})
	w.AppendRow(table.Row{
		s.Name,
		fmt.Sprintf("[%s, %s]", formatFloat(from, cfg), formatFloat(to, cfg)),
		formatFloat(mm.Min, cfg),
		formatFloat(mm.Max, cfg),
	})
	w.Render()

	return nil
}

// selectSeries loads path and picks one series: the requested name, the
// configured default, or the first in the file.
func selectSeries(path, name string, cfg *config.Config) (series.Series, error) {
	list, err := series.Load(path)
	if err != nil {
		return series.Series{}, err
	}

	if name == "" {
		name = cfg.Series.Default
	}

	if name == "" {
		return list[0], nil
	}

	for _, s := range list {
		if s.Name == name {
			return s, nil
		}
	}

	return series.Series{}, fmt.Errorf("%w: %q in %s", ErrSeriesNotFound, name, path)
}
