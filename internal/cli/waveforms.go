package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vdobler/waveplot"
)

func (c *CLI) waveformsCommand() *cobra.Command {
	var output, title string

	cmd := &cobra.Command{
		Use:   "waveforms <input>",
		Short: "Overlay all waveforms colored by class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("title") {
				c.Config.Waveforms.Title = title
			}
			df, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}
			return c.drawWaveforms(cmd.Context(), df, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "waveforms.png", "output file (png, svg, pdf, eps, jpg, tif)")
	cmd.Flags().StringVar(&title, "title", "", "plot title")
	return cmd
}

func (c *CLI) drawWaveforms(ctx context.Context, df *waveplot.DataFrame, output string) error {
	prog := newProgress(c.Logger)
	p, err := waveplot.PlotWaveforms(df, c.Config.WaveformOptions())
	if err != nil {
		return err
	}
	prog.done("waveforms plotted", "rows", df.N)
	return c.save(ctx, p, c.Config.Waveforms.Width, c.Config.Waveforms.Height, output)
}
