package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vdobler/waveplot"
)

func (c *CLI) cloudCommand() *cobra.Command {
	var (
		output                   string
		elev, azim, limit        float64
		legend, frame, depthSort bool
	)

	cmd := &cobra.Command{
		Use:   "cloud <input>",
		Short: "Draw the point positions as 3D scatter plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("elev") {
				c.Config.Cloud.Elevation = elev
			}
			if flags.Changed("azim") {
				c.Config.Cloud.Azimuth = azim
			}
			if flags.Changed("limit") {
				c.Config.Cloud.Limit = limit
			}
			if flags.Changed("legend") {
				c.Config.Cloud.Legend = legend
			}
			if flags.Changed("frame") {
				c.Config.Cloud.Frame = frame
			}
			if flags.Changed("depth-sort") {
				c.Config.Cloud.DepthSort = depthSort
			}
			df, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}
			return c.drawCloud(cmd.Context(), df, output)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "cloud.png", "output file (png, svg, pdf, eps, jpg, tif)")
	flags.Float64Var(&elev, "elev", waveplot.DefaultView.Elevation, "view elevation in degrees")
	flags.Float64Var(&azim, "azim", waveplot.DefaultView.Azimuth, "view azimuth in degrees")
	flags.Float64Var(&limit, "limit", 60, "show [-limit,limit] on every axis, 0 fits the data")
	flags.BoolVar(&legend, "legend", false, "add a legend of the classes")
	flags.BoolVar(&frame, "frame", false, "draw the edges of the plot box")
	flags.BoolVar(&depthSort, "depth-sort", false, "draw points back to front across classes")
	return cmd
}

func (c *CLI) drawCloud(ctx context.Context, df *waveplot.DataFrame, output string) error {
	prog := newProgress(c.Logger)
	opts := c.Config.CloudOptions()
	p, err := waveplot.PlotPointCloud(df, opts)
	if err != nil {
		return err
	}
	prog.done("point cloud plotted", "points", df.N,
		"elevation", opts.View.Elevation, "azimuth", opts.View.Azimuth)
	return c.save(ctx, p, c.Config.Cloud.Width, c.Config.Cloud.Height, output)
}
