package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (c *CLI) renderCommand() *cobra.Command {
	var dir, format string

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Write the waveform and the point cloud plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(err, "cannot create output directory")
			}
			df, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := c.drawWaveforms(ctx, df, outputName(dir, "waveforms", format)); err != nil {
				return err
			}
			return c.drawCloud(ctx, df, outputName(dir, "cloud", format))
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", "png", "output format (png, svg, pdf, eps, jpg, tif)")
	return cmd
}
