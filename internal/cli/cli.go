// Package cli implements the waveplot command-line interface.
//
// The commands load a waveform file and write the plots to image files:
//   - waveforms: overlay of all waveforms colored by class
//   - cloud: 3D scatter plot of the point positions grouped by class
//   - render: both plots into a directory
//
// Plot settings come from an optional TOML file (--config); flags given
// on the command line win. All commands log to stderr, --verbose (-v)
// enables debug output.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/vdobler/waveplot"
)

const appName = "waveplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is reported by --version.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	dump       bool
}

// New creates a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Waveplot draws labeled waveform samples",
		Long:         `Waveplot reads labeled 3D points with sampled waveforms and draws the waveforms and the point cloud colored by class.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVar(&c.dump, "dump", false, "print id, class, label and position of every loaded row")

	root.AddCommand(c.waveformsCommand())
	root.AddCommand(c.cloudCommand())
	root.AddCommand(c.renderCommand())
	return root
}

func (c *CLI) loadConfig() error {
	cfg, unknown, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	for _, key := range unknown {
		c.Logger.Warn("unknown config key", "key", key, "file", c.configPath)
	}
	if c.configPath != "" {
		c.Logger.Debug("config loaded", "file", c.configPath)
	}
	c.Config = cfg
	return nil
}

// load reads the input file with the configured options. With --dump
// the rows are printed to the command's output.
func (c *CLI) load(cmd *cobra.Command, input string) (*waveplot.DataFrame, error) {
	ctx := cmd.Context()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prog := newProgress(c.Logger)
	df, err := waveplot.LoadFile(input, c.Config.LoadOptions())
	if err != nil {
		return nil, err
	}
	prog.done("loaded", "file", input, "rows", df.N, "samples", c.Config.Samples)

	zmin, zmax, _, _ := waveplot.MinMax(df, waveplot.ColZ)
	c.Logger.Debug("data", "classes", waveplot.Levels(df, waveplot.ColClass), "zmin", zmin, "zmax", zmax)

	if c.dump {
		if err := c.dumpRows(cmd.OutOrStdout(), df); err != nil {
			return nil, err
		}
	}
	return df, ctx.Err()
}

func (c *CLI) dumpRows(w io.Writer, df *waveplot.DataFrame) error {
	labels, _ := c.Config.labels()
	if err := waveplot.AddLabels(df, waveplot.ColClass, labels); err != nil {
		return err
	}
	return df.Print(w, waveplot.ColID, waveplot.ColClass, waveplot.ColLabel,
		waveplot.ColX, waveplot.ColY, waveplot.ColZ)
}

// save writes p to output, the format follows from the extension.
func (c *CLI) save(ctx context.Context, p *plot.Plot, width, height float64, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("bad plot size %gx%g", width, height)
	}
	if err := p.Save(inches(width), inches(height), output); err != nil {
		return errors.Wrapf(err, "cannot save %s", output)
	}
	c.Logger.Info("written", "file", output)
	return nil
}

// outputName builds dir/base.format.
func outputName(dir, base, format string) string {
	return filepath.Join(dir, base+"."+strings.TrimPrefix(format, "."))
}
