package cli

import (
	"strconv"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/waveplot"
)

// Config is the content of the TOML configuration file. Lengths are in
// inches, font sizes and radii in points.
type Config struct {
	Samples  int               `toml:"samples"`
	Comma    string            `toml:"comma"`
	KeepZ    bool              `toml:"keep_z"`
	Labels   map[string]string `toml:"labels"`
	FontSize float64           `toml:"font_size"`

	Waveforms WaveformConfig `toml:"waveforms"`
	Cloud     CloudConfig    `toml:"cloud"`
}

type WaveformConfig struct {
	Width  float64  `toml:"width"`
	Height float64  `toml:"height"`
	Title  string   `toml:"title"`
	Colors []string `toml:"colors"`
}

type CloudConfig struct {
	Width     float64  `toml:"width"`
	Height    float64  `toml:"height"`
	Title     string   `toml:"title"`
	Elevation float64  `toml:"elevation"`
	Azimuth   float64  `toml:"azimuth"`
	Distance  float64  `toml:"distance"`
	Limit     float64  `toml:"limit"`
	Radius    float64  `toml:"radius"`
	Colors    []string `toml:"colors"`
	Legend    bool     `toml:"legend"`
	Frame     bool     `toml:"frame"`
	DepthSort bool     `toml:"depth_sort"`
}

// DefaultConfig mirrors the defaults of the waveplot package.
func DefaultConfig() Config {
	return Config{
		Samples:  waveplot.DefaultSamples,
		Comma:    " ",
		Labels:   map[string]string{"0": "land", "1": "water"},
		FontSize: 25,
		Waveforms: WaveformConfig{
			Width:  23,
			Height: 7,
			Title:  "Waveforms",
			Colors: append([]string(nil), waveplot.DefaultTheme.WaveformColors...),
		},
		Cloud: CloudConfig{
			Width:     20,
			Height:    20,
			Elevation: waveplot.DefaultView.Elevation,
			Azimuth:   waveplot.DefaultView.Azimuth,
			Limit:     60,
			Radius:    0.5,
			Colors:    append([]string(nil), waveplot.DefaultTheme.CloudColors...),
		},
	}
}

// LoadConfig reads the file name over the defaults. The returned keys
// are present in the file but unknown.
func LoadConfig(name string) (Config, []string, error) {
	cfg := DefaultConfig()
	if name == "" {
		return cfg, nil, nil
	}
	md, err := toml.DecodeFile(name, &cfg)
	if err != nil {
		return cfg, nil, errors.Wrapf(err, "cannot read config %s", name)
	}
	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	if _, err := cfg.labels(); err != nil {
		return cfg, unknown, errors.Wrapf(err, "bad config %s", name)
	}
	if _, err := cfg.comma(); err != nil {
		return cfg, unknown, errors.Wrapf(err, "bad config %s", name)
	}
	return cfg, unknown, nil
}

func (c Config) labels() (map[int]string, error) {
	labels := make(map[int]string, len(c.Labels))
	for k, v := range c.Labels {
		class, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Errorf("label key %q is not a class number", k)
		}
		labels[class] = v
	}
	return labels, nil
}

func (c Config) comma() (rune, error) {
	if c.Comma == "" {
		return ' ', nil
	}
	if utf8.RuneCountInString(c.Comma) != 1 {
		return 0, errors.Errorf("comma %q is not a single character", c.Comma)
	}
	r, _ := utf8.DecodeRuneInString(c.Comma)
	return r, nil
}

func (c Config) theme() waveplot.Theme {
	theme := waveplot.DefaultTheme
	theme.FontSize = vg.Points(c.FontSize)
	theme.WaveformColors = c.Waveforms.Colors
	theme.CloudColors = c.Cloud.Colors
	return theme
}

// LoadOptions returns the loader options.
func (c Config) LoadOptions() *waveplot.LoadOptions {
	comma, _ := c.comma()
	return &waveplot.LoadOptions{
		Samples: c.Samples,
		Comma:   comma,
		KeepZ:   c.KeepZ,
	}
}

// WaveformOptions returns the options of the waveform plot.
func (c Config) WaveformOptions() waveplot.WaveformOptions {
	opts := waveplot.DefaultWaveformOptions()
	opts.Samples = c.Samples
	opts.Labels, _ = c.labels()
	opts.Title = c.Waveforms.Title
	opts.Theme = c.theme()
	return opts
}

// CloudOptions returns the options of the point cloud plot.
func (c Config) CloudOptions() waveplot.CloudOptions {
	opts := waveplot.DefaultCloudOptions()
	lim := waveplot.Limits{Min: -c.Cloud.Limit, Max: c.Cloud.Limit}
	opts.XLim, opts.YLim, opts.ZLim = lim, lim, lim
	opts.View = waveplot.View{
		Elevation: c.Cloud.Elevation,
		Azimuth:   c.Cloud.Azimuth,
		Distance:  c.Cloud.Distance,
	}
	opts.Radius = vg.Points(c.Cloud.Radius)
	opts.Labels, _ = c.labels()
	opts.Title = c.Cloud.Title
	opts.Legend = c.Cloud.Legend
	opts.Frame = c.Cloud.Frame
	opts.DepthSort = c.Cloud.DepthSort
	opts.Theme = c.theme()
	return opts
}

func inches(x float64) vg.Length { return vg.Length(x) * vg.Inch }
