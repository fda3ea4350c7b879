package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/waveplot"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, unknown, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, waveplot.DefaultSamples, cfg.Samples)

	opts := cfg.WaveformOptions()
	assert.Equal(t, "land", opts.Labels[0])
	assert.Equal(t, "water", opts.Labels[1])
	assert.Equal(t, vg.Points(25), opts.Theme.FontSize)

	cloud := cfg.CloudOptions()
	assert.Equal(t, waveplot.DefaultView, cloud.View)
	assert.Equal(t, waveplot.Limits{Min: -60, Max: 60}, cloud.ZLim)
	assert.Equal(t, ' ', cfg.LoadOptions().Comma)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "waveplot.toml", `
samples = 4
comma = ","
keep_z = true
font_size = 12
colorz = "typo"

[labels]
0 = "ground"
3 = "vegetation"

[waveforms]
title = "Returns"
colors = ["k", "#ff8800"]

[cloud]
elevation = 10
azimuth = 30
limit = 0
legend = true
radius = 2
`)
	cfg, unknown, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"colorz"}, unknown)

	load := cfg.LoadOptions()
	assert.Equal(t, 4, load.Samples)
	assert.Equal(t, ',', load.Comma)
	assert.True(t, load.KeepZ)

	wf := cfg.WaveformOptions()
	assert.Equal(t, "Returns", wf.Title)
	assert.Equal(t, map[int]string{0: "ground", 1: "water", 3: "vegetation"}, wf.Labels)
	assert.Equal(t, []string{"k", "#ff8800"}, wf.Theme.WaveformColors)
	assert.Equal(t, vg.Points(12), wf.Theme.FontSize)

	cloud := cfg.CloudOptions()
	assert.Equal(t, 10.0, cloud.View.Elevation)
	assert.Equal(t, 30.0, cloud.View.Azimuth)
	assert.Equal(t, waveplot.Limits{}, cloud.XLim)
	assert.True(t, cloud.Legend)
	assert.Equal(t, vg.Points(2), cloud.Radius)
	// Untouched values keep their defaults.
	assert.Equal(t, 20.0, cfg.Cloud.Width)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":    "samples = ",
		"label key": "[labels]\nwater = \"1\"\n",
		"comma":     "comma = \"ab\"\n",
		"type":      "samples = \"many\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := LoadConfig(writeFile(t, "bad.toml", content))
			assert.Error(t, err)
		})
	}

	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
