package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/render"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linefit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "./images/plots/scatter_plot.png", cfg.Output)
	assert.Equal(t, 1600, cfg.Plot.Width)
	assert.Equal(t, 5.0, cfg.Plot.LineXMax)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Title, cfg.Title)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
input: points.csv
output: out/fit.png
title: Rainfall vs yield
log_level: debug
strict: true
plot:
  width: 800
  height: 600
  x_max: 12
  line_x_max: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "points.csv", cfg.Input)
	assert.Equal(t, "out/fit.png", cfg.Output)
	assert.Equal(t, "Rainfall vs yield", cfg.Title)
	assert.Equal(t, "X Axis", cfg.XLabel, "unset keys keep defaults")
	assert.True(t, cfg.Strict)
	assert.Equal(t, 800, cfg.Plot.Width)
	assert.Equal(t, 12.0, cfg.Plot.XMax)
	assert.Equal(t, 6.0, cfg.Plot.YMax)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "title: from file\nplot:\n  width: 800\n")
	t.Setenv("LINEFIT_TITLE", "from env")
	t.Setenv("LINEFIT_WIDTH", "1024")
	t.Setenv("LINEFIT_LOG_LEVEL", "WARN")
	t.Setenv("LINEFIT_STRICT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.Title)
	assert.Equal(t, 1024, cfg.Plot.Width)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Strict)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "plot: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("bad env integer", func(t *testing.T) {
		t.Setenv("LINEFIT_HEIGHT", "tall")
		_, err := Load("")
		var ve *errors.ValidationError
		require.True(t, errors.As(err, &ve), "got %v", err)
		assert.Equal(t, "LINEFIT_HEIGHT", ve.ParamName)
	})

	t.Run("bad env bool", func(t *testing.T) {
		t.Setenv("LINEFIT_STRICT", "maybe")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty output", func(c *Config) { c.Output = "" }, "Config.Output"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "Config.LogLevel"},
		{"zero width", func(c *Config) { c.Plot.Width = 0 }, "Config.Plot.Width"},
		{"inverted x axis", func(c *Config) { c.Plot.XMax = -1 }, "Config.Plot.XMax"},
		{"inverted line", func(c *Config) { c.Plot.LineXMax = c.Plot.LineXMin }, "Config.Plot.LineXMax"},
		{"zero radius", func(c *Config) { c.Plot.PointRadius = 0 }, "Config.Plot.PointRadius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var ve *errors.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.field, ve.ParamName)
		})
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	cfg.Plot.Width = 640
	cfg.Plot.LineXMax = 4

	o := cfg.RenderOptions()
	def := render.DefaultOptions()
	assert.Equal(t, 640, o.Width)
	assert.Equal(t, 4.0, o.LineXMax)
	assert.Equal(t, def.LineColor, o.LineColor)
}
