// Package config loads linefit settings with priority env > file > defaults.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/render"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "LINEFIT_"

// Config is the full tool configuration.
type Config struct {
	// Input is a CSV file of x,y rows. Empty means the built-in demo set.
	Input string `yaml:"input"`

	// Output is the PNG file written by the renderer.
	Output string `yaml:"output" validate:"required"`

	Title  string `yaml:"title" validate:"max=256"`
	XLabel string `yaml:"x_label" validate:"max=256"`
	YLabel string `yaml:"y_label" validate:"max=256"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Strict rejects sample sets on which the fit is undefined instead of
	// letting NaN/Inf through.
	Strict bool `yaml:"strict"`

	Plot PlotConfig `yaml:"plot"`
}

// PlotConfig mirrors render.Options in a serializable form.
type PlotConfig struct {
	Width       int     `yaml:"width" validate:"gt=0,lte=20000"`
	Height      int     `yaml:"height" validate:"gt=0,lte=20000"`
	DPI         int     `yaml:"dpi" validate:"gt=0,lte=1200"`
	XMin        float64 `yaml:"x_min"`
	XMax        float64 `yaml:"x_max" validate:"gtfield=XMin"`
	YMin        float64 `yaml:"y_min"`
	YMax        float64 `yaml:"y_max" validate:"gtfield=YMin"`
	LineXMin    float64 `yaml:"line_x_min"`
	LineXMax    float64 `yaml:"line_x_max" validate:"gtfield=LineXMin"`
	PointRadius float64 `yaml:"point_radius" validate:"gt=0"`
}

// Default returns the configuration of the stock tool: demo samples, a
// 1600x1200 plot at ./images/plots/scatter_plot.png.
func Default() Config {
	o := render.DefaultOptions()
	return Config{
		Output:   "./images/plots/scatter_plot.png",
		Title:    "Scatter Plot with Linear Regression",
		XLabel:   "X Axis",
		YLabel:   "Y Axis",
		LogLevel: "info",
		Plot: PlotConfig{
			Width:       o.Width,
			Height:      o.Height,
			DPI:         o.DPI,
			XMin:        o.XMin,
			XMax:        o.XMax,
			YMin:        o.YMin,
			YMax:        o.YMax,
			LineXMin:    o.LineXMin,
			LineXMax:    o.LineXMax,
			PointRadius: o.PointRadius,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then LINEFIT_* environment variables, and validates
// the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, errors.Wrap(err, "load config file")
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, errors.Wrap(err, "load config from env")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	return nil
}

// applyEnv overrides cfg from the environment. lookup is os.LookupEnv in
// production.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	str("INPUT", &cfg.Input)
	str("OUTPUT", &cfg.Output)
	str("TITLE", &cfg.Title)
	str("X_LABEL", &cfg.XLabel)
	str("Y_LABEL", &cfg.YLabel)
	str("LOG_LEVEL", &cfg.LogLevel)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if v, ok := lookup(EnvPrefix + "STRICT"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewValidationError(EnvPrefix+"STRICT", "not a boolean", v)
		}
		cfg.Strict = b
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"WIDTH", &cfg.Plot.Width},
		{"HEIGHT", &cfg.Plot.Height},
		{"DPI", &cfg.Plot.DPI},
	}
	for _, f := range ints {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.NewValidationError(EnvPrefix+f.name, "not an integer", v)
		}
		*f.dst = n
	}
	return nil
}

// Validate checks struct constraints. The first violation is reported as a
// ValidationError naming the YAML key path.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errors.NewValidationError(fe.Namespace(), "failed '"+fe.Tag()+"' constraint", fe.Value())
	}
	return errors.WithStack(err)
}

// RenderOptions converts the plot section for the renderer.
func (c Config) RenderOptions() render.Options {
	o := render.DefaultOptions()
	o.Width = c.Plot.Width
	o.Height = c.Plot.Height
	o.DPI = c.Plot.DPI
	o.XMin, o.XMax = c.Plot.XMin, c.Plot.XMax
	o.YMin, o.YMax = c.Plot.YMin, c.Plot.YMax
	o.LineXMin, o.LineXMax = c.Plot.LineXMin, c.Plot.LineXMax
	o.PointRadius = c.Plot.PointRadius
	return o
}
