package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/linefit/config"
	"github.com/YuminosukeSato/linefit/dataset"
	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/metrics"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/pkg/log"
	"github.com/YuminosukeSato/linefit/render"
)

// rendererFactory builds the renderer from the effective plot options.
type rendererFactory func(opts render.Options, logger log.Logger) render.Renderer

func defaultRenderer(opts render.Options, logger log.Logger) render.Renderer {
	return render.NewPlotRenderer(opts, logger)
}

type rootFlags struct {
	configPath string
	input      string
	output     string
	title      string
	xLabel     string
	yLabel     string
	logLevel   string
	strict     bool
	noPlot     bool
}

func newRootCmd(stdout, stderr io.Writer, newRenderer rendererFactory) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "linefit",
		Short: "Fit a least-squares line to x,y samples and plot it",
		Long: `linefit computes the ordinary least-squares slope, intercept and R² of a
two-dimensional sample set, prints them, and renders a scatter plot with the
fitted line as a PNG.

Without --input the built-in demo samples are used.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return err
			}
			if err := log.SetupLoggerTo(stderr, cfg.LogLevel); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return err
			}
			logger := log.GetLogger()

			// Once the logger exists it is the only error channel.
			if err := run(cfg, flags.noPlot, stdout, logger, newRenderer); err != nil {
				logger.Error("linefit failed", err)
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&flags.input, "input", "i", "", "CSV file of x,y rows (default: built-in demo samples)")
	f.StringVarP(&flags.output, "output", "o", "", "output PNG path")
	f.StringVar(&flags.title, "title", "", "plot title")
	f.StringVar(&flags.xLabel, "x-label", "", "x axis label")
	f.StringVar(&flags.yLabel, "y-label", "", "y axis label")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&flags.strict, "strict", false, "fail when the fit is undefined (fewer than 2 samples or constant x)")
	f.BoolVar(&flags.noPlot, "no-plot", false, "skip rendering")

	return cmd
}

// resolveConfig layers explicitly set flags over the loaded configuration.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = flags.input
	}
	if changed("output") {
		cfg.Output = flags.output
	}
	if changed("title") {
		cfg.Title = flags.title
	}
	if changed("x-label") {
		cfg.XLabel = flags.xLabel
	}
	if changed("y-label") {
		cfg.YLabel = flags.yLabel
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("strict") {
		cfg.Strict = flags.strict
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid flags")
	}
	return cfg, nil
}

func run(cfg config.Config, noPlot bool, stdout io.Writer, logger log.Logger, newRenderer rendererFactory) error {
	samples, source, err := loadSamples(cfg.Input)
	if err != nil {
		return err
	}
	logger.Info("samples loaded",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, source,
		log.SamplesKey, samples.Len(),
	)

	if cfg.Strict {
		if err := linear.Validate(samples); err != nil {
			return err
		}
	}

	est := linear.New(samples, linear.WithLogger(logger))
	est.Calculate()
	slope, intercept := est.SlopeIntercept()

	fmt.Fprintf(stdout, "Slope (coefficient): %v\n", slope)
	fmt.Fprintf(stdout, "intercept: %v\n", intercept)
	fmt.Fprintf(stdout, "r_squared: %v\n", est.RSquared())

	report, err := metrics.Evaluate(est.Targets(), est.Predictions())
	if err != nil {
		return errors.NewModelError("linefit.run", "evaluate fit", err)
	}
	fmt.Fprintf(stdout, "mse: %v\nrmse: %v\nmae: %v\n", report.MSE, report.RMSE, report.MAE)
	logger.Info("fit complete",
		log.SlopeKey, slope,
		log.InterceptKey, intercept,
		log.R2ScoreKey, est.RSquared(),
		log.MSEKey, report.MSE,
		log.RMSEKey, report.RMSE,
		log.MAEKey, report.MAE,
	)

	if noPlot {
		return nil
	}
	renderer := newRenderer(cfg.RenderOptions(), logger)
	return renderer.Render(render.Request{
		Samples:   est.Samples(),
		Slope:     slope,
		Intercept: intercept,
		Title:     cfg.Title,
		XLabel:    cfg.XLabel,
		YLabel:    cfg.YLabel,
		Path:      cfg.Output,
	})
}

func loadSamples(path string) (linear.SampleSet, string, error) {
	if path == "" {
		return linear.DemoSamples(), "builtin", nil
	}
	samples, err := dataset.LoadCSV(path)
	if err != nil {
		return nil, path, err
	}
	return samples, path, nil
}
