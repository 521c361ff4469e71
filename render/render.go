// Package render draws a sample set and its fitted line as a PNG image.
//
// Every failure, including panics raised by the plotting backend, is
// reported as an error matching ErrRenderFailed.
package render

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/pkg/log"
)

// ErrRenderFailed is matched by every error returned from a Renderer.
var ErrRenderFailed = errors.New("render failed")

// Request carries everything needed to draw one plot.
type Request struct {
	Samples   linear.SampleSet
	Slope     float64
	Intercept float64
	Title     string
	XLabel    string
	YLabel    string
	// Path is the output file. Parent directories are created.
	Path string
}

// Renderer produces an image file for a fitted line.
type Renderer interface {
	Render(req Request) error
}

// Options controls plot geometry. Zero fields take the DefaultOptions value.
type Options struct {
	Width, Height int // pixels
	DPI           int

	XMin, XMax float64
	YMin, YMax float64

	// The fitted line is drawn from LineXMin to LineXMax.
	LineXMin, LineXMax float64

	PointRadius float64 // pixels
	TitleSize   float64 // points

	PointColor color.Color
	LineColor  color.Color
	Background color.Color
}

// DefaultOptions returns a 1600x1200 image with both axes on [0, 6] and the
// line drawn over [0, 5].
func DefaultOptions() Options {
	return Options{
		Width:       1600,
		Height:      1200,
		DPI:         96,
		XMin:        0,
		XMax:        6,
		YMin:        0,
		YMax:        6,
		LineXMin:    0,
		LineXMax:    5,
		PointRadius: 5,
		TitleSize:   20,
		PointColor:  color.RGBA{B: 255, A: 255},
		LineColor:   color.RGBA{R: 255, A: 255},
		Background:  color.White,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	if o.XMin == 0 && o.XMax == 0 {
		o.XMin, o.XMax = d.XMin, d.XMax
	}
	if o.YMin == 0 && o.YMax == 0 {
		o.YMin, o.YMax = d.YMin, d.YMax
	}
	if o.LineXMin == 0 && o.LineXMax == 0 {
		o.LineXMin, o.LineXMax = d.LineXMin, d.LineXMax
	}
	if o.PointRadius <= 0 {
		o.PointRadius = d.PointRadius
	}
	if o.TitleSize <= 0 {
		o.TitleSize = d.TitleSize
	}
	if o.PointColor == nil {
		o.PointColor = d.PointColor
	}
	if o.LineColor == nil {
		o.LineColor = d.LineColor
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	return o
}

// px converts a pixel count to a vg.Length at the given DPI.
func px(n float64, dpi int) vg.Length {
	return vg.Length(n) * vg.Inch / vg.Length(dpi)
}

// PlotRenderer is the gonum/plot implementation of Renderer.
type PlotRenderer struct {
	opts   Options
	logger log.Logger
}

// NewPlotRenderer creates a PlotRenderer. A nil logger uses log.GetLogger().
func NewPlotRenderer(opts Options, logger log.Logger) *PlotRenderer {
	if logger == nil {
		logger = log.GetLogger()
	}
	return &PlotRenderer{
		opts:   opts.withDefaults(),
		logger: logger.With(log.ComponentKey, "render"),
	}
}

// Options returns the effective options.
func (r *PlotRenderer) Options() Options {
	return r.opts
}

// Render draws req and writes a PNG to req.Path. The image is encoded
// before the file is touched, so a failed draw leaves nothing on disk.
func (r *PlotRenderer) Render(req Request) error {
	if req.Path == "" {
		return r.fail(req.Path, errors.NewValueError("render.Render", "empty output path"))
	}

	var buf bytes.Buffer
	if err := r.WriteTo(&buf, req); err != nil {
		return err
	}

	if dir := filepath.Dir(req.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return r.fail(req.Path, err)
		}
	}
	if err := os.WriteFile(req.Path, buf.Bytes(), 0o644); err != nil {
		return r.fail(req.Path, err)
	}

	r.logger.Info("image written",
		log.OperationKey, log.OperationRender,
		log.OutputPathKey, req.Path,
		log.SamplesKey, len(req.Samples),
	)
	return nil
}

// WriteTo draws req and encodes the PNG to w. req.Path is only used in
// error messages.
func (r *PlotRenderer) WriteTo(w io.Writer, req Request) error {
	err := errors.SafeExecute("render.draw", func() error {
		p, err := r.build(req)
		if err != nil {
			return err
		}

		c := vgimg.NewWith(
			vgimg.UseWH(px(float64(r.opts.Width), r.opts.DPI), px(float64(r.opts.Height), r.opts.DPI)),
			vgimg.UseDPI(r.opts.DPI),
			vgimg.UseBackgroundColor(r.opts.Background),
		)
		p.Draw(draw.New(c))

		_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return err
	})
	if err != nil {
		return r.fail(req.Path, err)
	}
	return nil
}

// build assembles the scatter, the fitted segment and the axes.
func (r *PlotRenderer) build(req Request) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = r.opts.Background
	p.Title.Text = req.Title
	p.Title.TextStyle.Font.Size = vg.Points(r.opts.TitleSize)
	p.X.Label.Text = req.XLabel
	p.Y.Label.Text = req.YLabel
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, len(req.Samples))
	for i, s := range req.Samples {
		points[i].X, points[i].Y = s.X, s.Y
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, errors.Wrap(err, "scatter")
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = r.opts.PointColor
	scatter.GlyphStyle.Radius = px(r.opts.PointRadius, r.opts.DPI)

	p.Add(scatter)

	// A degenerate fit has no drawable line; the scatter is still plotted.
	segment := plotter.XYs{
		{X: r.opts.LineXMin, Y: req.Slope*r.opts.LineXMin + req.Intercept},
		{X: r.opts.LineXMax, Y: req.Slope*r.opts.LineXMax + req.Intercept},
	}
	if errors.IsFinite(segment[0].Y) && errors.IsFinite(segment[1].Y) {
		line, err := plotter.NewLine(segment)
		if err != nil {
			return nil, errors.Wrap(err, "fitted line")
		}
		line.LineStyle.Color = r.opts.LineColor
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	} else {
		r.logger.Warn("fitted line not drawn",
			log.SlopeKey, req.Slope,
			log.InterceptKey, req.Intercept,
		)
	}

	// The axes stay fixed even when points fall outside them.
	p.X.Min, p.X.Max = r.opts.XMin, r.opts.XMax
	p.Y.Min, p.Y.Max = r.opts.YMin, r.opts.YMax
	return p, nil
}

// fail is logged at debug level; the caller owns error reporting.
func (r *PlotRenderer) fail(path string, cause error) error {
	err := errors.NewModelError("render.Render", "render failed", cause)
	err = errors.Wrapf(errors.Mark(err, ErrRenderFailed), "render %q", path)
	r.logger.Debug("render failed", err, log.OutputPathKey, path)
	return err
}
