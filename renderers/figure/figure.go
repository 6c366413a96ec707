// Package figure plots line segments and their intersections with gonum/plot.
package figure

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/sweep"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	SegmentColor      = color.RGBA{0, 0, 255, 255}
	EndpointColor     = color.RGBA{0, 128, 0, 255}
	IntersectionColor = color.RGBA{255, 0, 0, 255}
)

type Options struct {
	Width, Height vg.Length
	Title         string
	Labels        bool // label segments by ID and points by their coordinates
}

var DefaultOptions = Options{
	Width:  16 * vg.Centimeter,
	Height: 16 * vg.Centimeter,
	Title:  "Line Segments with IDs, Endpoints, and Intersections",
	Labels: true,
}

// New returns a plot of the segments, their endpoints and the intersections.
func New(segs []sweep.Segment, zs []sweep.Point, opts *Options) (*plot.Plot, error) {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	ends := make(plotter.XYs, 0, 2*len(segs))
	mids := make(plotter.XYs, 0, len(segs))
	ids := make([]string, 0, len(segs))
	for _, s := range segs {
		l, err := plotter.NewLine(plotter.XYs{{X: s.P.X, Y: s.P.Y}, {X: s.Q.X, Y: s.Q.Y}})
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", s.ID, err)
		}
		l.LineStyle.Color = SegmentColor
		p.Add(l)

		ends = append(ends, plotter.XY{X: s.P.X, Y: s.P.Y}, plotter.XY{X: s.Q.X, Y: s.Q.Y})
		mids = append(mids, plotter.XY{X: (s.P.X + s.Q.X) / 2.0, Y: (s.P.Y + s.Q.Y) / 2.0})
		ids = append(ids, fmt.Sprintf("ID %d", s.ID))
	}

	if 0 < len(ends) {
		if err := addPoints(p, ends, EndpointColor, vg.Points(3), "Segment Endpoints", opts.Labels); err != nil {
			return nil, err
		}
		if opts.Labels {
			labels, err := plotter.NewLabels(plotter.XYLabels{XYs: mids, Labels: ids})
			if err != nil {
				return nil, err
			}
			labels.Offset = vg.Point{Y: vg.Points(5)}
			p.Add(labels)
		}
	}

	if 0 < len(zs) {
		xys := make(plotter.XYs, len(zs))
		for i, z := range zs {
			xys[i] = plotter.XY{X: z.X, Y: z.Y}
		}
		if err := addPoints(p, xys, IntersectionColor, vg.Points(4), "Intersections", opts.Labels); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func addPoints(p *plot.Plot, xys plotter.XYs, c color.Color, radius vg.Length, name string, label bool) error {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	p.Legend.Add(name, s)

	if label {
		coords := make([]string, len(xys))
		for i, xy := range xys {
			coords[i] = fmt.Sprintf("(%.2f, %.2f)", xy.X, xy.Y)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: coords})
		if err != nil {
			return err
		}
		labels.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
		p.Add(labels)
	}
	return nil
}

// Save plots the segments and intersections to a file, its extension selects the format
// (eg. png, svg, pdf).
func Save(filename string, segs []sweep.Segment, zs []sweep.Point, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	p, err := New(segs, zs, opts)
	if err != nil {
		return err
	}
	return p.Save(opts.Width, opts.Height, filename)
}

// Write plots the segments and intersections to w in the given format (eg. png, svg, pdf).
func Write(w io.Writer, format string, segs []sweep.Segment, zs []sweep.Point, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	p, err := New(segs, zs, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
