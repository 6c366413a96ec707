// Package svg draws line segments and their intersections as an SVG image.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tdewolff/sweep"
)

type Options struct {
	Width     float64 // in millimeters, the height follows from the aspect ratio
	Margin    float64 // fraction of the largest side
	Endpoints bool    // mark segment endpoints
	Labels    bool    // label segments by their ID
}

var DefaultOptions = Options{
	Width:     200.0,
	Margin:    0.05,
	Endpoints: true,
	Labels:    true,
}

type bounds struct {
	x0, y0, x1, y1 float64
}

func (b *bounds) add(p sweep.Point) {
	b.x0, b.y0 = math.Min(b.x0, p.X), math.Min(b.y0, p.Y)
	b.x1, b.y1 = math.Max(b.x1, p.X), math.Max(b.y1, p.Y)
}

// Write writes an SVG image of the segments in blue, their endpoints in green and the
// intersections in red. The y-axis points up.
func Write(w io.Writer, segs []sweep.Segment, zs []sweep.Point, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, s := range segs {
		b.add(s.P)
		b.add(s.Q)
	}
	for _, z := range zs {
		b.add(z)
	}
	if b.x1 < b.x0 {
		b = bounds{0.0, 0.0, 1.0, 1.0}
	}
	size := math.Max(b.x1-b.x0, b.y1-b.y0)
	if size == 0.0 {
		size = 1.0
	}
	margin := opts.Margin * size
	b.x0, b.y0 = b.x0-margin, b.y0-margin
	b.x1, b.y1 = b.x1+margin, b.y1+margin
	width, height := b.x1-b.x0, b.y1-b.y0

	// flip y so that the y-axis points up
	pos := func(p sweep.Point) (num, num) {
		return num(p.X - b.x0), num(b.y1 - p.Y)
	}
	r := size / 200.0 // marker radius
	stroke := size / 400.0

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg version="1.1" width="%vmm" height="%vmm" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, num(opts.Width), num(opts.Width*height/width), num(width), num(height))
	fmt.Fprintf(bw, `<g stroke="#00f" stroke-width="%v" stroke-linecap="round">`, num(stroke))
	for _, s := range segs {
		x1, y1 := pos(s.P)
		x2, y2 := pos(s.Q)
		fmt.Fprintf(bw, `<line x1="%v" y1="%v" x2="%v" y2="%v"/>`, x1, y1, x2, y2)
	}
	fmt.Fprintf(bw, `</g>`)
	if opts.Labels && 0 < len(segs) {
		fmt.Fprintf(bw, `<g font-family="sans-serif" font-size="%v" text-anchor="middle">`, num(4.0*r))
		for _, s := range segs {
			x, y := pos(sweep.Point{X: (s.P.X + s.Q.X) / 2.0, Y: (s.P.Y + s.Q.Y) / 2.0})
			fmt.Fprintf(bw, `<text x="%v" y="%v">ID %d</text>`, x, y-num(r), s.ID)
		}
		fmt.Fprintf(bw, `</g>`)
	}
	if opts.Endpoints && 0 < len(segs) {
		fmt.Fprintf(bw, `<g fill="#080">`)
		for _, s := range segs {
			for _, p := range []sweep.Point{s.P, s.Q} {
				x, y := pos(p)
				fmt.Fprintf(bw, `<circle cx="%v" cy="%v" r="%v"/>`, x, y, num(r))
			}
		}
		fmt.Fprintf(bw, `</g>`)
	}
	if 0 < len(zs) {
		fmt.Fprintf(bw, `<g fill="#f00">`)
		for _, z := range zs {
			x, y := pos(z)
			fmt.Fprintf(bw, `<circle cx="%v" cy="%v" r="%v"/>`, x, y, num(1.5*r))
		}
		fmt.Fprintf(bw, `</g>`)
	}
	fmt.Fprintf(bw, `</svg>`)
	return bw.Flush()
}
