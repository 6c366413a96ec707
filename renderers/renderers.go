package renderers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/sweep"
	"github.com/tdewolff/sweep/renderers/figure"
	"github.com/tdewolff/sweep/renderers/svg"
)

type Options struct {
	SVG    *svg.Options
	Figure *figure.Options
}

// Write draws the segments and intersections to a file, the format follows from its
// extension. SVG files are written directly, other formats are plotted with gonum/plot.
func Write(filename string, segs []sweep.Segment, zs []sweep.Point, opts ...interface{}) error {
	options := Options{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case *svg.Options:
			options.SVG = o
		case *figure.Options:
			options.Figure = o
		default:
			return fmt.Errorf("unknown option: %v", opt)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".svg":
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := svg.Write(f, segs, zs, options.SVG); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".pdf", ".eps", ".tex":
		return figure.Save(filename, segs, zs, options.Figure)
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}
}
