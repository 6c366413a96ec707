package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweep"
	"github.com/tdewolff/sweep/renderers"
	"github.com/tdewolff/sweep/renderers/figure"
	"github.com/tdewolff/sweep/renderers/svg"
	"github.com/tdewolff/sweep/segio"
	"gonum.org/v1/plot/vg"
)

type Find struct {
	From     string `short:"f" default:"text" desc:"Input format: text, geojson, osm, or svgpath"`
	To       string `short:"t" default:"text" desc:"Output format: text or geojson"`
	Highways bool   `desc:"Only use OSM ways tagged as highway"`
	Sort     bool   `short:"s" desc:"Sort points from top to bottom and left to right"`
	Check    bool   `desc:"Verify the result against a brute force search, crossings less than 1e-6 below another event may be reported missing"`
	Stats    bool   `desc:"Print statistics to stderr"`
	Draw     string `short:"d" desc:"Also draw segments and intersections to this file, its extension sets the format"`
	Verbose  bool   `short:"v" desc:"Log events to stderr"`
	Output   string `short:"o" desc:"Output file"`
	Input    string `index:"0" desc:"Input file, or stdin if empty or -"`
}

type Plot struct {
	From     string  `short:"f" default:"text" desc:"Input format: text, geojson, osm, or svgpath"`
	Highways bool    `desc:"Only use OSM ways tagged as highway"`
	Width    float64 `short:"W" default:"16" desc:"Width in centimeters"`
	Height   float64 `short:"H" default:"16" desc:"Height in centimeters"`
	Labels   bool    `short:"l" desc:"Label segments and points"`
	Verbose  bool    `short:"v" desc:"Log events to stderr"`
	Output   string  `short:"o" default:"segments.png" desc:"Output file, its extension sets the format"`
	Input    string  `index:"0" desc:"Input file, or stdin if empty or -"`
}

type SVG struct {
	From     string  `short:"f" default:"text" desc:"Input format: text, geojson, osm, or svgpath"`
	Highways bool    `desc:"Only use OSM ways tagged as highway"`
	Width    float64 `short:"W" default:"200" desc:"Width in millimeters"`
	Labels   bool    `short:"l" desc:"Label segments"`
	Verbose  bool    `short:"v" desc:"Log events to stderr"`
	Output   string  `short:"o" desc:"Output file"`
	Input    string  `index:"0" desc:"Input file, or stdin if empty or -"`
}

func main() {
	root := argp.NewCmd(&Find{}, "Line segment intersection finder by Taco de Wolff")
	root.AddCmd(&Plot{}, "plot", "Plot segments and intersections")
	root.AddCmd(&SVG{}, "svg", "Draw segments and intersections as SVG")
	root.Parse()
	root.PrintHelp()
}

func load(filename, format string, highways, verbose bool) ([]sweep.Segment, error) {
	if verbose {
		sweep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var r io.Reader = os.Stdin
	if filename != "" && filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	switch strings.ToLower(format) {
	case "text", "txt":
		return segio.ReadText(r)
	case "geojson", "json":
		return segio.ReadGeoJSON(r)
	case "osm", "xml":
		var keep func(map[string]string) bool
		if highways {
			keep = segio.Highways
		}
		return segio.ReadOSM(r, keep)
	case "svgpath", "path":
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return sweep.ParseSVGPath(string(bytes.TrimSpace(b)))
	}
	return nil, fmt.Errorf("unknown input format: %s", format)
}

func create(filename string) (io.WriteCloser, error) {
	if filename == "" || filename == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(filename)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func (cmd *Find) Run() error {
	if to := strings.ToLower(cmd.To); to != "text" && to != "txt" && to != "geojson" && to != "json" {
		return argp.ShowUsage
	}

	segs, err := load(cmd.Input, cmd.From, cmd.Highways, cmd.Verbose)
	if err != nil {
		return err
	}

	s := sweep.New(segs)
	zs := s.Run()
	if cmd.Check {
		if err := check(zs, sweep.BruteForce(segs)); err != nil {
			return err
		}
	}
	if cmd.Sort {
		sweep.SortPoints(zs)
	}
	if cmd.Draw != "" {
		if err := renderers.Write(cmd.Draw, segs, zs); err != nil {
			return err
		}
	}
	if cmd.Stats {
		stats := s.Stats()
		fmt.Fprintf(os.Stderr, "Segments: %d\nEvents: %d\nIntersections: %d\nMax status: %d\n", stats.Segments, stats.Events, stats.Intersections, stats.MaxStatus)
	}

	w, err := create(cmd.Output)
	if err != nil {
		return err
	}
	switch strings.ToLower(cmd.To) {
	case "text", "txt":
		err = segio.WriteText(w, zs)
	case "geojson", "json":
		err = segio.WriteGeoJSON(w, zs)
	default:
		err = fmt.Errorf("unknown output format: %s", cmd.To)
	}
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// check returns an error if the found points differ from the expected points.
func check(zs, expected []sweep.Point) error {
	found := sweep.NewPointSet()
	for _, z := range zs {
		found.Add(z)
	}
	want := sweep.NewPointSet()
	for _, z := range expected {
		want.Add(z)
		if !found.Has(z) {
			return fmt.Errorf("check: missing intersection %v", z)
		}
	}
	for _, z := range zs {
		if !want.Has(z) {
			return fmt.Errorf("check: spurious intersection %v", z)
		}
	}
	if found.Len() != len(zs) {
		return fmt.Errorf("check: %d duplicate intersections", len(zs)-found.Len())
	}
	fmt.Fprintf(os.Stderr, "Check: %d intersections OK\n", len(zs))
	return nil
}

func (cmd *Plot) Run() error {
	if cmd.Output == "" {
		return argp.ShowUsage
	}

	segs, err := load(cmd.Input, cmd.From, cmd.Highways, cmd.Verbose)
	if err != nil {
		return err
	}
	zs := sweep.Find(segs)

	opts := figure.DefaultOptions
	opts.Width = vgCentimeters(cmd.Width)
	opts.Height = vgCentimeters(cmd.Height)
	opts.Labels = cmd.Labels
	if cmd.Output == "-" {
		return figure.Write(os.Stdout, "png", segs, zs, &opts)
	}
	if filepath.Ext(cmd.Output) == "" {
		return fmt.Errorf("output file has no extension: %s", cmd.Output)
	}
	return figure.Save(cmd.Output, segs, zs, &opts)
}

func (cmd *SVG) Run() error {
	segs, err := load(cmd.Input, cmd.From, cmd.Highways, cmd.Verbose)
	if err != nil {
		return err
	}
	zs := sweep.Find(segs)

	opts := svg.DefaultOptions
	opts.Width = cmd.Width
	opts.Labels = cmd.Labels

	w, err := create(cmd.Output)
	if err != nil {
		return err
	}
	if err := svg.Write(w, segs, zs, &opts); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func vgCentimeters(f float64) vg.Length {
	return vg.Length(f) * vg.Centimeter
}
