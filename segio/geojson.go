package segio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/sweep"
)

// ErrNoGeometry is returned when the input contains no line geometries.
var ErrNoGeometry = errors.New("no line geometry")

// ReadGeoJSON reads segments from a GeoJSON FeatureCollection, Feature or geometry. Every
// line string and polygon ring is split into its segments, other geometries are ignored.
func ReadGeoJSON(r io.Reader) ([]sweep.Segment, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	var segs []sweep.Segment
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		for _, f := range fc.Features {
			segs = appendGeometry(segs, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		segs = appendGeometry(segs, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(b)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		segs = appendGeometry(segs, g.Geometry())
	}
	if len(segs) == 0 {
		return nil, ErrNoGeometry
	}
	return segs, nil
}

// WriteGeoJSON writes the points as a FeatureCollection of Point features, each with
// its index in the properties.
func WriteGeoJSON(w io.Writer, zs []sweep.Point) error {
	fc := geojson.NewFeatureCollection()
	for i, z := range zs {
		f := geojson.NewFeature(orb.Point{z.X, z.Y})
		f.Properties["index"] = i
		fc.Append(f)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func appendGeometry(segs []sweep.Segment, g orb.Geometry) []sweep.Segment {
	switch g := g.(type) {
	case orb.LineString:
		segs = appendLine(segs, g)
	case orb.MultiLineString:
		for _, ls := range g {
			segs = appendLine(segs, ls)
		}
	case orb.Ring:
		segs = appendLine(segs, orb.LineString(g))
	case orb.Polygon:
		for _, ring := range g {
			segs = appendLine(segs, orb.LineString(ring))
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				segs = appendLine(segs, orb.LineString(ring))
			}
		}
	case orb.Collection:
		for _, gi := range g {
			segs = appendGeometry(segs, gi)
		}
	}
	return segs
}

func appendLine(segs []sweep.Segment, ls orb.LineString) []sweep.Segment {
	for i := 1; i < len(ls); i++ {
		if ls[i-1] == ls[i] {
			continue // zero-length
		}
		p := sweep.Point{X: ls[i-1].X(), Y: ls[i-1].Y()}
		q := sweep.Point{X: ls[i].X(), Y: ls[i].Y()}
		segs = append(segs, sweep.NewSegment(p, q, len(segs)))
	}
	return segs
}
