package segio

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/tdewolff/sweep"
)

// Highways keeps OSM ways that are tagged as a highway.
func Highways(tags map[string]string) bool {
	_, ok := tags["highway"]
	return ok
}

// ReadOSM reads the ways of an OpenStreetMap XML document as segments, with longitude as x
// and latitude as y. If keep is not nil, only ways for which it returns true for their tags
// are used.
func ReadOSM(r io.Reader, keep func(tags map[string]string) bool) ([]sweep.Segment, error) {
	o := &osm.OSM{}
	if err := xml.NewDecoder(r).Decode(o); err != nil {
		return nil, fmt.Errorf("osm: %w", err)
	}

	fc, err := osmgeojson.Convert(o,
		osmgeojson.NoID(true),
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, fmt.Errorf("osm: %w", err)
	}

	var segs []sweep.Segment
	for _, f := range fc.Features {
		if keep != nil {
			if !keep(tagsOf(f.Properties)) {
				continue
			}
		}
		segs = appendGeometry(segs, f.Geometry)
	}
	if len(segs) == 0 {
		return nil, ErrNoGeometry
	}
	return segs, nil
}

func tagsOf(props map[string]interface{}) map[string]string {
	switch tags := props["tags"].(type) {
	case map[string]string:
		return tags
	case map[string]interface{}:
		m := make(map[string]string, len(tags))
		for k, v := range tags {
			if s, ok := v.(string); ok {
				m[k] = s
			}
		}
		return m
	}
	return nil
}
