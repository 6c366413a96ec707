package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/sweep"
	"github.com/tdewolff/test"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	test.Error(t, os.WriteFile(filename, []byte(data), 0644))
	return filename
}

func TestLoad(t *testing.T) {
	var tts = []struct {
		format, data string
	}{
		{"text", "2\n0 0 2 2\n0 2 2 0\n"},
		{"geojson", `{"type":"MultiLineString","coordinates":[[[0,0],[2,2]],[[0,2],[2,0]]]}`},
		{"svgpath", "M0 0L2 2M0 2L2 0\n"},
	}
	for _, tt := range tts {
		t.Run(tt.format, func(t *testing.T) {
			segs, err := load(writeFile(t, "input", tt.data), tt.format, false, false)
			test.Error(t, err)
			test.T(t, segs, sweep.NewSegments([][4]float64{{0, 0, 2, 2}, {0, 2, 2, 0}}))
		})
	}

	_, err := load(writeFile(t, "input", ""), "wkt", false, false)
	test.That(t, err != nil)

	_, err = load(filepath.Join(t.TempDir(), "missing"), "text", false, false)
	test.That(t, err != nil)
}

func TestCheck(t *testing.T) {
	zs := []sweep.Point{{X: 1.0, Y: 1.0}, {X: 2.0, Y: 0.0}}
	test.Error(t, check(zs, []sweep.Point{{X: 2.0, Y: 0.0}, {X: 1.0, Y: 1.0}}))
	test.That(t, check(zs, []sweep.Point{{X: 1.0, Y: 1.0}}) != nil, "spurious")
	test.That(t, check(zs[:1], zs) != nil, "missing")
	test.That(t, check([]sweep.Point{{X: 1.0, Y: 1.0}, {X: 1.0, Y: 1.0}}, zs[:1]) != nil, "duplicate")
}
