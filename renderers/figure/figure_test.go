package figure

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/sweep"
	"github.com/tdewolff/test"
)

var segs = sweep.NewSegments([][4]float64{{0, 0, 2, 2}, {0, 2, 2, 0}, {0, 1, 2, 1}})

func TestNew(t *testing.T) {
	zs := sweep.Find(segs)
	p, err := New(segs, zs, nil)
	test.Error(t, err)
	test.String(t, p.Title.Text, DefaultOptions.Title)
	test.T(t, p.X.Label.Text, "x")

	opts := DefaultOptions
	opts.Title = "Segments"
	opts.Labels = false
	p, err = New(segs, nil, &opts)
	test.Error(t, err)
	test.String(t, p.Title.Text, "Segments")

	p, err = New(nil, nil, nil)
	test.Error(t, err)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	test.Error(t, Write(&buf, "svg", segs, sweep.Find(segs), nil))
	test.That(t, bytes.Contains(buf.Bytes(), []byte("<svg")))

	buf.Reset()
	test.Error(t, Write(&buf, "png", segs, sweep.Find(segs), nil))
	test.That(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	test.That(t, Write(&buf, "unknown", segs, nil, nil) != nil)
}

func TestSave(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "segments.png")
	test.Error(t, Save(filename, segs, sweep.Find(segs), nil))

	info, err := os.Stat(filename)
	test.Error(t, err)
	test.That(t, 0 < info.Size())
}
