package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/sweep"
	"github.com/tdewolff/test"
)

func TestNum(t *testing.T) {
	test.String(t, num(1.0).String(), "1")
	test.String(t, num(0.5).String(), ".5")
	test.String(t, num(-0.25).String(), "-.25")
}

func TestWrite(t *testing.T) {
	segs := sweep.NewSegments([][4]float64{{0, 0, 2, 2}, {0, 2, 2, 0}})
	zs := sweep.Find(segs)

	var buf bytes.Buffer
	test.Error(t, Write(&buf, segs, zs, nil))
	s := buf.String()
	test.That(t, strings.HasPrefix(s, "<svg "), s)
	test.That(t, strings.HasSuffix(s, "</svg>"), s)
	test.T(t, strings.Count(s, "<line "), 2)
	test.T(t, strings.Count(s, "<circle "), 5)
	test.T(t, strings.Count(s, "<text "), 2)
	test.That(t, strings.Contains(s, ">ID 1</text>"), s)
	test.That(t, strings.Contains(s, `<g fill="#f00">`), s)

	opts := DefaultOptions
	opts.Endpoints = false
	opts.Labels = false
	buf.Reset()
	test.Error(t, Write(&buf, segs, nil, &opts))
	s = buf.String()
	test.T(t, strings.Count(s, "<line "), 2)
	test.T(t, strings.Count(s, "<circle "), 0)
	test.T(t, strings.Count(s, "<text "), 0)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	test.Error(t, Write(&buf, nil, nil, nil))
	test.That(t, strings.HasPrefix(buf.String(), "<svg "))
	test.T(t, strings.Count(buf.String(), "<line "), 0)
}
