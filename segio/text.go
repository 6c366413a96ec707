// Package segio reads line segments from and writes intersection points to the supported
// file formats: the plain text protocol, GeoJSON and OpenStreetMap XML.
package segio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/sweep"
)

// Precision is the number of significant digits of written coordinates.
var Precision = 6

// ErrBadCount is returned when the input has fewer segments than it announces.
var ErrBadCount = errors.New("fewer segments than announced")

func skipWhitespace(z *parse.Input) {
	for c := z.Peek(0); c == ' ' || c == '\t' || c == '\n' || c == '\r'; c = z.Peek(0) {
		z.Move(1)
	}
	z.Skip()
}

// lexNumber moves over the next whitespace separated token and returns it, or nil at EOF.
func lexNumber(z *parse.Input) []byte {
	skipWhitespace(z)
	for c := z.Peek(0); c != 0 && c != ' ' && c != '\t' && c != '\n' && c != '\r'; c = z.Peek(0) {
		z.Move(1)
	}
	if z.Pos() == 0 {
		return nil
	}
	return z.Lexeme()
}

func readCount(z *parse.Input) (int, error) {
	b := lexNumber(z)
	if b == nil {
		return 0, nil // empty input is an empty set
	}
	n, m := strconv.ParseInt(b)
	if m != len(b) || n < 0 {
		return 0, parse.NewErrorLexer(z, "bad segment count: %s", b)
	}
	z.Skip()
	return int(n), nil
}

func readFloat(z *parse.Input) (float64, bool, error) {
	b := lexNumber(z)
	if b == nil {
		return 0.0, false, nil
	}
	f, m := strconv.ParseFloat(b)
	if m != len(b) {
		return 0.0, false, parse.NewErrorLexer(z, "bad coordinate: %s", b)
	}
	z.Skip()
	return f, true, nil
}

// ReadText reads segments in the text format: the number of segments n followed by n
// records of four numbers x1 y1 x2 y2, all separated by whitespace. The segment ID is its
// index in the input.
func ReadText(r io.Reader) ([]sweep.Segment, error) {
	z := parse.NewInput(r)
	n, err := readCount(z)
	if err != nil {
		return nil, err
	}

	segs := make([]sweep.Segment, 0, n)
	for i := 0; i < n; i++ {
		var c [4]float64
		for j := range c {
			f, ok, err := readFloat(z)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			} else if !ok {
				return nil, fmt.Errorf("%w: got %d of %d", ErrBadCount, i, n)
			}
			c[j] = f
		}
		segs = append(segs, sweep.NewSegment(sweep.Point{X: c[0], Y: c[1]}, sweep.Point{X: c[2], Y: c[3]}, i))
	}
	return segs, nil
}

// WriteText writes one point per line as x and y separated by a space.
func WriteText(w io.Writer, zs []sweep.Point) error {
	bw := bufio.NewWriter(w)
	for _, z := range zs {
		fmt.Fprintf(bw, "%.*g %.*g\n", Precision, noNegZero(z.X), Precision, noNegZero(z.Y))
	}
	return bw.Flush()
}

// WriteSegments writes segments in the format read by ReadText.
func WriteSegments(w io.Writer, segs []sweep.Segment) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(segs))
	for _, s := range segs {
		fmt.Fprintf(bw, "%.*g %.*g %.*g %.*g\n", Precision, noNegZero(s.P.X), Precision, noNegZero(s.P.Y), Precision, noNegZero(s.Q.X), Precision, noNegZero(s.Q.Y))
	}
	return bw.Flush()
}

func noNegZero(f float64) float64 {
	if f == 0.0 {
		return 0.0
	}
	return f
}
