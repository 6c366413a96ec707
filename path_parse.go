package sweep

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// ParseSVGPath returns the line segments of SVG path data. Only the straight commands
// M, L, H, V and Z (and their relative variants) are supported, zero-length segments are
// skipped. Segment IDs are assigned in order starting at zero.
func ParseSVGPath(sPath string) ([]Segment, error) {
	path := []byte(sPath)
	var segs []Segment
	lineTo := func(start, end Point) {
		if !start.Equals(end) {
			segs = append(segs, NewSegment(start, end, len(segs)))
		}
	}

	var prevCmd byte
	var pos, start Point
	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: expected command at position %d", i)
		}

		var vals [2]float64
		nargs := 0
		switch cmd {
		case 'M', 'm', 'L', 'l':
			nargs = 2
		case 'H', 'h', 'V', 'v':
			nargs = 1
		case 'Z', 'z':
		case 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
			return nil, fmt.Errorf("bad path: curve command %c at position %d not supported", cmd, i-1)
		default:
			return nil, fmt.Errorf("bad path: unknown command %c at position %d", cmd, i-1)
		}
		for j := 0; j < nargs; j++ {
			f, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at position %d", i)
			}
			vals[j] = f
			i += n
		}

		switch cmd {
		case 'M', 'm':
			if cmd == 'm' {
				vals[0] += pos.X
				vals[1] += pos.Y
			}
			pos = Point{vals[0], vals[1]}
			start = pos
		case 'Z', 'z':
			lineTo(pos, start)
			pos = start
		case 'L', 'l':
			end := Point{vals[0], vals[1]}
			if cmd == 'l' {
				end.X += pos.X
				end.Y += pos.Y
			}
			lineTo(pos, end)
			pos = end
		case 'H', 'h':
			end := Point{vals[0], pos.Y}
			if cmd == 'h' {
				end.X += pos.X
			}
			lineTo(pos, end)
			pos = end
		case 'V', 'v':
			end := Point{pos.X, vals[0]}
			if cmd == 'v' {
				end.Y += pos.Y
			}
			lineTo(pos, end)
			pos = end
		}

		// subsequent coordinate pairs after a moveto are implicit linetos
		prevCmd = cmd
		if cmd == 'M' {
			prevCmd = 'L'
		} else if cmd == 'm' {
			prevCmd = 'l'
		} else if cmd == 'Z' || cmd == 'z' {
			prevCmd = 0
		}
		i += skipCommaWhitespace(path[i:])
	}
	return segs, nil
}
