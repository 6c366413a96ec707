package sweep

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		path   string
		coords [][4]float64
	}{
		{"", [][4]float64{}},
		{"M0 0L1 1", [][4]float64{{0, 0, 1, 1}}},
		{"M0,0 L1,1 2,0", [][4]float64{{0, 0, 1, 1}, {1, 1, 2, 0}}},
		{"M0 0 1 1 2 0", [][4]float64{{0, 0, 1, 1}, {1, 1, 2, 0}}},
		{"m1 1 l1 1 1 -1", [][4]float64{{1, 1, 2, 2}, {2, 2, 3, 1}}},
		{"M0 0H2V2h-2v-2", [][4]float64{{0, 0, 2, 0}, {2, 0, 2, 2}, {2, 2, 0, 2}, {0, 2, 0, 0}}},
		{"M0 0L2 0L1 1z", [][4]float64{{0, 0, 2, 0}, {2, 0, 1, 1}, {1, 1, 0, 0}}},
		{"M0 0L2 0L0 0Z", [][4]float64{{0, 0, 2, 0}, {2, 0, 0, 0}}},
		{"M0 0L0 0L1 0", [][4]float64{{0, 0, 1, 0}}},
		{"M0 0L1 0M5 5L6 6", [][4]float64{{0, 0, 1, 0}, {5, 5, 6, 6}}},
		{"M1.5e1 .5L-1-2", [][4]float64{{15, 0.5, -1, -2}}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			segs, err := ParseSVGPath(tt.path)
			test.Error(t, err)
			test.T(t, segs, NewSegments(tt.coords))
		})
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	var tts = []struct {
		path string
		err  string
	}{
		{"0 0", "bad path: expected command at position 0"},
		{"M0", "bad path: expected number at position 2"},
		{"M0 0C1 1 2 2 3 3", "bad path: curve command C at position 4 not supported"},
		{"M0 0X", "bad path: unknown command X at position 4"},
		{"M0 0L1 1Z 2 2", "bad path: expected command at position 10"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := ParseSVGPath(tt.path)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}
}
