package rfdata

import (
	"fmt"
	"math"
	"strconv"
)

// Palette anchors. The cycle runs magenta -> teal -> orange -> magenta so
// the seventh color wraps back to the first hue.
const (
	anchorMagenta = "#ff00ff"
	anchorTeal    = "#008080"
	anchorOrange  = "#ffa500"
)

// PaletteSize is the number of distinct strip colors before ordinal
// assignment wraps around.
const PaletteSize = 7

// Palette returns the fixed 7-color cycle used for ordinal chemical
// coloring: three 3-stop RGB interpolations (magenta->teal, teal->orange,
// orange->magenta) concatenated with the duplicated segment boundaries
// removed. Deterministic given the three anchors.
func Palette() []string {
	segments := [][2]string{
		{anchorMagenta, anchorTeal},
		{anchorTeal, anchorOrange},
		{anchorOrange, anchorMagenta},
	}

	var out []string
	for _, seg := range segments {
		for _, t := range []float64{0, 0.5, 1} {
			c := lerpHex(seg[0], seg[1], t)
			if len(out) > 0 && out[len(out)-1] == c {
				continue
			}
			out = append(out, c)
		}
	}

	return out
}

// lerpHex linearly interpolates two #rrggbb colors channel-wise in RGB.
func lerpHex(a, b string, t float64) string {
	ar, ag, ab := channels(a)
	br, bg, bb := channels(b)

	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}

	return fmt.Sprintf("#%02x%02x%02x", mix(ar, br), mix(ag, bg), mix(ab, bb))
}

func channels(colorCode string) (r, g, b uint8) {
	if len(colorCode) > 0 && colorCode[0] == '#' {
		colorCode = colorCode[1:]
	}

	// The anchors are compile-time constants, so a malformed code is a
	// programming error rather than input to be validated.
	pr, _ := strconv.ParseUint(colorCode[0:2], 16, 8)
	pg, _ := strconv.ParseUint(colorCode[2:4], 16, 8)
	pb, _ := strconv.ParseUint(colorCode[4:6], 16, 8)

	return uint8(pr), uint8(pg), uint8(pb)
}
