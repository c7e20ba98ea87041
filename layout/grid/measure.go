// Measure provides a placeholder text metric for auto-sized columns and
// rows, ahead of a real shaping/font pipeline. It walks grapheme clusters
// with uniseg rather than runes, matching how the rest of the evaluator
// measures string length (see library/foundations/str.go), so multi-byte
// and wide scripts don't get undercounted.

package grid

import "github.com/rivo/uniseg"

// glyphAdvance is the assumed advance width of a single narrow grapheme
// cluster at the default font size, used until real text shaping is wired
// up for auto columns.
const glyphAdvance Abs = 6 * Pt

// EstimateTextWidth approximates the natural width of text set on one
// line, for sizing auto columns before layout has access to a font.
func EstimateTextWidth(text string) Abs {
	if text == "" {
		return 0
	}
	var total Abs
	state := -1
	for len(text) > 0 {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if width <= 0 {
			width = 1
		}
		total += glyphAdvance * Abs(width)
		_ = cluster
	}
	return total
}
