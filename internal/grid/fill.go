package grid

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// fillWidth counts East Asian ambiguous characters, such as box drawing,
// as one cell regardless of locale.
var fillWidth = &runewidth.Condition{EastAsianWidth: false}

// ValidFill reports whether fill is a single grapheme one cell wide.
// Fill rows are built by repeating the glyph once per column, so anything
// wider would spill past the region.
func ValidFill(fill string) bool {
	if fill == "" {
		return false
	}
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(fill, -1)
	return rest == "" && fillWidth.StringWidth(cluster) == 1
}
