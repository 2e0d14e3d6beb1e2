package grid

import (
	"fmt"
	"strings"
)

// DefaultFill is the glyph used to blank a row when a region declares none.
const DefaultFill = " "

// removal tracks whether a region is still addressable.
type removal uint8

const (
	live removal = iota
	pendingRemoval
)

// Region is a named rectangular allocation of the grid.
type Region[ID comparable] struct {
	ID   ID
	X, Y Span

	// Fill is the glyph repeated across the row when blanking it.
	Fill string

	fillRow string
	state   removal
}

// Live reports whether the region can still be written to.
func (r Region[ID]) Live() bool {
	return r.state == live
}

// Overlaps reports whether the region's rectangle intersects x by y.
func (r Region[ID]) Overlaps(x, y Span) bool {
	return r.X.Overlaps(x) && r.Y.Overlaps(y)
}

// Declare allocates a region blanked with DefaultFill.
// See DeclareFill.
func (u *UI[ID]) Declare(id ID, x, y Span) {
	u.DeclareFill(id, x, y, DefaultFill)
}

// DeclareFill allocates a region whose rows are blanked with fill.
//
// A region that leaves the grid, or whose fill is not one single-width
// glyph, is a layout bug and panics. Every live region
// with the same id, or whose rectangle overlaps the new one, is marked for
// removal; it stops accepting writes immediately and leaves the table on the
// next Execute. Re-declaring a live region unchanged is a no-op.
func (u *UI[ID]) DeclareFill(id ID, x, y Span, fill string) {
	if !x.within(u.width) || !y.within(u.height) {
		panic(fmt.Sprintf("grid: region %v (x %d+%d, y %d+%d) exceeds %dx%d grid",
			id, x.Start, x.Len, y.Start, y.Len, u.width, u.height))
	}
	if fill == "" {
		fill = DefaultFill
	}
	if !ValidFill(fill) {
		panic(fmt.Sprintf("grid: region %v fill %q must be one single-width glyph", id, fill))
	}

	if i := u.find(id); i >= 0 {
		r := &u.regions[i]
		if r.X == x && r.Y == y && r.Fill == fill {
			return
		}
	}

	for i := range u.regions {
		r := &u.regions[i]
		if r.state != live {
			continue
		}
		if r.ID == id || r.Overlaps(x, y) {
			u.retire(r)
		}
	}

	u.regions = append(u.regions, Region[ID]{
		ID:      id,
		X:       x,
		Y:       y,
		Fill:    fill,
		fillRow: strings.Repeat(fill, x.Len),
	})
}

// Drop marks every live region with this id for removal without declaring
// a replacement.
func (u *UI[ID]) Drop(id ID) {
	for i := range u.regions {
		r := &u.regions[i]
		if r.state == live && r.ID == id {
			u.retire(r)
		}
	}
}

// Lookup returns the live region with this id.
func (u *UI[ID]) Lookup(id ID) (Region[ID], bool) {
	if i := u.find(id); i >= 0 {
		return u.regions[i], true
	}
	return Region[ID]{}, false
}

// RegionWidth returns the width of the live region with this id.
func (u *UI[ID]) RegionWidth(id ID) (int, bool) {
	r, ok := u.Lookup(id)
	return r.X.Len, ok
}

// Regions returns a copy of the live regions in declaration order.
func (u *UI[ID]) Regions() []Region[ID] {
	out := make([]Region[ID], 0, len(u.regions))
	for _, r := range u.regions {
		if r.state == live {
			out = append(out, r)
		}
	}
	return out
}

func (u *UI[ID]) find(id ID) int {
	for i := range u.regions {
		if u.regions[i].state == live && u.regions[i].ID == id {
			return i
		}
	}
	return -1
}

// retire flags r for removal. Unless the UI keeps footprints, the region's
// cells are blanked in program order, so writes queued earlier this frame
// are overwritten and writes queued later land on a clean area.
func (u *UI[ID]) retire(r *Region[ID]) {
	r.state = pendingRemoval
	if u.keepFootprint || r.X.Len == 0 || r.Y.Len == 0 {
		return
	}
	u.prog.placeRows(r.fillRow, r.X.Start, r.Y.Start, FillColor, r.Y.Len)
}

// prune removes flagged regions from the table.
func (u *UI[ID]) prune() {
	kept := u.regions[:0]
	for _, r := range u.regions {
		if r.state == live {
			kept = append(kept, r)
		}
	}
	clear(u.regions[len(kept):])
	u.regions = kept
}
