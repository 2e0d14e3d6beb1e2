package layout

import (
	"fmt"

	"github.com/dshills/neocrystal/internal/grid"
)

// Applier declares layouts on a grid, translating region names to ids.
// It remembers what it declared so a later layout that omits a region
// drops it.
type Applier[ID comparable] struct {
	resolve  func(name string) (ID, bool)
	declared map[ID]struct{}
}

// NewApplier creates an applier. resolve maps a region name to its id and
// reports false for names the application does not know.
func NewApplier[ID comparable](resolve func(name string) (ID, bool)) *Applier[ID] {
	return &Applier[ID]{
		resolve:  resolve,
		declared: make(map[ID]struct{}),
	}
}

// Apply validates l against the grid size and declares every region.
// Nothing is declared when the layout is invalid. Regions are declared
// every time; identical re-declarations cost nothing in the grid.
func (a *Applier[ID]) Apply(ui *grid.UI[ID], l Layout) error {
	width, height := ui.Size()
	if err := l.Validate(width, height); err != nil {
		return err
	}

	ids := make([]ID, len(l.Regions))
	var unknown []string
	for i, r := range l.Regions {
		id, ok := a.resolve(r.Name)
		if !ok {
			unknown = append(unknown, fmt.Sprintf("unknown region %q", r.Name))
			continue
		}
		ids[i] = id
	}
	if len(unknown) > 0 {
		return &Error{Problems: unknown}
	}

	next := make(map[ID]struct{}, len(ids))
	for i, r := range l.Regions {
		x, y := r.Spans()
		ui.DeclareFill(ids[i], x, y, r.FillGlyph())
		next[ids[i]] = struct{}{}
	}
	for id := range a.declared {
		if _, ok := next[id]; !ok {
			ui.Drop(id)
		}
	}
	a.declared = next
	return nil
}
