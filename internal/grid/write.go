package grid

// row resolves id and a region-relative row to the live region.
func (u *UI[ID]) row(id ID, x, y int, text string, n int) (*Region[ID], bool) {
	i := u.find(id)
	if i < 0 {
		u.reject(Reject[ID]{ID: id, X: x, Y: y, Text: text, Count: n, Reason: RejectUnknownRegion})
		return nil, false
	}
	r := &u.regions[i]
	if y < 0 || y >= r.Y.Len {
		u.reject(Reject[ID]{ID: id, X: x, Y: y, Text: text, Count: n, Reason: RejectRowOutOfRange})
		return nil, false
	}
	return r, true
}

// Write draws text at (x, y) relative to the region's origin.
//
// Text that does not fit the row at x is dropped whole; nothing is queued.
// Text shorter than the region width is preceded by a fill of the entire
// row, so longer content from earlier frames disappears. Empty text only
// blanks the row.
func (u *UI[ID]) Write(id ID, x, y int, text string, c Color) {
	r, ok := u.row(id, x, y, text, 1)
	if !ok {
		return
	}
	ax, ay := r.X.Start+x, r.Y.Start+y
	if !r.X.fits(ax, len(text)) {
		u.reject(Reject[ID]{ID: id, X: x, Y: y, Text: text, Count: 1, Reason: RejectOverflow})
		return
	}

	if len(text) < r.X.Len {
		u.prog.place(r.fillRow, r.X.Start, ay, FillColor)
	}
	if text == "" {
		return
	}
	u.prog.place(text, ax, ay, c)
}

// BlankRow fills row y of the region with its fill glyph.
func (u *UI[ID]) BlankRow(id ID, y int) {
	u.Write(id, 0, y, "", FillColor)
}

// WriteRepeatedCols draws text n times side by side starting at (x, y).
// The whole run must fit the row; the backend receives it as one span.
func (u *UI[ID]) WriteRepeatedCols(id ID, x, y int, text string, c Color, n int) {
	r, ok := u.row(id, x, y, text, n)
	if !ok {
		return
	}
	ax, ay := r.X.Start+x, r.Y.Start+y
	// A count wider than the region can never fit; checking it first keeps
	// len(text)*n from overflowing.
	if n < 0 || (text != "" && n > r.X.Len) {
		u.reject(Reject[ID]{ID: id, X: x, Y: y, Text: text, Count: n, Reason: RejectOverflow})
		return
	}
	run := len(text) * n
	if !r.X.fits(ax, run) {
		u.reject(Reject[ID]{ID: id, X: x, Y: y, Text: text, Count: n, Reason: RejectOverflow})
		return
	}

	if run < r.X.Len {
		u.prog.place(r.fillRow, r.X.Start, ay, FillColor)
	}
	if run == 0 {
		return
	}
	u.prog.placeCols(text, ax, ay, c, n)
}

// WriteRepeatedRows draws text at column x on rows y through y+n-1.
// Both the text and the row run must fit the region. Each touched row is
// blanked first when the text is narrower than the region.
func (u *UI[ID]) WriteRepeatedRows(id ID, x, y int, text string, c Color, n int) {
	if n == 0 {
		return
	}
	r, ok := u.row(id, x, y, text, n)
	if !ok {
		return
	}
	ax, ay := r.X.Start+x, r.Y.Start+y
	if !r.X.fits(ax, len(text)) {
		u.reject(Reject[ID]{ID: id, X: x, Y: y, Text: text, Count: n, Reason: RejectOverflow})
		return
	}
	if n < 0 || !r.Y.fits(ay, n) {
		u.reject(Reject[ID]{ID: id, X: x, Y: y, Text: text, Count: n, Reason: RejectRowRunOverflow})
		return
	}

	if len(text) < r.X.Len {
		u.prog.placeRows(r.fillRow, r.X.Start, ay, FillColor, n)
	}
	if text == "" {
		return
	}
	u.prog.placeRows(text, ax, ay, c, n)
}
