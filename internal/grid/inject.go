package grid

// Inject draws text at absolute grid position (x, y), ignoring regions.
// Inject calls are for static chrome such as borders and separators; the
// caller is responsible for not trampling region content.
func (u *UI[ID]) Inject(x, y int, text string, c Color) {
	if text == "" {
		return
	}
	u.prog.place(text, x, y, c)
}

// InjectRepeatedRows draws text at column x on rows y through y+n-1.
func (u *UI[ID]) InjectRepeatedRows(x, y int, text string, c Color, n int) {
	if text == "" || n <= 0 {
		return
	}
	u.prog.placeRows(text, x, y, c, n)
}

// InjectRepeatedCols draws text n times side by side starting at (x, y).
func (u *UI[ID]) InjectRepeatedCols(x, y int, text string, c Color, n int) {
	if text == "" || n <= 0 {
		return
	}
	u.prog.placeCols(text, x, y, c, n)
}

// InjectBlock draws a rows×cols block of text starting at (x, y). The row
// is stored once, expanded cols times, and replayed on each row.
func (u *UI[ID]) InjectBlock(x, y int, text string, c Color, rows, cols int) {
	if text == "" || rows <= 0 || cols <= 0 {
		return
	}
	u.prog.placeBlock(text, x, y, c, rows, cols)
}
