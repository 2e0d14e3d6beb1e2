package player

// Pager tracks the selected row within fixed-size pages of a list.
// Page is 1-based; Index is the row within the page.
type Pager struct {
	Page  int
	Index int
	Size  int
}

// NewPager returns a pager at the first row of the first page.
func NewPager(size int) Pager {
	return Pager{Page: 1, Size: max(size, 1)}
}

// Pages returns the number of pages needed for total items, at least one.
func (p Pager) Pages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}

// Absolute returns the selected item's position in the whole list.
func (p Pager) Absolute() int {
	return p.Index + (p.Page-1)*p.Size
}

// Start returns the position of the first item on the current page.
func (p Pager) Start() int {
	return (p.Page - 1) * p.Size
}

// Reset selects the first row of the first page.
func (p *Pager) Reset() {
	p.Page, p.Index = 1, 0
}

// Up moves the selection up one row, crossing to the previous page's last
// row at the top. It reports whether the page changed.
func (p *Pager) Up() bool {
	if p.Index > 0 {
		p.Index--
		return false
	}
	if p.Page > 1 {
		p.Page--
		p.Index = p.Size - 1
		return true
	}
	return false
}

// Down moves the selection down one row within total items, crossing to
// the next page at the bottom. It reports whether the page changed.
func (p *Pager) Down(total int) bool {
	if p.Absolute() >= total-1 {
		return false
	}
	if p.Index+1 < p.Size {
		p.Index++
		return false
	}
	p.Page++
	p.Index = 0
	return true
}

// PrevPage moves to the top of the previous page.
func (p *Pager) PrevPage() bool {
	if p.Page <= 1 {
		return false
	}
	p.Page--
	p.Index = 0
	return true
}

// NextPage moves to the top of the next page.
func (p *Pager) NextPage(total int) bool {
	if p.Page >= p.Pages(total) {
		return false
	}
	p.Page++
	p.Index = 0
	return true
}

// Select picks row on the current page if it holds an item.
func (p *Pager) Select(row, total int) bool {
	if row < 0 || row >= p.Size || p.Start()+row >= total {
		return false
	}
	p.Index = row
	return true
}

// Resize changes the page size, keeping the selected item selected.
func (p *Pager) Resize(size int) {
	abs := p.Absolute()
	p.Size = max(size, 1)
	p.Page = abs/p.Size + 1
	p.Index = abs % p.Size
}

// Clamp pulls the selection back inside total items.
func (p *Pager) Clamp(total int) {
	if total <= 0 {
		p.Reset()
		return
	}
	if p.Absolute() >= total {
		last := total - 1
		p.Page = last/p.Size + 1
		p.Index = last % p.Size
	}
}
