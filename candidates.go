package hime

// candidateCapacity is the fixed candidate-buffer capacity spec.md §3
// requires ("A fixed-capacity array (≥100)"). Reused across keys rather
// than reallocated, per spec.md §5's resource policy.
const candidateCapacity = 100

// candidateBuffer holds the current candidate list and its paging state
// (spec.md §3 "Candidate buffer").
type candidateBuffer struct {
	items       []string
	page        int
	perPage     int // candidates_per_page, default 10, clamped [1,10]
}

func newCandidateBuffer() candidateBuffer {
	return candidateBuffer{items: make([]string, 0, candidateCapacity), perPage: 10}
}

func (c *candidateBuffer) reset() {
	c.items = c.items[:0]
	c.page = 0
}

func (c *candidateBuffer) set(items []string) {
	c.items = c.items[:0]
	for _, it := range items {
		if len(c.items) >= candidateCapacity {
			break
		}
		c.items = append(c.items, it)
	}
	c.page = 0
}

func (c *candidateBuffer) count() int { return len(c.items) }

func (c *candidateBuffer) pageCount() int {
	if len(c.items) == 0 {
		return 0
	}
	return (len(c.items) + c.perPage - 1) / c.perPage
}

// pageItems returns the slice of candidates visible on the current page.
func (c *candidateBuffer) pageItems() []string {
	start := c.page * c.perPage
	if start >= len(c.items) {
		return nil
	}
	end := start + c.perPage
	if end > len(c.items) {
		end = len(c.items)
	}
	return c.items[start:end]
}

// hasMorePages reports whether paging down from the current page would
// reveal more candidates (spec.md §4.P "page-down hint").
func (c *candidateBuffer) hasMorePages() bool {
	return (c.page+1)*c.perPage < len(c.items)
}

// PageUp moves to the previous page. Returns false iff already on page 0
// (spec.md §8 "Candidate paging").
func (c *candidateBuffer) PageUp() bool {
	if c.page == 0 {
		return false
	}
	c.page--
	return true
}

// PageDown moves to the next page. Returns false iff already on the last
// page.
func (c *candidateBuffer) PageDown() bool {
	if !c.hasMorePages() {
		return false
	}
	c.page++
	return true
}

// globalIndex resolves a selection-key position on the current page to an
// absolute candidate index (spec.md §4.D step 2).
func (c *candidateBuffer) globalIndex(posInPage int) (int, bool) {
	idx := c.page*c.perPage + posInPage
	if idx < 0 || idx >= len(c.items) {
		return 0, false
	}
	return idx, true
}

// at returns candidate i (absolute index), or "" and false if out of range
// (spec.md §7 "get_candidate(i) with i out of range returns -1").
func (c *candidateBuffer) at(i int) (string, bool) {
	if i < 0 || i >= len(c.items) {
		return "", false
	}
	return c.items[i], true
}
