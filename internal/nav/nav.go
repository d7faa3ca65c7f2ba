// Package nav tracks the selected row and the scroll window over a list.
package nav

// Navigator keeps a selected index and a scroll offset over a view of n
// items of which at most maxVisible rows are shown at once.
//
// After every operation, for n > 0:
//
//	0 <= offset <= max(0, n-maxVisible)
//	offset <= selected < offset+maxVisible
//
// and for n == 0 both are zero.
type Navigator struct {
	selected int
	offset   int
}

// Selected returns the selected index within the active view.
func (n *Navigator) Selected() int {
	return n.selected
}

// Offset returns the index of the first visible row.
func (n *Navigator) Offset() int {
	return n.offset
}

// Reset moves the selection to the top of the view.
func (n *Navigator) Reset() {
	n.selected = 0
	n.offset = 0
}

// MoveUp selects the previous item, wrapping to the last one.
func (n *Navigator) MoveUp(count, maxVisible int) {
	maxVisible = atLeastOne(maxVisible)
	if count <= 0 {
		n.Reset()
		return
	}

	if n.selected > 0 {
		n.selected--
		if n.selected < n.offset {
			n.offset = n.selected
		}
		return
	}

	n.selected = count - 1
	n.offset = max(0, count-maxVisible)
}

// MoveDown selects the next item, wrapping to the first one.
func (n *Navigator) MoveDown(count, maxVisible int) {
	maxVisible = atLeastOne(maxVisible)
	if count <= 0 {
		n.Reset()
		return
	}

	if n.selected < count-1 {
		n.selected++
		if n.selected >= n.offset+maxVisible {
			n.offset = n.selected - maxVisible + 1
		}
		return
	}

	n.Reset()
}

// Fit restores the invariants after the view length or the window
// height changed, keeping the selection where possible.
func (n *Navigator) Fit(count, maxVisible int) {
	maxVisible = atLeastOne(maxVisible)
	if count <= 0 {
		n.Reset()
		return
	}

	n.selected = min(max(n.selected, 0), count-1)
	n.offset = min(max(n.offset, 0), max(0, count-maxVisible))

	if n.selected < n.offset {
		n.offset = n.selected
	}
	if n.selected >= n.offset+maxVisible {
		n.offset = n.selected - maxVisible + 1
	}
}

// VisibleRange returns the half-open index range [start, end) of the
// rows inside the scroll window.
func (n *Navigator) VisibleRange(count, maxVisible int) (start, end int) {
	maxVisible = atLeastOne(maxVisible)
	if count <= 0 {
		return 0, 0
	}
	start = min(n.offset, count)
	end = min(start+maxVisible, count)
	return start, end
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
