// HeaderManager captures the frames laid out for header and footer rows
// during the single top-to-bottom row pass and replays them at the top
// (headers) or bottom (footer) of every region they should repeat into.
//
// This is a simplified cousin of the original implementation's
// PendingHeader/RepeatingHeader promotion dance: that version only
// commits a header to "repeating" once a content row has successfully
// been placed after it, to avoid orphaning a header alone on a page.
// Here a header is eligible to repeat as soon as it is laid out; orphan
// prevention is intentionally out of scope.
package grid

// HeaderManager manages headers and footers during grid layout.
type HeaderManager struct {
	grid *ResolvedGrid

	headerRows map[int][]LayoutRow // keyed by header index into grid.Headers
	footerRows []LayoutRow
}

// NewHeaderManager creates a header manager bound to a resolved grid.
func NewHeaderManager(g *ResolvedGrid) *HeaderManager {
	return &HeaderManager{grid: g, headerRows: map[int][]LayoutRow{}}
}

// CaptureRow records a laid-out row so it can be replayed later if it
// falls within a header or the footer.
func (m *HeaderManager) CaptureRow(y int, row LayoutRow) {
	for i, h := range m.grid.Headers {
		if y >= h.Value.Start && y < h.Value.End {
			m.headerRows[i] = append(m.headerRows[i], row)
			return
		}
	}
	if f := m.grid.Footer; f != nil && y >= f.Value.Start && y < f.Value.End {
		m.footerRows = append(m.footerRows, row)
	}
}

// RepeatingHeaderHeight returns the total height of every header marked
// to repeat.
func (m *HeaderManager) RepeatingHeaderHeight() Abs {
	var total Abs
	for i, h := range m.grid.Headers {
		if !h.Repeated {
			continue
		}
		for _, row := range m.headerRows[i] {
			total += row.Height
		}
	}
	return total
}

// FooterHeight returns the total height of the footer.
func (m *HeaderManager) FooterHeight() Abs {
	var total Abs
	for _, row := range m.footerRows {
		total += row.Height
	}
	return total
}

// PlaceRepeatingHeaders pushes every repeating header's captured frames
// at the top of frame, returning the Y cursor just past them.
func (m *HeaderManager) PlaceRepeatingHeaders(frame *Frame) Abs {
	var y Abs
	for i, h := range m.grid.Headers {
		if !h.Repeated {
			continue
		}
		for _, row := range m.headerRows[i] {
			frame.PushFrame(Point{X: 0, Y: y}, row.Frame)
			y += row.Height
		}
	}
	return y
}

// PlaceFooter pushes the footer's captured frames at y if the footer
// should repeat on this region.
func (m *HeaderManager) PlaceFooter(frame *Frame, y Abs) {
	if m.grid.Footer == nil || !m.grid.Footer.Repeated {
		return
	}
	for _, row := range m.footerRows {
		frame.PushFrame(Point{X: 0, Y: y}, row.Frame)
		y += row.Height
	}
}
