// Rowspans provides tracking for cells that span multiple rows.
//
// Rowspan handling is complex because spanning cells may cross page
// boundaries and row heights must account for spanning cell
// requirements. The layouter uses RowspanTracker and Unbreakable to
// keep every row of a rowspan together in one region, forcing an early
// region break rather than ever splitting a spanning cell's rows across
// two regions; splitting the cell's own content across that break is a
// further step this package does not implement.

package grid

// RowspanTracker tracks active rowspans during layout.
type RowspanTracker struct {
	Active []*RowspanState
}

// RowspanState tracks the state of a single rowspan.
type RowspanState struct {
	Cell     *Cell
	StartY   int
	CurrentY int
}

// NewRowspanTracker creates a new rowspan tracker.
func NewRowspanTracker() *RowspanTracker {
	return &RowspanTracker{}
}

// Start begins tracking a new rowspan.
func (t *RowspanTracker) Start(cell *Cell) *RowspanState {
	state := &RowspanState{Cell: cell, StartY: cell.Y, CurrentY: cell.Y}
	t.Active = append(t.Active, state)
	return state
}

// CompletedAt returns rowspans that complete at row y.
func (t *RowspanTracker) CompletedAt(y int) []*RowspanState {
	var completed []*RowspanState
	for _, rs := range t.Active {
		if rs.Cell.EndY()-1 == y {
			completed = append(completed, rs)
		}
	}
	return completed
}

// Remove removes a completed rowspan from tracking.
func (t *RowspanTracker) Remove(state *RowspanState) {
	for i, rs := range t.Active {
		if rs == state {
			t.Active = append(t.Active[:i], t.Active[i+1:]...)
			return
		}
	}
}

// Clear removes all tracked rowspans.
func (t *RowspanTracker) Clear() {
	t.Active = nil
}

// Unbreakable contains cells that must stay together with a spanning cell,
// to avoid a single row of a rowspan appearing alone at the top of a page.
type Unbreakable struct {
	Cells   []*Cell
	MinRows int
}

// NewUnbreakable creates an unbreakable group from a spanning cell.
func NewUnbreakable(cell *Cell, minRows int) *Unbreakable {
	return &Unbreakable{Cells: []*Cell{cell}, MinRows: minRows}
}

// Add adds a cell to the unbreakable group.
func (u *Unbreakable) Add(cell *Cell) {
	u.Cells = append(u.Cells, cell)
}

// StartY returns the first row of the unbreakable group.
func (u *Unbreakable) StartY() int {
	if len(u.Cells) == 0 {
		return 0
	}
	minY := u.Cells[0].Y
	for _, cell := range u.Cells[1:] {
		if cell.Y < minY {
			minY = cell.Y
		}
	}
	return minY
}

// EndY returns the row after the last row of the unbreakable group.
func (u *Unbreakable) EndY() int {
	if len(u.Cells) == 0 {
		return 0
	}
	maxY := u.Cells[0].EndY()
	for _, cell := range u.Cells[1:] {
		if cell.EndY() > maxY {
			maxY = cell.EndY()
		}
	}
	return maxY
}

