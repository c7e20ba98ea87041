// Layouter implements the grid layout algorithm.
//
// The layout algorithm proceeds in three phases:
// 1. Column Measurement - resolve all column widths
// 2. Row Layout - lay out each row, handling page breaks
// 3. Region Finalization - complete each output frame
//
// It consumes a ResolvedGrid produced by Resolve, so by the time it runs
// every cell already has a concrete (x, y) and every header/footer row
// range is final.
package grid

// Layouter manages the state of a grid layout operation.
type Layouter struct {
	// Grid is the resolved grid being laid out.
	Grid *ResolvedGrid

	// Regions contains the available layout regions.
	Regions *Regions

	// ResolvedCols are the resolved column widths.
	ResolvedCols []Abs

	// RowStates track layout progress per row.
	RowStates []RowState

	// Current is the state of the region presently being filled.
	Current RegionState

	// LaidRows are the rows laid out so far in the current region.
	LaidRows []LayoutRow

	// Rowspans tracks cells spanning multiple rows.
	Rowspans *RowspanTracker

	// Headers manages repeating header/footer placement.
	Headers *HeaderManager

	// Frames are the completed output frames, one per region.
	Frames []*Frame

	// RTL indicates right-to-left column order.
	RTL bool
}

// RegionState tracks state for the current output region.
type RegionState struct {
	Y                     Abs
	InitialHeaderHeight   Abs
	RepeatingHeaderHeight Abs
	PendingHeaderHeight   Abs
	FooterHeight          Abs
	RegionIndex           int
}

// RowState tracks layout progress for a single logical row.
type RowState struct {
	Height     Abs
	Y          Abs
	IsGutter   bool
	Completed  bool
	InProgress bool
}

// LayoutRow represents a row that has been laid out.
type LayoutRow struct {
	Frame    *Frame
	Y        Abs
	Height   Abs
	IsGutter bool
}

// NewLayouter creates a new grid layouter for a resolved grid.
func NewLayouter(grid *ResolvedGrid, regions *Regions) *Layouter {
	return &Layouter{
		Grid:      grid,
		Regions:   regions,
		RowStates: make([]RowState, grid.RowCount),
		Rowspans:  NewRowspanTracker(),
		Headers:   NewHeaderManager(grid),
	}
}

// Layout performs the complete grid layout, returning one frame per
// output region.
func (l *Layouter) Layout() (Fragment, error) {
	if err := l.measureColumns(); err != nil {
		return nil, err
	}
	l.registerRowspans()

	if f := l.Grid.Footer; f != nil {
		for y := f.Value.Start; y < f.Value.End; y++ {
			if !l.Grid.IsGutterRow(y) {
				l.Current.FooterHeight += l.estimateRowHeight(y)
			}
		}
	}

	for y := 0; y < l.Grid.RowCount; y++ {
		if l.Grid.IsGutterRow(y) {
			continue
		}
		if err := l.layoutRow(y); err != nil {
			return nil, err
		}
	}

	l.finishRegion(true)

	return Fragment(l.Frames), nil
}

// measureColumns resolves all column widths.
func (l *Layouter) measureColumns() error {
	region := l.Regions.First()
	availableWidth := region.Size.Width

	numCols := l.Grid.ColCount
	l.ResolvedCols = make([]Abs, numCols)

	var totalFixed Abs
	var totalFr Fr
	var autoIndices []int

	for i := 0; i < numCols; i++ {
		switch t := l.Grid.ColAt(i).(type) {
		case FixedTrack:
			l.ResolvedCols[i] = t.Size
			totalFixed += t.Size
		case RelativeTrack:
			width := t.Ratio.Resolve(availableWidth)
			l.ResolvedCols[i] = width
			totalFixed += width
		case FrTrack:
			totalFr += t.Fr
		case AutoTrack:
			autoIndices = append(autoIndices, i)
		}
	}

	for _, i := range autoIndices {
		width := l.measureAutoColumn(i)
		l.ResolvedCols[i] = width
		totalFixed += width
	}

	remaining := availableWidth - totalFixed
	if remaining > 0 && totalFr > 0 {
		perFr := remaining / Abs(totalFr)
		for i := 0; i < numCols; i++ {
			if fr, ok := l.Grid.ColAt(i).(FrTrack); ok {
				l.ResolvedCols[i] = Abs(fr.Fr) * perFr
			}
		}
	}

	if totalFixed > availableWidth {
		l.shrinkColumns(availableWidth, totalFixed)
	}

	return nil
}

// measureAutoColumn measures the natural width of an auto column from its
// non-spanning cells.
func (l *Layouter) measureAutoColumn(col int) Abs {
	var maxWidth Abs
	for _, cell := range l.Grid.CellsInColumn(col) {
		if cell.Colspan == 1 {
			if width := measureCellWidth(cell); width > maxWidth {
				maxWidth = width
			}
		}
	}
	return maxWidth
}

// shrinkColumns applies fair-share shrinking when columns exceed available space.
func (l *Layouter) shrinkColumns(available, total Abs) {
	if total <= 0 {
		return
	}
	scale := float64(available) / float64(total)
	for i := range l.ResolvedCols {
		l.ResolvedCols[i] = Abs(float64(l.ResolvedCols[i]) * scale)
	}
}

// registerRowspans starts tracking every originating multi-row cell, so
// layoutRow can keep a rowspan's rows from being split across a region
// break once it is known they all fit together.
func (l *Layouter) registerRowspans() {
	for y := 0; y < l.Grid.RowCount; y++ {
		for _, cell := range l.Grid.CellsInRow(y) {
			if cell.Rowspan > 1 {
				l.Rowspans.Start(cell)
			}
		}
	}
}

// unbreakableGroupStartingAt returns the set of rows that must stay
// together in one region because a rowspan originates at y, or nil if
// no rowspan starts here.
func (l *Layouter) unbreakableGroupStartingAt(y int) *Unbreakable {
	var group *Unbreakable
	for _, cell := range l.Grid.CellsInRow(y) {
		if cell.Rowspan <= 1 {
			continue
		}
		if group == nil {
			group = NewUnbreakable(cell, cell.Rowspan)
		} else {
			group.Add(cell)
		}
	}
	return group
}

// groupFits reports whether every row of an unbreakable group fits in
// the space still available in the current region.
func (l *Layouter) groupFits(group *Unbreakable) bool {
	region := l.Regions.First()
	available := region.Size.Height - l.Current.RepeatingHeaderHeight - l.Current.Y - l.Current.FooterHeight
	var needed Abs
	for row := group.StartY(); row < group.EndY(); row++ {
		if l.Grid.IsGutterRow(row) {
			continue
		}
		needed += l.estimateRowHeight(row)
	}
	return needed <= available
}

// layoutRow lays out a single row, breaking to a new region first if the
// row will not fit, or if it opens a rowspan whose rows would otherwise
// be split across the break.
func (l *Layouter) layoutRow(y int) error {
	if l.needsRegionBreak(y) {
		l.finishRegion(false)
		l.startNewRegion()
	}
	if group := l.unbreakableGroupStartingAt(y); group != nil && !l.groupFits(group) && l.Current.Y > 0 {
		l.finishRegion(false)
		l.startNewRegion()
	}

	for _, state := range l.Rowspans.CompletedAt(y) {
		l.Rowspans.Remove(state)
	}

	switch t := l.Grid.RowAt(y).(type) {
	case FixedTrack:
		return l.layoutFixedRow(y, t.Size)
	case RelativeTrack:
		region := l.Regions.First()
		return l.layoutFixedRow(y, t.Ratio.Resolve(region.Size.Height))
	case FrTrack:
		l.RowStates[y].InProgress = true
		return nil
	default:
		return l.layoutAutoRow(y)
	}
}

func (l *Layouter) layoutAutoRow(y int) error {
	cells := l.Grid.CellsInRow(y)
	rowHeight := l.measureRowHeight(y, cells)
	return l.placeRow(y, rowHeight, cells)
}

func (l *Layouter) layoutFixedRow(y int, height Abs) error {
	cells := l.Grid.CellsInRow(y)
	return l.placeRow(y, height, cells)
}

func (l *Layouter) placeRow(y int, height Abs, cells []*Cell) error {
	frame := l.createRowFrame(y, height, cells)

	row := LayoutRow{Frame: frame, Y: l.Current.Y, Height: height}
	l.LaidRows = append(l.LaidRows, row)
	l.Headers.CaptureRow(y, row)
	l.Current.Y += height
	l.RowStates[y].Height = height
	l.RowStates[y].Completed = true

	if l.Grid.HasGutter() && y+1 < l.Grid.RowCount {
		l.Current.Y += l.Grid.Gutter.Row
	}
	return nil
}

// measureRowHeight determines the height of an auto row, accounting for
// rowspans that complete here.
func (l *Layouter) measureRowHeight(y int, cells []*Cell) Abs {
	var maxHeight Abs
	for _, cell := range cells {
		if cell.Y == y && cell.Rowspan == 1 {
			if h := measureCellHeight(cell); h > maxHeight {
				maxHeight = h
			}
		}
	}

	for x := 0; x < l.Grid.ColCount; x++ {
		cell := l.Grid.CellAt(x, y)
		if cell == nil || cell.Rowspan <= 1 || cell.EndY()-1 != y {
			continue
		}
		cellHeight := measureCellHeight(cell)
		var allocated Abs
		for row := cell.Y; row < y; row++ {
			allocated += l.RowStates[row].Height
		}
		if needed := cellHeight - allocated; needed > maxHeight {
			maxHeight = needed
		}
	}

	return maxHeight
}

// getCellWidth returns the total width available for a cell, including
// any gutter columns inside its span.
func (l *Layouter) getCellWidth(cell *Cell) Abs {
	var width Abs
	for x := cell.X; x < cell.EndX(); x++ {
		width += l.ResolvedCols[x]
	}
	return width
}

// getCellHeight returns the total height allocated to a spanning cell.
func (l *Layouter) getCellHeight(cell *Cell) Abs {
	var height Abs
	for y := cell.Y; y < cell.EndY(); y++ {
		height += l.RowStates[y].Height
	}
	return height
}

// createRowFrame creates a frame containing all cell origins in a row.
func (l *Layouter) createRowFrame(y int, height Abs, cells []*Cell) *Frame {
	var totalWidth Abs
	for _, w := range l.ResolvedCols {
		totalWidth += w
	}

	frame := NewFrame(Size{Width: totalWidth, Height: height})

	var x Abs
	for col := 0; col < l.Grid.ColCount; col++ {
		cell := l.Grid.CellAt(col, y)
		if cell != nil && cell.X == col && cell.Y == y {
			cellFrame := l.layoutCell(cell, height)
			pos := Point{X: x, Y: 0}
			if l.RTL {
				pos.X = totalWidth - x - cellFrame.Size.Width
			}
			frame.PushFrame(pos, cellFrame)
		}
		x += l.ResolvedCols[col]
	}

	return frame
}

// layoutCell lays out a single cell's content into its own frame.
func (l *Layouter) layoutCell(cell *Cell, rowHeight Abs) *Frame {
	width := l.getCellWidth(cell)
	height := rowHeight
	if cell.Rowspan > 1 {
		height = l.getCellHeight(cell)
	}

	frame := NewFrame(Size{Width: width, Height: height})

	if fill := l.getCellFill(cell); fill != nil {
		frame.Push(Point{}, &ShapeItem{Shape: &RectShape{Size: frame.Size}, Fill: fill.Color})
	}
	if text, ok := cell.Body.(string); ok && text != "" {
		frame.Push(Point{}, &TextItem{Text: text})
	}

	addCellBorders(l, frame, cell, Size{Width: width, Height: height})

	return frame
}

// getCellFill returns the fill for a cell, falling back to the grid default.
func (l *Layouter) getCellFill(cell *Cell) *Paint {
	if cell.Fill != nil {
		return cell.Fill
	}
	return l.Grid.Fill
}

// needsRegionBreak checks if row y needs a fresh region to fit.
func (l *Layouter) needsRegionBreak(y int) bool {
	if l.Current.RegionIndex == 0 && l.Current.Y == 0 {
		return false
	}
	region := l.Regions.First()
	availableHeight := region.Size.Height - l.Current.RepeatingHeaderHeight - l.Current.Y - l.Current.FooterHeight
	return l.estimateRowHeight(y) > availableHeight
}

func (l *Layouter) estimateRowHeight(y int) Abs {
	switch t := l.Grid.RowAt(y).(type) {
	case FixedTrack:
		return t.Size
	case RelativeTrack:
		region := l.Regions.First()
		return t.Ratio.Resolve(region.Size.Height)
	default:
		return l.measureRowHeight(y, l.Grid.CellsInRow(y))
	}
}

// finishRegion completes the current region and appends it to the output.
// isLast indicates this is the final region produced by Layout, in which
// case header/footer rows already present in LaidRows (having been laid
// out in their natural position) must not be replayed a second time.
func (l *Layouter) finishRegion(isLast bool) {
	if len(l.LaidRows) == 0 {
		return
	}

	region := l.Regions.First()
	frame := NewFrame(region.Size)

	var y Abs
	if l.Current.RegionIndex > 0 {
		y = l.Headers.PlaceRepeatingHeaders(frame)
	}
	for _, row := range l.LaidRows {
		frame.PushFrame(Point{X: 0, Y: y + row.Y}, row.Frame)
	}
	if !isLast {
		l.Headers.PlaceFooter(frame, y+l.Current.Y)
	}

	addGridLinesToFrame(l, frame)

	l.Frames = append(l.Frames, frame)
	l.LaidRows = nil
}

// startNewRegion prepares layouter state for a fresh output region. Y is
// tracked relative to the content area; the space reserved for a
// repeating header is accounted for separately in needsRegionBreak.
func (l *Layouter) startNewRegion() {
	l.Current.RegionIndex++
	l.Current.RepeatingHeaderHeight = l.Headers.RepeatingHeaderHeight()
	l.Current.Y = 0
}

// measureCellWidth estimates the natural width of a cell's content.
// Real shaping is a collaborator's responsibility (see measure.go); this
// is the fallback used when no shaper is configured.
func measureCellWidth(cell *Cell) Abs {
	if cell.Body == nil {
		return 0
	}
	if text, ok := cell.Body.(string); ok {
		return EstimateTextWidth(text)
	}
	return 50 * Pt
}

// measureCellHeight estimates the natural height of a cell's content.
func measureCellHeight(cell *Cell) Abs {
	if cell.Body == nil {
		return 0
	}
	return 20 * Pt
}
