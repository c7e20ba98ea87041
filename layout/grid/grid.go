// Track and cell queries against a ResolvedGrid, and the entry points
// into the region-by-region layout pass (see doc.go for the package
// overview and layouter.go for the pass itself).
package grid

// ColAt returns the column track at logical index x, treating odd
// indices as gutter tracks when the grid has column gutter.
func (g *ResolvedGrid) ColAt(x int) TrackSize {
	if g.Gutter.Column > 0 && x%2 == 1 {
		return FixedTrack{Size: g.Gutter.Column}
	}
	real := x
	if g.Gutter.Column > 0 {
		real = x / 2
	}
	if real < len(g.Tracks.Columns) {
		return g.Tracks.Columns[real]
	}
	return AutoTrack{}
}

// RowAt returns the row track at logical index y, treating odd indices
// as gutter tracks when the grid has row gutter.
func (g *ResolvedGrid) RowAt(y int) TrackSize {
	if g.Gutter.Row > 0 && y%2 == 1 {
		return FixedTrack{Size: g.Gutter.Row}
	}
	real := y
	if g.Gutter.Row > 0 {
		real = y / 2
	}
	if real < len(g.Tracks.Rows) {
		return g.Tracks.Rows[real]
	}
	return AutoTrack{}
}

// IsGutterRow reports whether row y is an implicit gutter row.
func (g *ResolvedGrid) IsGutterRow(y int) bool {
	return g.Gutter.Row > 0 && y%2 == 1
}

// IsGutterCol reports whether column x is an implicit gutter column.
func (g *ResolvedGrid) IsGutterCol(x int) bool {
	return g.Gutter.Column > 0 && x%2 == 1
}

// IsAutoRow reports whether the row at y is auto-sized.
func (g *ResolvedGrid) IsAutoRow(y int) bool {
	_, ok := g.RowAt(y).(AutoTrack)
	return ok
}

// IsFrRow reports whether the row at y is fractional.
func (g *ResolvedGrid) IsFrRow(y int) bool {
	_, ok := g.RowAt(y).(FrTrack)
	return ok
}

// HasGutter reports whether the grid has any gutter spacing.
func (g *ResolvedGrid) HasGutter() bool {
	return g.Gutter.Column > 0 || g.Gutter.Row > 0
}

// CellsInRow returns every cell that originates in row y.
func (g *ResolvedGrid) CellsInRow(y int) []*Cell {
	var cells []*Cell
	for x := 0; x < g.ColCount; x++ {
		if e := g.Entry(x, y); e.Cell != nil {
			cells = append(cells, e.Cell)
		}
	}
	return cells
}

// CellsInColumn returns every cell that originates in column x.
func (g *ResolvedGrid) CellsInColumn(x int) []*Cell {
	var cells []*Cell
	for y := 0; y < g.RowCount; y++ {
		if e := g.Entry(x, y); e.Cell != nil {
			cells = append(cells, e.Cell)
		}
	}
	return cells
}

// LayoutGrid lays out a resolved grid or table into one or more region
// frames.
func LayoutGrid(resolved *ResolvedGrid, regions *Regions) (Fragment, error) {
	layouter := NewLayouter(resolved, regions)
	return layouter.Layout()
}

// LayoutTable lays out a resolved table, applying the table's default
// 1pt black border when none was set explicitly.
func LayoutTable(resolved *ResolvedGrid, regions *Regions) (Fragment, error) {
	if resolved.Stroke.Top == nil && resolved.Stroke.Bottom == nil &&
		resolved.Stroke.Left == nil && resolved.Stroke.Right == nil {
		def := &Stroke{Paint: Paint{Color: &Color{R: 0, G: 0, B: 0, A: 255}}, Thickness: Pt}
		resolved.Stroke = SidesSplat[*Stroke](def)
		resolved.HasStroke = true
	}
	return LayoutGrid(resolved, regions)
}
