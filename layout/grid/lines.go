// Lines renders grid strokes: the default grid-wide border, resolved
// horizontal/vertical lines from Resolve, and per-cell border overrides.
//
// Grid lines can be specified at multiple levels:
// - Grid default stroke
// - Per-cell stroke overrides
// - Explicit hline()/vline() items, already bucketed by Resolve

package grid

// addGridLinesToFrame draws the grid's default border and every
// resolved hline/vline into frame, once all rows have been laid out.
func addGridLinesToFrame(l *Layouter, frame *Frame) {
	g := l.Grid
	if !g.HasStroke && len(g.HLines) == 0 && len(g.VLines) == 0 {
		return
	}

	var totalWidth Abs
	for _, w := range l.ResolvedCols {
		totalWidth += w
	}
	var totalHeight Abs
	for _, row := range l.LaidRows {
		if h := row.Y + row.Height; h > totalHeight {
			totalHeight = h
		}
	}

	colOffsets := make([]Abs, g.ColCount+1)
	for i, w := range l.ResolvedCols {
		colOffsets[i+1] = colOffsets[i] + w
	}
	rowOffsets := rowYOffsets(l, g.RowCount)

	drawBorder(frame, g.Stroke, totalWidth, totalHeight)

	for y, lines := range g.HLines {
		if y <= 0 || y >= g.RowCount || y >= len(rowOffsets) {
			continue
		}
		drawHLines(frame, lines, rowOffsets[y], colOffsets, g.ColCount)
	}
	for x, lines := range g.VLines {
		if x <= 0 || x >= g.ColCount || x >= len(colOffsets) {
			continue
		}
		drawVLines(frame, lines, colOffsets[x], rowOffsets, g.RowCount)
	}

	for y := 0; y < g.RowCount; y++ {
		for _, cell := range g.CellsInRow(y) {
			width := cellSpanWidth(l, cell)
			height := cellSpanHeight(l, cell)
			pos := Point{X: colOffsets[cell.X], Y: rowYOffset(rowOffsets, cell.Y)}
			addCellBordersAt(frame, cell, pos, Size{Width: width, Height: height})
		}
	}
}

// rowYOffsets computes the Y offset of the start of each logical row
// within the frame, from the rows actually laid out.
func rowYOffsets(l *Layouter, rowCount int) []Abs {
	offsets := make([]Abs, rowCount+1)
	idx := 0
	for y := 0; y < rowCount; y++ {
		if l.Grid.IsGutterRow(y) {
			offsets[y+1] = offsets[y]
			continue
		}
		if idx < len(l.LaidRows) {
			offsets[y] = l.LaidRows[idx].Y
			offsets[y+1] = l.LaidRows[idx].Y + l.LaidRows[idx].Height
			idx++
		} else {
			offsets[y+1] = offsets[y]
		}
	}
	return offsets
}

func rowYOffset(offsets []Abs, y int) Abs {
	if y < len(offsets) {
		return offsets[y]
	}
	return 0
}

func cellSpanWidth(l *Layouter, cell *Cell) Abs {
	var width Abs
	for x := cell.X; x < cell.EndX() && x < len(l.ResolvedCols); x++ {
		width += l.ResolvedCols[x]
	}
	return width
}

func cellSpanHeight(l *Layouter, cell *Cell) Abs {
	var height Abs
	for y := cell.Y; y < cell.EndY() && y < len(l.RowStates); y++ {
		height += l.RowStates[y].Height
	}
	return height
}

func drawBorder(frame *Frame, stroke Sides[*Stroke], width, height Abs) {
	if s := stroke.Top; s != nil {
		addLine(frame, s, Point{X: 0, Y: 0}, Point{X: width, Y: 0})
	}
	if s := stroke.Bottom; s != nil {
		addLine(frame, s, Point{X: 0, Y: height}, Point{X: width, Y: height})
	}
	if s := stroke.Left; s != nil {
		addLine(frame, s, Point{X: 0, Y: 0}, Point{X: 0, Y: height})
	}
	if s := stroke.Right; s != nil {
		addLine(frame, s, Point{X: width, Y: 0}, Point{X: width, Y: height})
	}
}

func drawHLines(frame *Frame, lines []Line, y Abs, colOffsets []Abs, colCount int) {
	for _, line := range lines {
		if line.Stroke == nil {
			continue
		}
		start := 0
		if line.Start >= 0 {
			start = line.Start
		}
		end := colCount
		if line.End >= 0 && line.End <= colCount {
			end = line.End
		}
		if start < 0 || start >= len(colOffsets) || end >= len(colOffsets) || start > end {
			continue
		}
		addLine(frame, line.Stroke, Point{X: colOffsets[start], Y: y}, Point{X: colOffsets[end], Y: y})
	}
}

func drawVLines(frame *Frame, lines []Line, x Abs, rowOffsets []Abs, rowCount int) {
	for _, line := range lines {
		if line.Stroke == nil {
			continue
		}
		start := 0
		if line.Start >= 0 {
			start = line.Start
		}
		end := rowCount
		if line.End >= 0 && line.End <= rowCount {
			end = line.End
		}
		if start < 0 || start >= len(rowOffsets) || end >= len(rowOffsets) || start > end {
			continue
		}
		addLine(frame, line.Stroke, Point{X: x, Y: rowOffsets[start]}, Point{X: x, Y: rowOffsets[end]})
	}
}

func addLine(frame *Frame, stroke *Stroke, start, end Point) {
	frame.Push(Point{}, &ShapeItem{Shape: &LineShape{Start: start, End: end}, Stroke: stroke})
}

// addCellBorders draws a cell's own border overrides, folded against the
// grid default, onto a frame local to the cell.
func addCellBorders(l *Layouter, frame *Frame, cell *Cell, size Size) {
	top := cell.Stroke.Top.Resolve(l.Grid.Stroke.Top)
	bottom := cell.Stroke.Bottom.Resolve(l.Grid.Stroke.Bottom)
	left := cell.Stroke.Left.Resolve(l.Grid.Stroke.Left)
	right := cell.Stroke.Right.Resolve(l.Grid.Stroke.Right)

	if top != nil {
		addLine(frame, top, Point{X: 0, Y: 0}, Point{X: size.Width, Y: 0})
	}
	if bottom != nil {
		addLine(frame, bottom, Point{X: 0, Y: size.Height}, Point{X: size.Width, Y: size.Height})
	}
	if left != nil {
		addLine(frame, left, Point{X: 0, Y: 0}, Point{X: 0, Y: size.Height})
	}
	if right != nil {
		addLine(frame, right, Point{X: size.Width, Y: 0}, Point{X: size.Width, Y: size.Height})
	}
}

// addCellBordersAt draws only a cell's own explicit border overrides at
// an absolute position in the region frame. The grid-wide default border
// is drawn once up front by drawBorder/drawHLines/drawVLines, so cells
// here only need to contribute overrides, not the folded default.
func addCellBordersAt(frame *Frame, cell *Cell, pos Point, size Size) {
	top := cell.Stroke.Top.Resolve(nil)
	bottom := cell.Stroke.Bottom.Resolve(nil)
	left := cell.Stroke.Left.Resolve(nil)
	right := cell.Stroke.Right.Resolve(nil)

	if top != nil {
		addLine(frame, top, Point{X: pos.X, Y: pos.Y}, Point{X: pos.X + size.Width, Y: pos.Y})
	}
	if bottom != nil {
		addLine(frame, bottom, Point{X: pos.X, Y: pos.Y + size.Height}, Point{X: pos.X + size.Width, Y: pos.Y + size.Height})
	}
	if left != nil {
		addLine(frame, left, Point{X: pos.X, Y: pos.Y}, Point{X: pos.X, Y: pos.Y + size.Height})
	}
	if right != nil {
		addLine(frame, right, Point{X: pos.X + size.Width, Y: pos.Y}, Point{X: pos.X + size.Width, Y: pos.Y + size.Height})
	}
}
