// Resolution turns the declarative children of a grid or table element
// (cells, lines, headers, footers, most of them with automatic or
// partially-specified positions) into a fully positioned ResolvedGrid
// that the layouter can walk row by row without ever again asking "where
// does this cell go".
//
// Translated from typst-library/src/layout/grid/resolve.rs.
package grid

import "fmt"

// LinePosition says whether a horizontal or vertical line is anchored to
// the start ("before" its index) or the end ("after" its index) of the
// row or column it names.
type LinePosition int

const (
	LineBefore LinePosition = iota
	LineAfter
)

// GridChild is one top level child of a grid or table: a plain item, or
// a header/footer group of items that repeats across regions.
type GridChild struct {
	Item   *GridItem
	Header *HeaderChild
	Footer *FooterChild
}

// HeaderChild groups items that form a repeating header.
type HeaderChild struct {
	Repeat bool
	Level  int
	Items  []GridItem
}

// FooterChild groups items that form a repeating footer.
type FooterChild struct {
	Repeat bool
	Items  []GridItem
}

// GridItem is a single cell or line placed (possibly automatically) in
// the grid.
type GridItem struct {
	Cell  *ItemCell
	HLine *ItemHLine
	VLine *ItemVLine
}

// ItemCell is the user-facing cell description before resolution: a
// position left automatic is filled in by the placement algorithm.
type ItemCell struct {
	Body      interface{}
	X         Smart[int]
	Y         Smart[int]
	Colspan   int
	Rowspan   int
	Fill      *Paint
	Align     *Alignment
	Inset     *Sides[Abs]
	Stroke    Sides[StrokeOverride]
	Breakable Smart[bool]
}

// ItemHLine is a horizontal line spanning some range of columns at a row
// boundary.
type ItemHLine struct {
	Y        Smart[int]
	Start    int
	End      *int
	Stroke   *Stroke
	Position LinePosition
}

// ItemVLine is a vertical line spanning some range of rows at a column
// boundary.
type ItemVLine struct {
	X        Smart[int]
	Start    int
	End      *int
	Stroke   *Stroke
	Position LinePosition
}

// StrokeOverride is a tri-state cell stroke: left unset (inherit the
// grid's default), explicitly cleared, or set to a specific stroke.
type StrokeOverride struct {
	state strokeState
	value *Stroke
}

type strokeState int

const (
	strokeUnset strokeState = iota
	strokeNone
	strokeSome
)

// StrokeUnset leaves the side to inherit the grid default.
func StrokeUnset() StrokeOverride { return StrokeOverride{state: strokeUnset} }

// StrokeNone explicitly removes the stroke on this side.
func StrokeNone() StrokeOverride { return StrokeOverride{state: strokeNone} }

// StrokeSome sets an explicit stroke on this side.
func StrokeSome(s *Stroke) StrokeOverride { return StrokeOverride{state: strokeSome, value: s} }

// Resolve folds this override against the grid's default for the side,
// returning nil when the side should not be drawn.
func (o StrokeOverride) Resolve(gridDefault *Stroke) *Stroke {
	switch o.state {
	case strokeNone:
		return nil
	case strokeSome:
		return o.value
	default:
		return gridDefault
	}
}

// Entry is one row-major slot in the resolved grid: either the cell that
// originates here, or a marker pointing back at the cell that merged
// into this slot via colspan/rowspan.
type Entry struct {
	Cell   *Cell
	Parent *CellPosition // non-nil for a merged (non-origin) slot
}

// CellPosition names a column/row pair.
type CellPosition struct {
	X, Y int
}

// Cell is a fully resolved grid cell: every field that was Smart in
// ItemCell has been pinned to a concrete position.
type Cell struct {
	Body      interface{}
	X, Y      int
	Colspan   int
	Rowspan   int
	Fill      *Paint
	Align     *Alignment
	Inset     *Sides[Abs]
	Stroke    Sides[StrokeOverride]
	Breakable bool
}

func (c *Cell) EndX() int { return c.X + c.Colspan }
func (c *Cell) EndY() int { return c.Y + c.Rowspan }

// Line is a resolved, position-normalized horizontal or vertical line.
type Line struct {
	Start, End int // column (for hlines) or row (for vlines) range, End==-1 means to the far edge
	Stroke     *Stroke
}

// Repeatable wraps a value that may or may not repeat across regions.
type Repeatable[T any] struct {
	Value    T
	Repeated bool
}

// Header is a resolved, possibly gutter-expanded header row range.
type Header struct {
	Start, End int
	Level      int
}

// Footer is a resolved, possibly gutter-expanded footer row range.
type Footer struct {
	Start, End int
}

// ResolvedGrid is the fully placed, line-collected, header/footer
// finalized grid, ready for region-by-region layout.
type ResolvedGrid struct {
	Tracks    Tracks
	Gutter    Gutter
	ColCount  int
	RowCount  int
	Entries   []Entry // row-major, len == ColCount*RowCount
	Fill      *Paint
	Align     Alignment
	Stroke    Sides[*Stroke]
	Headers   []Repeatable[Header]
	Footer    *Repeatable[Footer]
	HLines    map[int][]Line // keyed by row index the line sits above
	VLines    map[int][]Line // keyed by column index the line sits left of
	HasFill   bool
	HasStroke bool
}

// PlacementError reports a problem found while resolving cell or line
// positions.
type PlacementError struct {
	Message string
	Hints   []string
}

func (e *PlacementError) Error() string { return e.Message }

func errf(hints []string, format string, args ...interface{}) error {
	return &PlacementError{Message: fmt.Sprintf(format, args...), Hints: hints}
}

// resolver carries the mutable state threaded through placement.
type resolver struct {
	columns    int
	entries    []Entry // content-coordinate row-major placement slots
	rows       int     // number of logical (non-gutter) rows seen so far
	autoIndex  int
	headers    []*pendingHeader
	footer     *pendingFooter
	inRowGroup bool
	pendingH   []rawHLine
	pendingV   []rawVLine
}

type pendingHeader struct {
	repeat bool
	level  int
	firstY int
	lastY  int
}

type pendingFooter struct {
	repeat bool
	firstY int
	lastY  int
}

type rawHLine struct {
	y        int
	start    int
	end      *int
	stroke   *Stroke
	position LinePosition
}

type rawVLine struct {
	x        int
	start    int
	end      *int
	stroke   *Stroke
	position LinePosition
}

// Resolve places every child of a grid or table into a row-major,
// gap-free ResolvedGrid, validating positions, folding strokes, and
// finalizing header/footer row ranges along the way.
func Resolve(
	tracks Tracks,
	gutter Gutter,
	children []GridChild,
	fill *Paint,
	align Alignment,
	stroke Sides[*Stroke],
) (*ResolvedGrid, error) {
	columns := len(tracks.Columns)
	if columns == 0 {
		columns = 1
	}
	hasGutter := gutter.Column > 0 || gutter.Row > 0

	r := &resolver{columns: columns}

	for _, child := range children {
		if err := r.resolveChild(child); err != nil {
			return nil, err
		}
	}

	rowAmount := r.logicalRowAmount()
	if err := r.fixupCells(rowAmount); err != nil {
		return nil, err
	}

	// Content coordinates are scaled by these factors to reach the
	// final track space, which interleaves a gutter track after every
	// content track except the last.
	colFactor, rowFactor := 1, 1
	if gutter.Column > 0 {
		colFactor = 2
	}
	if gutter.Row > 0 {
		rowFactor = 2
	}
	outCols := columns*colFactor - (colFactor - 1)
	outRows := rowAmount * rowFactor
	if rowAmount > 0 {
		outRows -= rowFactor - 1
	}

	hlines, vlines, err := r.collectLines(rowAmount, colFactor, rowFactor)
	if err != nil {
		return nil, err
	}

	headers, footer, err := r.finalizeHeadersAndFooters(rowAmount, rowFactor)
	if err != nil {
		return nil, err
	}

	entries := padEntries(r.entries, columns, rowAmount)
	if hasGutter {
		entries = expandGutterTracks(entries, columns, rowAmount, outCols, outRows, colFactor, rowFactor)
	}

	hasFill := fill != nil
	hasStroke := stroke.Left != nil || stroke.Top != nil || stroke.Right != nil || stroke.Bottom != nil
	for _, e := range entries {
		if e.Cell != nil {
			if e.Cell.Fill != nil {
				hasFill = true
			}
			if e.Cell.Stroke.Left.state == strokeSome || e.Cell.Stroke.Top.state == strokeSome ||
				e.Cell.Stroke.Right.state == strokeSome || e.Cell.Stroke.Bottom.state == strokeSome {
				hasStroke = true
			}
		}
	}

	return &ResolvedGrid{
		Tracks:    tracks,
		Gutter:    gutter,
		ColCount:  outCols,
		RowCount:  outRows,
		Entries:   entries,
		Fill:      fill,
		Align:     align,
		Stroke:    stroke,
		Headers:   headers,
		Footer:    footer,
		HLines:    hlines,
		VLines:    vlines,
		HasFill:   hasFill,
		HasStroke: hasStroke,
	}, nil
}

// padEntries pads the placement slots out to a full columns x rows
// rectangle so the grid is gap-free.
func padEntries(entries []Entry, columns, rows int) []Entry {
	if len(entries) == columns*rows {
		return entries
	}
	out := make([]Entry, columns*rows)
	copy(out, entries)
	return out
}

// expandGutterTracks rewrites content-coordinate entries into the final
// track space: every content slot moves to (x*colFactor, y*rowFactor),
// the interleaved gutter slots stay empty, merge pointers are scaled
// along, and cell positions and spans become track positions and spans
// (a span of n content tracks crosses n-1 gutter tracks).
func expandGutterTracks(entries []Entry, columns, rows, outCols, outRows, colFactor, rowFactor int) []Entry {
	out := make([]Entry, outCols*outRows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < columns; cx++ {
			e := entries[cy*columns+cx]
			if e.Parent != nil {
				e.Parent = &CellPosition{X: e.Parent.X * colFactor, Y: e.Parent.Y * rowFactor}
			}
			if e.Cell != nil {
				e.Cell.X *= colFactor
				e.Cell.Y *= rowFactor
				e.Cell.Colspan = e.Cell.Colspan*colFactor - (colFactor - 1)
				e.Cell.Rowspan = e.Cell.Rowspan*rowFactor - (rowFactor - 1)
			}
			out[cy*rowFactor*outCols+cx*colFactor] = e
		}
	}
	return out
}

func (r *resolver) logicalRowAmount() int {
	// Rows are tracked in logical (non-doubled) space throughout
	// placement; gutter doubling only happens in finalizeHeadersAndFooters
	// and at the very end, matching the original implementation's
	// decision to resolve positions before gutter tracks exist.
	needed := (len(r.entries) + r.columns - 1) / r.columns
	if needed > r.rows {
		return needed
	}
	return r.rows
}

func (r *resolver) ensureRows(upTo int) {
	needed := upTo * r.columns
	for len(r.entries) < needed {
		r.entries = append(r.entries, Entry{})
	}
	if upTo > r.rows {
		r.rows = upTo
	}
}

func (r *resolver) resolveChild(child GridChild) error {
	switch {
	case child.Item != nil:
		return r.resolveItem(*child.Item)
	case child.Header != nil:
		return r.resolveHeader(*child.Header)
	case child.Footer != nil:
		return r.resolveFooter(*child.Footer)
	}
	return nil
}

func (r *resolver) resolveHeader(h HeaderChild) error {
	if r.footer != nil {
		return errf(nil, "headers must be placed before the footer")
	}
	startRow := r.rows
	r.inRowGroup = true
	for _, item := range h.Items {
		if err := r.resolveItem(item); err != nil {
			r.inRowGroup = false
			return err
		}
	}
	r.inRowGroup = false
	endRow := r.logicalRowAmount()
	r.headers = append(r.headers, &pendingHeader{
		repeat: h.Repeat,
		level:  h.Level,
		firstY: startRow,
		lastY:  endRow,
	})
	return nil
}

func (r *resolver) resolveFooter(f FooterChild) error {
	if r.footer != nil {
		return errf(nil, "cannot have more than one footer")
	}
	startRow := r.rows
	r.inRowGroup = true
	for _, item := range f.Items {
		if err := r.resolveItem(item); err != nil {
			r.inRowGroup = false
			return err
		}
	}
	r.inRowGroup = false
	endRow := r.logicalRowAmount()
	r.footer = &pendingFooter{repeat: f.Repeat, firstY: startRow, lastY: endRow}
	return nil
}

func (r *resolver) resolveItem(item GridItem) error {
	switch {
	case item.Cell != nil:
		return r.resolveCell(*item.Cell)
	case item.HLine != nil:
		return r.resolveHLine(*item.HLine)
	case item.VLine != nil:
		return r.resolveVLine(*item.VLine)
	}
	return nil
}

func (r *resolver) resolveHLine(h ItemHLine) error {
	y := h.Y.UnwrapOr(r.rows)
	r.pendingH = append(r.pendingH, rawHLine{y: y, start: h.Start, end: h.End, stroke: h.Stroke, position: h.Position})
	return nil
}

func (r *resolver) resolveVLine(v ItemVLine) error {
	x := v.X.UnwrapOr(0)
	r.pendingV = append(r.pendingV, rawVLine{x: x, start: v.Start, end: v.End, stroke: v.Stroke, position: v.Position})
	return nil
}

func (r *resolver) resolveCell(ic ItemCell) error {
	colspan := ic.Colspan
	if colspan < 1 {
		colspan = 1
	}
	rowspan := ic.Rowspan
	if rowspan < 1 {
		rowspan = 1
	}
	if colspan > r.columns {
		return errf(nil, "cell's colspan (%d) is larger than the number of columns (%d)", colspan, r.columns)
	}

	x, y, err := r.resolveCellPosition(ic.X, ic.Y, colspan)
	if err != nil {
		return err
	}

	cell := &Cell{
		Body:      ic.Body,
		X:         x,
		Y:         y,
		Colspan:   colspan,
		Rowspan:   rowspan,
		Fill:      ic.Fill,
		Align:     ic.Align,
		Inset:     ic.Inset,
		Stroke:    ic.Stroke,
		Breakable: ic.Breakable.UnwrapOr(true),
	}
	return r.placeCell(cell)
}

// placeCell writes a resolved cell into every slot of the logical grid
// it occupies, recording merged slots as pointers back to the origin.
func (r *resolver) placeCell(cell *Cell) error {
	r.ensureRows(cell.EndY())
	for yy := cell.Y; yy < cell.EndY(); yy++ {
		for xx := cell.X; xx < cell.EndX(); xx++ {
			idx := yy*r.columns + xx
			if r.entries[idx].Cell != nil || r.entries[idx].Parent != nil {
				return errf([]string{"try specifying your cells in a different order"},
					"cell at column %d, row %d is already occupied", xx, yy)
			}
			if xx == cell.X && yy == cell.Y {
				r.entries[idx] = Entry{Cell: cell}
			} else {
				r.entries[idx] = Entry{Parent: &CellPosition{X: cell.X, Y: cell.Y}}
			}
		}
	}
	if cell.Colspan == r.columns {
		r.autoIndex = (cell.Y+cell.Rowspan)*r.columns + 0
	} else {
		r.autoIndex = cell.Y*r.columns + cell.X + cell.Colspan
	}
	return nil
}

// resolveCellPosition implements the four Smart(x)/Smart(y) placement
// cases from the original grid resolver.
func (r *resolver) resolveCellPosition(smartX, smartY Smart[int], colspan int) (int, int, error) {
	x, xSet := smartX.Unwrap()
	y, ySet := smartY.Unwrap()

	switch {
	case !xSet && !ySet:
		idx := r.findNextAvailablePosition(r.autoIndex, colspan, false)
		r.ensureRows(idx/r.columns + 1)
		return idx % r.columns, idx / r.columns, nil

	case xSet && !ySet:
		if x < 0 || x+colspan > r.columns {
			return 0, 0, errf(nil, "cell's column (%d) would overflow the grid", x)
		}
		initial := r.autoIndex/r.columns*r.columns + x
		idx := r.findNextAvailablePosition(initial, colspan, true)
		r.ensureRows(idx/r.columns + 1)
		return x, idx / r.columns, nil

	case !xSet && ySet:
		if y < 0 {
			return 0, 0, errf(nil, "cell's row (%d) would overflow the grid", y)
		}
		r.ensureRows(y + 1)
		rowStart := y * r.columns
		for xx := 0; xx+colspan <= r.columns; xx++ {
			if r.rangeFree(rowStart+xx, colspan) {
				return xx, y, nil
			}
		}
		return 0, 0, errf([]string{"try specifying your cells in a different order"},
			"cell could not be placed in row %d because it was full", y)

	default:
		if x < 0 || x+colspan > r.columns {
			return 0, 0, errf(nil, "cell's column (%d) would overflow the grid", x)
		}
		if y < 0 {
			return 0, 0, errf(nil, "cell's row (%d) would overflow the grid", y)
		}
		r.ensureRows(y + 1)
		return x, y, nil
	}
}

// rangeFree reports whether colspan consecutive logical slots starting at
// idx are all unoccupied.
func (r *resolver) rangeFree(idx, colspan int) bool {
	for i := 0; i < colspan; i++ {
		if idx+i >= len(r.entries) {
			continue
		}
		e := r.entries[idx+i]
		if e.Cell != nil || e.Parent != nil {
			return false
		}
	}
	return true
}

// findNextAvailablePosition walks forward from start looking for
// colspan consecutive free slots, skipping whole rows when skipRows is
// set (used for the (Custom x, Auto y) case, where the column is fixed
// and only full rows are worth trying), and jumping past any header or
// footer range it lands inside.
func (r *resolver) findNextAvailablePosition(start, colspan int, skipRows bool) int {
	idx := start
	col := start % r.columns
	for {
		r.ensureRows(idx/r.columns + 1)
		row, skipTo := idx/r.columns, -1
		for _, h := range r.headers {
			if row >= h.firstY && row < h.lastY {
				skipTo = h.lastY
			}
		}
		if f := r.footer; f != nil && row >= f.firstY && row < f.lastY {
			skipTo = f.lastY
		}
		if skipTo >= 0 {
			idx = skipTo * r.columns
			if skipRows {
				idx += col
			}
			continue
		}
		if r.rangeFree(idx, colspan) {
			return idx
		}
		if skipRows {
			idx += r.columns
		} else {
			idx++
			if idx%r.columns == 0 {
				idx = r.skipFullyMergedRows(idx)
			}
		}
		if skipRows {
			idx = idx/r.columns*r.columns + col
		}
	}
}

// skipFullyMergedRows advances idx (which must be row-aligned) past any
// row that is entirely composed of merged (non-origin) entries, so an
// auto-placed cell lands below the shortest rowspan rather than
// disappearing underneath it.
func (r *resolver) skipFullyMergedRows(idx int) int {
	for idx%r.columns == 0 && idx/r.columns < r.rows {
		row := idx / r.columns
		allMerged := true
		for xx := 0; xx < r.columns; xx++ {
			e := r.entries[row*r.columns+xx]
			if e.Cell == nil && e.Parent == nil {
				allMerged = false
				break
			}
			if e.Cell != nil {
				allMerged = false
				break
			}
		}
		if !allMerged {
			break
		}
		idx += r.columns
	}
	return idx
}

// fixupCells fills every slot nobody claimed with an empty default cell,
// so the grid is rectangular and gap-free before lines and headers are
// finalized.
func (r *resolver) fixupCells(rowAmount int) error {
	r.ensureRows(rowAmount)
	total := r.columns * rowAmount
	for i := 0; i < total; i++ {
		if r.entries[i].Cell == nil && r.entries[i].Parent == nil {
			x, y := i%r.columns, i/r.columns
			r.entries[i] = Entry{Cell: &Cell{X: x, Y: y, Colspan: 1, Rowspan: 1, Breakable: true}}
		}
	}
	return nil
}

// collectLines validates and buckets pending horizontal and vertical
// lines by the row/column index they are ultimately drawn above/left of,
// rewriting "after the last row/column" into "before" so layout only
// ever has to look at one side.
func (r *resolver) collectLines(rowAmount, colFactor, rowFactor int) (map[int][]Line, map[int][]Line, error) {
	hlines := map[int][]Line{}
	for _, h := range r.pendingH {
		y := h.y
		if y > rowAmount {
			return nil, nil, errf(nil, "cannot place horizontal line at invalid row %d", y)
		}
		if y == rowAmount && h.position == LineAfter {
			return nil, nil, errf(
				[]string{"set the line's position to 'top' or place it at a smaller 'y' index"},
				"cannot place horizontal line at the 'bottom' position of the bottom border (y = %d)", y)
		}
		// Track-space border index. "After" a row means below it: past
		// that row's content track, which without gutter coincides with
		// "before" the next row.
		yy := y * rowFactor
		if h.position == LineAfter {
			yy = y*rowFactor + 1
		}
		end := r.columns
		if h.end != nil {
			end = *h.end
		}
		hlines[yy] = append(hlines[yy], Line{
			Start:  h.start * colFactor,
			End:    scaleExclusive(end, colFactor),
			Stroke: h.stroke,
		})
	}

	vlines := map[int][]Line{}
	for _, v := range r.pendingV {
		x := v.x
		if x > r.columns {
			return nil, nil, errf(nil, "cannot place vertical line at invalid column %d", x)
		}
		if x == r.columns && v.position == LineAfter {
			return nil, nil, errf(
				[]string{"set the line's position to 'start' or place it at a smaller 'x' index"},
				"cannot place vertical line at the end of the end border (x = %d)", x)
		}
		xx := x * colFactor
		if v.position == LineAfter {
			xx = x*colFactor + 1
		}
		end := rowAmount
		if v.end != nil {
			end = *v.end
		}
		vlines[xx] = append(vlines[xx], Line{
			Start:  v.start * rowFactor,
			End:    scaleExclusive(end, rowFactor),
			Stroke: v.stroke,
		})
	}

	return hlines, vlines, nil
}

// scaleExclusive converts an exclusive content-track end index into the
// exclusive track-space index covering the same last content track.
func scaleExclusive(end, factor int) int {
	if end <= 0 {
		return end
	}
	return end*factor - (factor - 1)
}

// finalizeHeadersAndFooters converts the pending header/footer row ranges
// into gutter-aware final ranges. When the grid has gutter tracks, every
// header annexes the implicit gutter row below it, and the footer
// annexes the implicit gutter row above it unless a header already
// claimed it.
func (r *resolver) finalizeHeadersAndFooters(rowAmount, rowFactor int) ([]Repeatable[Header], *Repeatable[Footer], error) {
	var headers []Repeatable[Header]
	var lastHeaderEnd = -1
	maxHeaderEnd := 0

	for _, h := range r.headers {
		if h.firstY != 0 {
			return nil, nil, errf(nil, "headers must start at row 0")
		}
		start, end := h.firstY, h.lastY
		// A cell that starts inside the header but spans past its last
		// row drags the header's end along with it.
		for i := range r.entries {
			c := r.entries[i].Cell
			if c == nil {
				continue
			}
			if c.Y >= start && c.Y < end && c.Y+c.Rowspan > end {
				end = c.Y + c.Rowspan
			}
		}
		if end > maxHeaderEnd {
			maxHeaderEnd = end
		}
		if rowFactor == 2 {
			start *= 2
			end *= 2
			max := 2*rowAmount - 1
			if max < 0 {
				max = 0
			}
			if end > max {
				end = max
			}
		}
		headers = append(headers, Repeatable[Header]{Value: Header{Start: start, End: end, Level: h.level}, Repeated: h.repeat})
		lastHeaderEnd = end
	}

	var footer *Repeatable[Footer]
	if r.footer != nil {
		f := r.footer
		if f.lastY != rowAmount {
			return nil, nil, errf(nil, "footer must end at the last row")
		}
		if f.firstY < maxHeaderEnd {
			return nil, nil, errf(nil, "header must end before the footer")
		}
		start := f.firstY
		end := f.lastY
		if rowFactor == 2 {
			start *= 2
			if lastHeaderEnd != start {
				if start > 0 {
					start--
				}
			}
			end = 2*end - 1
			if end < start {
				end = start
			}
		}
		footer = &Repeatable[Footer]{Value: Footer{Start: start, End: end}, Repeated: f.repeat}
	}

	return headers, footer, nil
}

// Entry returns the resolved entry at (x, y), or the zero Entry if the
// position is out of bounds.
func (g *ResolvedGrid) Entry(x, y int) Entry {
	if x < 0 || y < 0 || x >= g.ColCount || y >= g.RowCount {
		return Entry{}
	}
	return g.Entries[y*g.ColCount+x]
}

// CellAt returns the originating cell covering (x, y), following merge
// pointers for non-origin slots.
func (g *ResolvedGrid) CellAt(x, y int) *Cell {
	e := g.Entry(x, y)
	if e.Cell != nil {
		return e.Cell
	}
	if e.Parent != nil {
		return g.CellAt(e.Parent.X, e.Parent.Y)
	}
	return nil
}

// ParentCellPosition returns the position of the cell that owns the slot
// at (x, y): itself if it is an origin, or the origin it was merged into.
func (g *ResolvedGrid) ParentCellPosition(x, y int) (CellPosition, bool) {
	e := g.Entry(x, y)
	if e.Cell != nil {
		return CellPosition{X: x, Y: y}, true
	}
	if e.Parent != nil {
		return *e.Parent, true
	}
	return CellPosition{}, false
}

// Cell returns the cell that originates at (x, y), or nil at gutter,
// merged, or out-of-bounds positions. Unlike CellAt it never follows
// merge pointers.
func (g *ResolvedGrid) Cell(x, y int) *Cell {
	return g.Entry(x, y).Cell
}

// EffectiveParentCellPosition is ParentCellPosition extended across
// gutter tracks: at a gutter position it reports the owning cell if one
// spans the gutter, and false otherwise.
func (g *ResolvedGrid) EffectiveParentCellPosition(x, y int) (CellPosition, bool) {
	if pos, ok := g.ParentCellPosition(x, y); ok {
		return pos, true
	}
	cx, cy := x, y
	if g.IsGutterCol(x) {
		cx = x - 1
	}
	if g.IsGutterRow(y) {
		cy = y - 1
	}
	if cx == x && cy == y {
		return CellPosition{}, false
	}
	c := g.CellAt(cx, cy)
	if c == nil {
		return CellPosition{}, false
	}
	if x >= c.X+c.Colspan || y >= c.Y+c.Rowspan {
		return CellPosition{}, false
	}
	return CellPosition{X: c.X, Y: c.Y}, true
}

// EffectiveColspanOfCell returns how many tracks the cell spans. After
// resolution spans are track spans, so a cell declared over n content
// columns reports 2n-1 when the grid has column gutter.
func (g *ResolvedGrid) EffectiveColspanOfCell(c *Cell) int {
	return c.Colspan
}

// EffectiveRowspanOfCell returns how many tracks the cell spans,
// counting the gutter rows inside its span when the grid has row
// gutter.
func (g *ResolvedGrid) EffectiveRowspanOfCell(c *Cell) int {
	return c.Rowspan
}

// IsGutterTrack reports whether logical index i along an axis that has
// gutter inserted is itself a gutter track (every odd index, after the
// first real track).
func IsGutterTrack(i int, hasGutter bool) bool {
	return hasGutter && i%2 == 1
}

// HasRepeatedHeaders reports whether any header in the grid repeats.
func (g *ResolvedGrid) HasRepeatedHeaders() bool {
	for _, h := range g.Headers {
		if h.Repeated {
			return true
		}
	}
	return false
}
