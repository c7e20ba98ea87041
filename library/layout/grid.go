package layout

import (
	"github.com/cortado-lang/cortado/library/foundations"
)

// GridTrackSizing represents a track sizing specification.
// It can be auto, a length, a fraction, or an array of these.
//
// Reference: typst-reference/crates/typst-library/src/layout/grid/mod.rs
type GridTrackSizing struct {
	// Auto indicates auto-sized tracks.
	Auto bool
	// Length is a fixed length in points (if not Auto or Fr).
	Length *float64
	// Fr is a fractional unit (if not Auto or Length).
	Fr *float64
	// Ratio is a percentage (0.0-1.0) relative to available space.
	Ratio *float64
}

// GridElement represents a grid layout element.
// It arranges its children (plain content, or explicit grid.cell/header/
// footer/hline/vline declarations) in a grid with configurable columns,
// rows, and gutter. The declaration-side shape mirrors TableChild exactly,
// since grid() and table() share the same placement resolver
// (layout/grid.Resolve).
//
// Reference: typst-reference/crates/typst-library/src/layout/grid/mod.rs
type GridElement struct {
	// Columns defines the column track sizes.
	Columns []GridTrackSizing
	// Rows defines the row track sizes.
	Rows []GridTrackSizing
	// ColumnGutter is the gap between columns (in points).
	ColumnGutter *float64
	// RowGutter is the gap between rows (in points).
	RowGutter *float64
	// Inset is the cell padding.
	Inset foundations.Value
	// Align is the cell alignment.
	Align foundations.Value
	// Fill is the cell background fill.
	Fill foundations.Value
	// Stroke is the cell stroke.
	Stroke foundations.Value
	// Children contains the grid's declared children, in source order.
	Children []GridChild
}

func (*GridElement) IsContentElement() {}

// ColumnGutterPts returns the column gutter in points, or 0 if not set.
func (g *GridElement) ColumnGutterPts() float64 {
	if g.ColumnGutter == nil {
		return 0
	}
	return *g.ColumnGutter
}

// RowGutterPts returns the row gutter in points, or 0 if not set.
func (g *GridElement) RowGutterPts() float64 {
	if g.RowGutter == nil {
		return 0
	}
	return *g.RowGutter
}

// GridChild represents one child of a grid() call: plain content, or an
// explicit grid.cell()/header()/footer()/hline()/vline() declaration.
type GridChild struct {
	// Content is set for plain content children (implicitly auto-placed).
	Content *foundations.Content
	Cell    *GridCellElement
	Header  *GridHeaderElement
	Footer  *GridFooterElement
	HLine   *GridHLineElement
	VLine   *GridVLineElement
}

// GridCellElement is an explicit grid.cell() with position/span overrides.
type GridCellElement struct {
	Body      foundations.Content
	X         *int
	Y         *int
	Colspan   int
	Rowspan   int
	Inset     foundations.Value
	Align     foundations.Value
	Fill      foundations.Value
	Stroke    foundations.Value
	Breakable foundations.Value
}

func (*GridCellElement) IsContentElement() {}

// GridHeaderElement is a repeatable grid header, from grid.header().
type GridHeaderElement struct {
	Repeat   bool
	Level    int
	Children []GridItem
}

func (*GridHeaderElement) IsContentElement() {}

// GridFooterElement is a repeatable grid footer, from grid.footer().
type GridFooterElement struct {
	Repeat   bool
	Children []GridItem
}

func (*GridFooterElement) IsContentElement() {}

// GridHLineElement is a horizontal line, from grid.hline().
type GridHLineElement struct {
	Y        *int
	Start    int
	End      *int
	Stroke   foundations.Value
	Position string
}

func (*GridHLineElement) IsContentElement() {}

// GridVLineElement is a vertical line, from grid.vline().
type GridVLineElement struct {
	X        *int
	Start    int
	End      *int
	Stroke   foundations.Value
	Position string
}

func (*GridVLineElement) IsContentElement() {}

// GridItem is a cell or line nested inside a grid header/footer.
type GridItem struct {
	Cell  *GridCellElement
	HLine *GridHLineElement
	VLine *GridVLineElement
}
