package layout

import (
	"github.com/cortado-lang/cortado/layout/grid"
	"github.com/cortado-lang/cortado/library/foundations"
	"github.com/cortado-lang/cortado/syntax"
)

// Resolve places this grid's children into a ResolvedGrid, bridging the
// evaluator-facing declaration shape (GridElement, parsed straight out of
// grid() arguments) into layout/grid's resolver input shape (GridChild,
// ItemCell, ...). grid() and table() share the same resolver, so this
// bridge is the one place the evaluator's grid model meets the dedicated
// placement algorithm.
func (g *GridElement) Resolve() (*grid.ResolvedGrid, error) {
	tracks := grid.Tracks{
		Columns: trackSizes(g.Columns),
		Rows:    trackSizes(g.Rows),
	}
	gutter := grid.Gutter{
		Column: grid.Abs(g.ColumnGutterPts()),
		Row:    grid.Abs(g.RowGutterPts()),
	}

	children := make([]grid.GridChild, 0, len(g.Children))
	for _, c := range g.Children {
		children = append(children, convertGridChild(c))
	}

	fill := valueToPaint(g.Fill)
	align := valueToAlignment(g.Align)
	stroke := grid.SidesSplat(valueToStroke(g.Stroke))

	return grid.Resolve(tracks, gutter, children, fill, align, stroke)
}

func trackSizes(sizings []GridTrackSizing) []grid.TrackSize {
	sizes := make([]grid.TrackSize, 0, len(sizings))
	for _, s := range sizings {
		sizes = append(sizes, trackSize(s))
	}
	return sizes
}

func trackSize(s GridTrackSizing) grid.TrackSize {
	switch {
	case s.Length != nil:
		return grid.FixedTrack{Size: grid.Abs(*s.Length)}
	case s.Fr != nil:
		return grid.FrTrack{Fr: grid.Fr(*s.Fr)}
	case s.Ratio != nil:
		return grid.RelativeTrack{Ratio: grid.Ratio(*s.Ratio)}
	default:
		return grid.AutoTrack{}
	}
}

func convertGridChild(c GridChild) grid.GridChild {
	switch {
	case c.Header != nil:
		return grid.GridChild{Header: &grid.HeaderChild{
			Repeat: c.Header.Repeat,
			Level:  c.Header.Level,
			Items:  convertItems(c.Header.Children),
		}}
	case c.Footer != nil:
		return grid.GridChild{Footer: &grid.FooterChild{
			Repeat: c.Footer.Repeat,
			Items:  convertItems(c.Footer.Children),
		}}
	case c.Cell != nil:
		item := convertCellItem(c.Cell)
		return grid.GridChild{Item: &grid.GridItem{Cell: &item}}
	case c.HLine != nil:
		item := convertHLineItem(c.HLine)
		return grid.GridChild{Item: &grid.GridItem{HLine: &item}}
	case c.VLine != nil:
		item := convertVLineItem(c.VLine)
		return grid.GridChild{Item: &grid.GridItem{VLine: &item}}
	case c.Content != nil:
		item := grid.ItemCell{
			Body:      *c.Content,
			X:         grid.SmartAuto[int](),
			Y:         grid.SmartAuto[int](),
			Colspan:   1,
			Rowspan:   1,
			Breakable: grid.SmartAuto[bool](),
		}
		return grid.GridChild{Item: &grid.GridItem{Cell: &item}}
	default:
		return grid.GridChild{}
	}
}

func convertItems(items []GridItem) []grid.GridItem {
	out := make([]grid.GridItem, 0, len(items))
	for _, it := range items {
		switch {
		case it.Cell != nil:
			cell := convertCellItem(it.Cell)
			out = append(out, grid.GridItem{Cell: &cell})
		case it.HLine != nil:
			h := convertHLineItem(it.HLine)
			out = append(out, grid.GridItem{HLine: &h})
		case it.VLine != nil:
			v := convertVLineItem(it.VLine)
			out = append(out, grid.GridItem{VLine: &v})
		}
	}
	return out
}

func convertCellItem(c *GridCellElement) grid.ItemCell {
	colspan, rowspan := c.Colspan, c.Rowspan
	if colspan == 0 {
		colspan = 1
	}
	if rowspan == 0 {
		rowspan = 1
	}

	item := grid.ItemCell{
		Body:      c.Body,
		X:         smartIntFromPtr(c.X),
		Y:         smartIntFromPtr(c.Y),
		Colspan:   colspan,
		Rowspan:   rowspan,
		Fill:      valueToPaint(c.Fill),
		Align:     valueToAlignmentPtr(c.Align),
		Inset:     valueToInsetSides(c.Inset),
		Stroke:    grid.SidesSplat(valueToStrokeOverride(c.Stroke)),
		Breakable: grid.SmartAuto[bool](),
	}
	if b, ok := foundations.AsBool(c.Breakable); ok {
		item.Breakable = grid.SmartCustom(b)
	}
	return item
}

func convertHLineItem(h *GridHLineElement) grid.ItemHLine {
	return grid.ItemHLine{
		Y:        smartIntFromPtr(h.Y),
		Start:    h.Start,
		End:      h.End,
		Stroke:   valueToStroke(h.Stroke),
		Position: linePosition(h.Position),
	}
}

func convertVLineItem(v *GridVLineElement) grid.ItemVLine {
	return grid.ItemVLine{
		X:        smartIntFromPtr(v.X),
		Start:    v.Start,
		End:      v.End,
		Stroke:   valueToStroke(v.Stroke),
		Position: linePosition(v.Position),
	}
}

func linePosition(s string) grid.LinePosition {
	if s == "after" {
		return grid.LineAfter
	}
	return grid.LineBefore
}

func smartIntFromPtr(p *int) grid.Smart[int] {
	if p == nil {
		return grid.SmartAuto[int]()
	}
	return grid.SmartCustom(*p)
}

// valueToColor best-effort extracts a resolved RGBA color from a value
// that came from a color literal, falling back to nil for anything else
// (gradients, patterns, unset fields).
func valueToColor(v foundations.Value) *grid.Color {
	col, ok := v.(foundations.Color)
	if !ok {
		return nil
	}
	rgba := col.ToRgba()
	r, g, b, a := rgba.ToBytes()
	return &grid.Color{R: r, G: g, B: b, A: a}
}

func valueToPaint(v foundations.Value) *grid.Paint {
	c := valueToColor(v)
	if c == nil {
		return nil
	}
	return &grid.Paint{Color: c}
}

func valueToStroke(v foundations.Value) *grid.Stroke {
	paint := valueToPaint(v)
	if paint == nil {
		return nil
	}
	return &grid.Stroke{Paint: *paint, Thickness: grid.Pt}
}

func valueToStrokeOverride(v foundations.Value) grid.StrokeOverride {
	if foundations.IsNone(v) {
		return grid.StrokeNone()
	}
	if s := valueToStroke(v); s != nil {
		return grid.StrokeSome(s)
	}
	return grid.StrokeUnset()
}

func valueToAlignment(v foundations.Value) grid.Alignment {
	if v == nil || foundations.IsAuto(v) || foundations.IsNone(v) {
		return grid.Alignment{}
	}
	a2d, err := parseAlignment(v, syntax.Detached())
	if err != nil {
		return grid.Alignment{}
	}
	return toGridAlignment(a2d)
}

func valueToAlignmentPtr(v foundations.Value) *grid.Alignment {
	if v == nil || foundations.IsAuto(v) || foundations.IsNone(v) {
		return nil
	}
	a := valueToAlignment(v)
	return &a
}

func toGridAlignment(a2d Alignment2D) grid.Alignment {
	result := grid.Alignment{}
	if a2d.Horizontal != nil {
		switch *a2d.Horizontal {
		case HAlignCenter:
			result.X = grid.HAlignCenter
		case HAlignEnd:
			result.X = grid.HAlignEnd
		case HAlignLeft:
			result.X = grid.HAlignLeft
		case HAlignRight:
			result.X = grid.HAlignRight
		default:
			result.X = grid.HAlignStart
		}
	}
	if a2d.Vertical != nil {
		switch *a2d.Vertical {
		case VAlignHorizon:
			result.Y = grid.VAlignHorizon
		case VAlignBottom:
			result.Y = grid.VAlignBottom
		default:
			result.Y = grid.VAlignTop
		}
	}
	return result
}

// valueToInsetSides reads a single length as a uniform inset on all
// sides; per-side dictionaries are left to a future extension of
// inset parsing, same as the rest of grid's argument handling.
func valueToInsetSides(v foundations.Value) *grid.Sides[grid.Abs] {
	if lv, ok := v.(foundations.LengthValue); ok {
		sides := grid.SidesSplat(grid.Abs(lv.Length.Points))
		return &sides
	}
	return nil
}
