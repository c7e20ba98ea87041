package grid

import "testing"

func countLineShapes(frame *Frame) int {
	count := 0
	for _, item := range frame.Items {
		pos, ok := item.(*PositionedItem)
		if !ok {
			continue
		}
		shape, ok := pos.Item.(*ShapeItem)
		if !ok {
			continue
		}
		if _, ok := shape.Shape.(*LineShape); ok {
			count++
		}
	}
	return count
}

func TestAddGridLinesToFrameSkipsWhenNoStroke(t *testing.T) {
	g := simpleTextGrid(t, 2, "a", "b")
	regions := NewRegions(Size{Width: 100 * Pt, Height: 100 * Pt})
	frag, err := LayoutGrid(g, regions)
	if err != nil {
		t.Fatalf("LayoutGrid: %v", err)
	}
	if n := countLineShapes(frag[0]); n != 0 {
		t.Errorf("expected no lines without a stroke configured, got %d", n)
	}
}

func TestAddGridLinesToFrameDrawsDefaultBorder(t *testing.T) {
	g := simpleTextGrid(t, 2, "a", "b")
	regions := NewRegions(Size{Width: 100 * Pt, Height: 100 * Pt})
	frag, err := LayoutTable(g, regions)
	if err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}
	if n := countLineShapes(frag[0]); n != 4 {
		t.Errorf("expected the default table border to draw 4 lines, got %d", n)
	}
}

func TestAddGridLinesToFrameDrawsExplicitHLine(t *testing.T) {
	children := []GridChild{
		cellItem(-1, -1, 1, 1, "a"),
		cellItem(-1, -1, 1, 1, "b"),
		{Item: &GridItem{HLine: &ItemHLine{Y: SmartCustom(1), Start: 0, Stroke: &Stroke{Thickness: 1 * Pt}}}},
	}
	g, err := Resolve(fixedTracks(1), Gutter{}, children, nil, Alignment{}, Sides[*Stroke]{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	regions := NewRegions(Size{Width: 100 * Pt, Height: 100 * Pt})
	frag, err := LayoutGrid(g, regions)
	if err != nil {
		t.Fatalf("LayoutGrid: %v", err)
	}
	if n := countLineShapes(frag[0]); n != 1 {
		t.Errorf("expected exactly one explicit hline, got %d", n)
	}
}

func TestAddCellBordersDrawsPerCellOverride(t *testing.T) {
	l := &Layouter{Grid: &ResolvedGrid{}}
	frame := NewFrame(Size{Width: 50 * Pt, Height: 20 * Pt})
	cell := &Cell{
		Stroke: Sides[StrokeOverride]{
			Top:    StrokeSome(&Stroke{Thickness: 2 * Pt}),
			Bottom: StrokeUnset(),
			Left:   StrokeNone(),
			Right:  StrokeUnset(),
		},
	}
	addCellBorders(l, frame, cell, frame.Size)
	if n := countLineShapes(frame); n != 1 {
		t.Errorf("expected only the explicit top override to draw, got %d lines", n)
	}
}

func TestDrawBorderDrawsAllFourSides(t *testing.T) {
	frame := NewFrame(Size{Width: 10 * Pt, Height: 10 * Pt})
	s := &Stroke{Thickness: 1 * Pt}
	drawBorder(frame, Sides[*Stroke]{Top: s, Bottom: s, Left: s, Right: s}, 10*Pt, 10*Pt)
	if n := countLineShapes(frame); n != 4 {
		t.Errorf("expected 4 border lines, got %d", n)
	}
}

func TestRowYOffsetsSkipsGutterRows(t *testing.T) {
	l := &Layouter{
		Grid:     &ResolvedGrid{RowCount: 3, Gutter: Gutter{Row: 5 * Pt}},
		LaidRows: []LayoutRow{{Y: 0, Height: 20 * Pt}, {Y: 25 * Pt, Height: 30 * Pt}},
	}
	offsets := rowYOffsets(l, 3)
	if offsets[0] != 0 || offsets[1] != 20*Pt {
		t.Errorf("unexpected row 0 offsets: %v", offsets)
	}
	if offsets[2] != 25*Pt {
		t.Errorf("expected row 2 to start where the laid-out row says, got %v", offsets[2])
	}
	if offsets[3] != 55*Pt {
		t.Errorf("expected row 2 to end at 55pt, got %v", offsets[3])
	}
}
