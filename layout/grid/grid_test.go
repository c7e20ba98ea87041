package grid

import "testing"

func simpleTextGrid(t *testing.T, cols int, bodies ...string) *ResolvedGrid {
	t.Helper()
	children := make([]GridChild, len(bodies))
	for i, b := range bodies {
		children[i] = cellItem(-1, -1, 1, 1, b)
	}
	g, err := Resolve(fixedTracks(cols), Gutter{}, children, nil, Alignment{}, Sides[*Stroke]{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return g
}

func TestColAtAndRowAtWithoutGutter(t *testing.T) {
	g := simpleTextGrid(t, 2, "a", "b")
	if _, ok := g.ColAt(0).(AutoTrack); !ok {
		t.Errorf("ColAt(0) = %T, want AutoTrack", g.ColAt(0))
	}
	if g.IsGutterCol(0) || g.IsGutterCol(1) {
		t.Error("no column should be a gutter column without gutter configured")
	}
}

func TestColAtAndRowAtWithGutter(t *testing.T) {
	children := []GridChild{cellItem(-1, -1, 1, 1, "a"), cellItem(-1, -1, 1, 1, "b")}
	g, err := Resolve(fixedTracks(2), Gutter{Column: 4 * Pt}, children, nil, Alignment{}, Sides[*Stroke]{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !g.IsGutterCol(1) {
		t.Error("column 1 should be the inserted gutter column")
	}
	if track, ok := g.ColAt(1).(FixedTrack); !ok || track.Size != 4*Pt {
		t.Errorf("ColAt(1) = %v, want FixedTrack{4pt}", g.ColAt(1))
	}
	if g.IsGutterCol(0) || g.IsGutterCol(2) {
		t.Error("real columns should not be reported as gutter columns")
	}
}

func TestIsAutoRowAndIsFrRow(t *testing.T) {
	tracks := Tracks{Columns: []TrackSize{AutoTrack{}}, Rows: []TrackSize{FrTrack{Fr: 1}}}
	g, err := Resolve(tracks, Gutter{}, []GridChild{cellItem(-1, -1, 1, 1, "a")}, nil, Alignment{}, Sides[*Stroke]{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !g.IsFrRow(0) {
		t.Error("expected row 0 to be fractional")
	}
	if g.IsAutoRow(0) {
		t.Error("a fractional row should not also report as auto")
	}
}

func TestCellsInRowAndColumn(t *testing.T) {
	g := simpleTextGrid(t, 2, "a", "b", "c", "d")
	row := g.CellsInRow(0)
	if len(row) != 2 || row[0].Body != "a" || row[1].Body != "b" {
		t.Errorf("CellsInRow(0) = %v", row)
	}
	col := g.CellsInColumn(0)
	if len(col) != 2 || col[0].Body != "a" || col[1].Body != "c" {
		t.Errorf("CellsInColumn(0) = %v", col)
	}
}

func TestCellsInRowExcludesMergedSlots(t *testing.T) {
	children := []GridChild{cellItem(-1, -1, 2, 1, "wide"), cellItem(-1, -1, 1, 1, "next")}
	g, err := Resolve(fixedTracks(2), Gutter{}, children, nil, Alignment{}, Sides[*Stroke]{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	row := g.CellsInRow(0)
	if len(row) != 1 {
		t.Fatalf("expected a single origin cell in row 0 despite the colspan, got %d", len(row))
	}
}

func TestLayoutGridProducesAFrame(t *testing.T) {
	g := simpleTextGrid(t, 2, "a", "b", "c", "d")
	regions := NewRegions(Size{Width: 400 * Pt, Height: 400 * Pt})

	frag, err := LayoutGrid(g, regions)
	if err != nil {
		t.Fatalf("LayoutGrid: %v", err)
	}
	if len(frag) != 1 {
		t.Fatalf("expected a single region, got %d", len(frag))
	}
	if frag[0].Size.Width <= 0 || frag[0].Size.Height <= 0 {
		t.Errorf("expected a non-empty frame, got %+v", frag[0].Size)
	}
}

func TestLayoutTableAppliesDefaultBorder(t *testing.T) {
	g := simpleTextGrid(t, 2, "a", "b")
	regions := NewRegions(Size{Width: 200 * Pt, Height: 200 * Pt})

	frag, err := LayoutTable(g, regions)
	if err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}
	if len(frag) != 1 {
		t.Fatalf("expected a single region, got %d", len(frag))
	}
	if g.Stroke.Top == nil || g.Stroke.Bottom == nil || g.Stroke.Left == nil || g.Stroke.Right == nil {
		t.Error("expected LayoutTable to fill in a default border on every side")
	}
}

func TestLayoutTableKeepsExplicitBorder(t *testing.T) {
	g := simpleTextGrid(t, 2, "a", "b")
	custom := &Stroke{Thickness: 5 * Pt}
	g.Stroke = Sides[*Stroke]{Top: custom}

	regions := NewRegions(Size{Width: 200 * Pt, Height: 200 * Pt})
	if _, err := LayoutTable(g, regions); err != nil {
		t.Fatalf("LayoutTable: %v", err)
	}
	if g.Stroke.Top != custom {
		t.Error("LayoutTable should not override an explicitly set stroke")
	}
}

func TestHasGutter(t *testing.T) {
	g := simpleTextGrid(t, 2, "a", "b")
	if g.HasGutter() {
		t.Error("expected HasGutter to be false with no gutter configured")
	}
}
