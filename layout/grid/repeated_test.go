package grid

import "testing"

func headerFooterGrid(t *testing.T) *ResolvedGrid {
	t.Helper()
	tracks := Tracks{Columns: []TrackSize{AutoTrack{}}}
	children := []GridChild{
		{Header: &HeaderChild{Repeat: true, Items: []GridItem{
			{Cell: &ItemCell{Body: "head", X: SmartCustom(0), Y: SmartCustom(0)}},
		}}},
		cellItem(-1, -1, 1, 1, "body"),
		{Footer: &FooterChild{Repeat: true, Items: []GridItem{
			{Cell: &ItemCell{Body: "foot", X: SmartCustom(0), Y: SmartCustom(2)}},
		}}},
	}
	g, err := Resolve(tracks, Gutter{}, children, nil, Alignment{}, Sides[*Stroke]{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return g
}

func TestHeaderManagerCapturesAndReplaysHeader(t *testing.T) {
	g := headerFooterGrid(t)
	m := NewHeaderManager(g)

	headerFrame := NewFrame(Size{Width: 50 * Pt, Height: 20 * Pt})
	m.CaptureRow(0, LayoutRow{Frame: headerFrame, Y: 0, Height: 20 * Pt})

	if h := m.RepeatingHeaderHeight(); h != 20*Pt {
		t.Errorf("RepeatingHeaderHeight = %v, want 20pt", h)
	}

	frame := NewFrame(Size{Width: 50 * Pt, Height: 100 * Pt})
	y := m.PlaceRepeatingHeaders(frame)
	if y != 20*Pt {
		t.Errorf("PlaceRepeatingHeaders returned cursor %v, want 20pt", y)
	}
	if len(frame.Items) != 1 {
		t.Fatalf("expected the header frame to be pushed once, got %d items", len(frame.Items))
	}
}

func TestHeaderManagerIgnoresNonRepeatingHeader(t *testing.T) {
	tracks := Tracks{Columns: []TrackSize{AutoTrack{}}}
	children := []GridChild{
		{Header: &HeaderChild{Repeat: false, Items: []GridItem{
			{Cell: &ItemCell{Body: "head", X: SmartCustom(0), Y: SmartCustom(0)}},
		}}},
		cellItem(-1, -1, 1, 1, "body"),
	}
	g, err := Resolve(tracks, Gutter{}, children, nil, Alignment{}, Sides[*Stroke]{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m := NewHeaderManager(g)
	m.CaptureRow(0, LayoutRow{Frame: NewFrame(Size{}), Y: 0, Height: 20 * Pt})

	if h := m.RepeatingHeaderHeight(); h != 0 {
		t.Errorf("expected a non-repeating header to contribute no height, got %v", h)
	}
}

func TestHeaderManagerFooterRepeats(t *testing.T) {
	g := headerFooterGrid(t)
	m := NewHeaderManager(g)

	footerFrame := NewFrame(Size{Width: 50 * Pt, Height: 15 * Pt})
	m.CaptureRow(2, LayoutRow{Frame: footerFrame, Y: 0, Height: 15 * Pt})

	if h := m.FooterHeight(); h != 15*Pt {
		t.Errorf("FooterHeight = %v, want 15pt", h)
	}

	frame := NewFrame(Size{Width: 50 * Pt, Height: 100 * Pt})
	m.PlaceFooter(frame, 80*Pt)
	if len(frame.Items) != 1 {
		t.Fatalf("expected the footer frame to be pushed once, got %d items", len(frame.Items))
	}
}

func TestHeaderManagerSkipsNonRepeatingFooter(t *testing.T) {
	tracks := Tracks{Columns: []TrackSize{AutoTrack{}}}
	children := []GridChild{
		cellItem(-1, -1, 1, 1, "body"),
		{Footer: &FooterChild{Repeat: false, Items: []GridItem{
			{Cell: &ItemCell{Body: "foot", X: SmartCustom(0), Y: SmartCustom(1)}},
		}}},
	}
	g, err := Resolve(tracks, Gutter{}, children, nil, Alignment{}, Sides[*Stroke]{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m := NewHeaderManager(g)
	m.CaptureRow(1, LayoutRow{Frame: NewFrame(Size{}), Y: 0, Height: 10 * Pt})

	frame := NewFrame(Size{})
	m.PlaceFooter(frame, 0)
	if len(frame.Items) != 0 {
		t.Error("expected a non-repeating footer to never be replayed")
	}
}
