// Package grid implements grid and table layout for Typst documents.
//
// Layout happens in two stages. Resolve places cells (including auto
// positions, colspans/rowspans, and header/footer ranges) and collects
// hline/vline strokes into a ResolvedGrid, independent of any page size.
// LayoutGrid/LayoutTable then measure columns and rows against a set of
// Regions and produce one frame per region, repeating headers and
// footers as needed:
//
//	resolved, err := Resolve(tracks, gutter, children, fill, align, stroke)
//	fragment, err := LayoutGrid(resolved, regions)
//
// This is a Go translation of typst-library/src/layout/grid/resolve.rs
// and typst-layout/src/grid/ from the Typst project. The broader layout
// package carries several incompatible generations of Frame/Region/Color
// that predate this package and were never reconciled with each other,
// so grid keeps its own small, internally consistent copy in geometry.go
// instead of importing them.
package grid
