package engine

// ClearLines removes every complete row and returns the removed row indices
// as they were seen during the scan.
//
// Rows are scanned top to bottom. Each removal shifts the rows above it down
// by one and inserts an empty row at the top, and the scan continues on the
// updated grid, so several rows completed by one lock all disappear.
func ClearLines(g *Grid) []int {
	var cleared []int
	for r := 0; r < g.Height(); r++ {
		if !g.RowComplete(r) {
			continue
		}
		g.removeRow(r)
		cleared = append(cleared, r)
	}
	return cleared
}
