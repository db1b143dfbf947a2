package buffer

// Find scans rows from at.Row towards the end (Forward) or the start
// (Backward) of the document and returns the first match in scan order. On
// the starting row a forward search begins at at.GraphemeCol and a backward
// search only considers matches ending at or before it.
func (d *Document) Find(query string, at Pos, dir Direction) (Pos, bool) {
	if query == "" || at.Row < 0 || at.Row >= len(d.lines) {
		return Pos{}, false
	}

	row, col := at.Row, at.GraphemeCol
	for row >= 0 && row < len(d.lines) {
		if x, ok := d.lines[row].Find(query, col, dir); ok {
			return Pos{Row: row, GraphemeCol: x}, true
		}
		if dir == Backward {
			row--
			if row >= 0 {
				col = d.lines[row].Len()
			}
		} else {
			row++
			col = 0
		}
	}
	return Pos{}, false
}
