package buffer

// Highlight tags rows 0 through until inclusive, threading the
// block-comment carry from each row into the next. Renderers pass the first
// row below the viewport as until, which gives one row of lookahead. A
// negative until highlights the whole document. Rows whose tags are current
// are skipped unless word is non-empty.
func (d *Document) Highlight(word string, until int) {
	end := len(d.lines)
	if until >= 0 && until+1 < end {
		end = until + 1
	}
	rules := &d.fileType.Rules
	in := false
	for _, l := range d.lines[:end] {
		in = l.highlight(rules, word, in)
	}
}
