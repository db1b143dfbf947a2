package buffer

import (
	"slices"
	"testing"
)

func lines(d *Document) []string {
	out := make([]string, 0, d.Len())
	for row := 0; row < d.Len(); row++ {
		l, _ := d.Line(row)
		out = append(out, l.Text())
	}
	return out
}

func assertLines(t *testing.T, d *Document, want ...string) {
	t.Helper()
	if got := lines(d); !slices.Equal(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestFromString_SplitsLines(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{}},
		{text: "\n", want: []string{""}},
		{text: "a", want: []string{"a"}},
		{text: "a\nb\n", want: []string{"a", "b"}},
		{text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{text: "a\n\n", want: []string{"a", ""}},
	}
	for _, tc := range cases {
		d := FromString(tc.text)
		if got := lines(d); !slices.Equal(got, tc.want) {
			t.Fatalf("FromString(%q)=%q, want %q", tc.text, got, tc.want)
		}
		if d.Dirty() {
			t.Fatalf("fresh document must be clean")
		}
	}
}

func TestDocument_InsertChar(t *testing.T) {
	d := FromString("ab")
	d.InsertChar(Pos{Row: 0, GraphemeCol: 1}, 'X')
	assertLines(t, d, "aXb")
	if !d.Dirty() {
		t.Fatalf("insert must mark the document dirty")
	}
}

func TestDocument_InsertChar_PastLastRowAppends(t *testing.T) {
	d := New()
	d.InsertChar(Pos{Row: 0, GraphemeCol: 0}, 'a')
	assertLines(t, d, "a")
	d.InsertChar(Pos{Row: 1, GraphemeCol: 5}, 'b')
	assertLines(t, d, "a", "b")
}

func TestDocument_InsertChar_OutOfRangeIsNoop(t *testing.T) {
	d := FromString("a")
	d.InsertChar(Pos{Row: 2, GraphemeCol: 0}, 'x')
	d.InsertChar(Pos{Row: -1, GraphemeCol: 0}, 'x')
	assertLines(t, d, "a")
	if d.Dirty() {
		t.Fatalf("rejected insert must not mark dirty")
	}
}

func TestDocument_InsertChar_NewlineRoutesToSplit(t *testing.T) {
	d := FromString("abcd")
	d.InsertChar(Pos{Row: 0, GraphemeCol: 2}, '\n')
	assertLines(t, d, "ab", "cd")
}

func TestDocument_InsertGrapheme_Cluster(t *testing.T) {
	d := FromString("ab")
	d.InsertGrapheme(Pos{Row: 0, GraphemeCol: 1}, family)
	assertLines(t, d, "a"+family+"b")
	if got := d.LineLen(0); got != 3 {
		t.Fatalf("line len=%d, want 3", got)
	}
}

func TestDocument_InsertNewline(t *testing.T) {
	d := FromString("one\ntwo")
	d.InsertNewline(Pos{Row: 0, GraphemeCol: 1})
	assertLines(t, d, "o", "ne", "two")

	d.InsertNewline(Pos{Row: 3, GraphemeCol: 0})
	assertLines(t, d, "o", "ne", "two", "")

	d.InsertNewline(Pos{Row: 9, GraphemeCol: 0})
	assertLines(t, d, "o", "ne", "two", "")
}

func TestDocument_InsertNewline_SplitsAtGraphemeColumn(t *testing.T) {
	d := FromString("a" + eAcute + "b")
	d.InsertNewline(Pos{Row: 0, GraphemeCol: 2})
	assertLines(t, d, "a"+eAcute, "b")
}

func TestDocument_DeleteChar(t *testing.T) {
	d := FromString("abc")
	d.DeleteChar(Pos{Row: 0, GraphemeCol: 1})
	assertLines(t, d, "ac")
	if !d.Dirty() {
		t.Fatalf("delete must mark dirty")
	}
}

func TestDocument_DeleteChar_MergesNextRow(t *testing.T) {
	d := FromString("ab\ncd\nef")
	d.DeleteChar(Pos{Row: 0, GraphemeCol: 2})
	assertLines(t, d, "abcd", "ef")
}

func TestDocument_DeleteChar_NoopCases(t *testing.T) {
	d := FromString("ab")
	d.DeleteChar(Pos{Row: 0, GraphemeCol: 2})
	d.DeleteChar(Pos{Row: 1, GraphemeCol: 0})
	d.DeleteChar(Pos{Row: -1, GraphemeCol: 0})
	assertLines(t, d, "ab")
	if d.Dirty() {
		t.Fatalf("no-op delete must not mark dirty")
	}
}

func TestDocument_NewlineMergeInverse(t *testing.T) {
	text := "x" + eAcute + family + "yz"
	for col := 0; col <= 5; col++ {
		d := FromString(text)
		d.InsertNewline(Pos{Row: 0, GraphemeCol: col})
		d.DeleteChar(Pos{Row: 0, GraphemeCol: d.LineLen(0)})
		assertLines(t, d, text)
	}
}

func TestDocument_EditsInvalidateFollowingRows(t *testing.T) {
	d := FromString("a\nb\nc")
	d.Highlight("", -1)
	d.InsertChar(Pos{Row: 1, GraphemeCol: 0}, 'x')

	want := []bool{true, false, false}
	for row, w := range want {
		l, _ := d.Line(row)
		if l.Highlighted() != w {
			t.Fatalf("row %d highlighted=%v, want %v", row, l.Highlighted(), w)
		}
	}
}

func TestDocument_SetNameRetypes(t *testing.T) {
	d := FromString("fn main() {}")
	if got := d.FileType().Name; got != "No filetype" {
		t.Fatalf("unnamed file type=%q", got)
	}
	d.SetName("main.rs")
	if got := d.FileType().Name; got != "Rust" {
		t.Fatalf("file type after rename=%q, want Rust", got)
	}
	if d.Dirty() {
		t.Fatalf("rename must not mark dirty")
	}
}

func TestDocument_LineAccessors(t *testing.T) {
	d := FromString("ab\n" + family)
	if _, ok := d.Line(2); ok {
		t.Fatalf("row past end must not exist")
	}
	if got := d.LineLen(1); got != 1 {
		t.Fatalf("LineLen(1)=%d, want 1", got)
	}
	if got := d.LineLen(5); got != 0 {
		t.Fatalf("LineLen(5)=%d, want 0", got)
	}
	if got, want := d.Text(), "ab\n"+family; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
}

func TestDocument_CellWidth(t *testing.T) {
	d := FromString("ab\n漢字x")
	if got := d.CellWidth(1, 0, 3); got != 5 {
		t.Fatalf("CellWidth(1,0,3)=%d, want 5", got)
	}
	if got := d.CellWidth(1, 1, 2); got != 2 {
		t.Fatalf("CellWidth(1,1,2)=%d, want 2", got)
	}
	if got := d.CellWidth(0, 0, 9); got != 2 {
		t.Fatalf("CellWidth(0,0,9)=%d, want 2", got)
	}
	if got := d.CellWidth(2, 0, 1); got != 0 {
		t.Fatalf("CellWidth past end=%d, want 0", got)
	}
}
