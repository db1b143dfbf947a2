package buffer

import "testing"

func TestDocument_Find(t *testing.T) {
	d := FromString("a cat\ncat dog")
	cases := []struct {
		name   string
		query  string
		at     Pos
		dir    Direction
		want   Pos
		wantOK bool
	}{
		{"forward from start", "cat", Pos{0, 0}, Forward, Pos{0, 2}, true},
		{"forward past first match", "cat", Pos{0, 3}, Forward, Pos{1, 0}, true},
		{"backward on starting row", "cat", Pos{1, 5}, Backward, Pos{1, 0}, true},
		{"backward to earlier row", "cat", Pos{1, 2}, Backward, Pos{0, 2}, true},
		{"backward exhausted", "cat", Pos{0, 4}, Backward, Pos{}, false},
		{"forward exhausted", "dog", Pos{1, 5}, Forward, Pos{}, false},
		{"row out of range", "cat", Pos{2, 0}, Forward, Pos{}, false},
		{"empty query", "", Pos{0, 0}, Forward, Pos{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.Find(tc.query, tc.at, tc.dir)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("Find=(%v,%v), want (%v,%v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestDocument_Find_GraphemeColumns(t *testing.T) {
	d := FromString(family + eAcute + " needle")
	got, ok := d.Find("needle", Pos{}, Forward)
	if !ok || got != (Pos{Row: 0, GraphemeCol: 3}) {
		t.Fatalf("Find=(%v,%v), want (0,3)", got, ok)
	}
}
