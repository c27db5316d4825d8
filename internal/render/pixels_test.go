package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lifegrid/pkg/life"
)

func TestFillSnapshotRGBA(t *testing.T) {
	e, err := life.New(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SetCell(0, 1, true); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 8)
	p := Palette{On: color.RGBA{R: 10, G: 20, B: 30, A: 255}, Off: color.RGBA{A: 255}}
	fillSnapshotRGBA(buf, e.Snapshot(), p)

	want := []byte{0, 0, 0, 255, 10, 20, 30, 255}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestCellAtPixel(t *testing.T) {
	cases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{x: 0, y: 0, row: 0, col: 0, ok: true},
		{x: 25, y: 9, row: 0, col: 2, ok: true},
		{x: 49, y: 39, row: 3, col: 4, ok: true},
		{x: 50, y: 0, ok: false},
		{x: 0, y: 40, ok: false},
		{x: -1, y: 3, ok: false},
	}
	for _, tc := range cases {
		row, col, ok := CellAtPixel(tc.x, tc.y, 10, 4, 5)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Fatalf("CellAtPixel(%d,%d)=(%d,%d,%v), expected (%d,%d,%v)", tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}
