package life

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotString(t *testing.T) {
	e := newEngine(t, 3, 4)
	seed(t, e, [2]int{0, 0}, [2]int{1, 2}, [2]int{2, 3})
	want := "O...\n..O.\n...O\n"
	if diff := cmp.Diff(want, e.Snapshot().String()); diff != "" {
		t.Fatalf("String() mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotAccessors(t *testing.T) {
	e := newEngine(t, 3, 3)
	seed(t, e, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	e.Step()
	snap := e.Snapshot()

	if snap.Rows() != 3 || snap.Cols() != 3 {
		t.Fatalf("dimensions %dx%d", snap.Rows(), snap.Cols())
	}
	if snap.Generation() != 1 {
		t.Fatalf("generation=%d", snap.Generation())
	}
	if snap.Population() != 3 {
		t.Fatalf("population=%d", snap.Population())
	}
	if _, err := snap.At(3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("At(3,0) err=%v", err)
	}
	if snap.Alive(-1, 1) {
		t.Fatal("Alive outside the grid reported true")
	}

	want := []uint8{0, 1, 0, 0, 1, 0, 0, 1, 0}
	if diff := cmp.Diff(want, snap.AppendBytes(nil)); diff != "" {
		t.Fatalf("AppendBytes mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotAppendBytesDoesNotAlias(t *testing.T) {
	e := newEngine(t, 2, 2)
	seed(t, e, [2]int{0, 0})
	snap := e.Snapshot()
	buf := snap.AppendBytes(nil)
	buf[0] = 0
	if !snap.Alive(0, 0) {
		t.Fatal("mutating AppendBytes output changed the snapshot")
	}
}

func TestZeroSnapshot(t *testing.T) {
	var snap Snapshot
	if snap.String() != "" || snap.Population() != 0 {
		t.Fatal("zero snapshot is not empty")
	}
	if snap.Alive(0, 0) {
		t.Fatal("zero snapshot reported a live cell")
	}
}
