package scheduler

import (
	"errors"
	"testing"
)

// checkCoverage verifies that the ranges are ordered, disjoint, non-empty and
// cover [0, height) exactly.
func checkCoverage(t *testing.T, assignments []Assignment, height int) {
	t.Helper()

	next := 0
	for i, a := range assignments {
		if a.Worker != i {
			t.Errorf("assignment %d has worker index %d", i, a.Worker)
		}
		if a.RowStart != next {
			t.Errorf("assignment %d starts at %d, expected %d", i, a.RowStart, next)
		}
		if a.RowEnd <= a.RowStart {
			t.Errorf("assignment %d has empty range [%d, %d)", i, a.RowStart, a.RowEnd)
		}
		next = a.RowEnd
	}
	if next != height {
		t.Errorf("ranges end at %d, expected %d", next, height)
	}
}

func TestPartition(t *testing.T) {
	t.Run("covers every row exactly once", func(t *testing.T) {
		for height := 1; height <= 64; height++ {
			for workers := 1; workers <= height; workers++ {
				assignments, err := Partition(height, workers)
				if err != nil {
					t.Fatalf("Partition(%d, %d): unexpected error %v", height, workers, err)
				}
				if len(assignments) != workers {
					t.Fatalf("Partition(%d, %d): expected %d assignments, got %d", height, workers, workers, len(assignments))
				}
				checkCoverage(t, assignments, height)
			}
		}
	})

	t.Run("last worker absorbs the remainder", func(t *testing.T) {
		assignments, err := Partition(10, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := [][2]int{{0, 3}, {3, 6}, {6, 10}}
		for i, w := range want {
			if assignments[i].RowStart != w[0] || assignments[i].RowEnd != w[1] {
				t.Errorf("assignment %d: expected [%d, %d), got [%d, %d)",
					i, w[0], w[1], assignments[i].RowStart, assignments[i].RowEnd)
			}
		}
		if assignments[2].Rows() != 4 {
			t.Errorf("expected last worker to own 4 rows, got %d", assignments[2].Rows())
		}
	})

	t.Run("one worker per row", func(t *testing.T) {
		assignments, err := Partition(5, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, a := range assignments {
			if a.Rows() != 1 || a.RowStart != i {
				t.Errorf("worker %d: expected row %d only, got [%d, %d)", i, i, a.RowStart, a.RowEnd)
			}
		}
	})

	t.Run("more workers than rows is rejected", func(t *testing.T) {
		for _, tc := range [][2]int{{1, 2}, {3, 4}, {10, 11}, {10, 100}} {
			assignments, err := Partition(tc[0], tc[1])
			if !errors.Is(err, ErrTooManyWorkers) {
				t.Errorf("Partition(%d, %d): expected ErrTooManyWorkers, got %v", tc[0], tc[1], err)
			}
			if assignments != nil {
				t.Errorf("Partition(%d, %d): expected no assignments", tc[0], tc[1])
			}
		}
	})

	t.Run("invalid counts are rejected", func(t *testing.T) {
		if _, err := Partition(10, 0); !errors.Is(err, ErrWorkerCount) {
			t.Errorf("expected ErrWorkerCount, got %v", err)
		}
		if _, err := Partition(10, -1); !errors.Is(err, ErrWorkerCount) {
			t.Errorf("expected ErrWorkerCount, got %v", err)
		}
		if _, err := Partition(0, 1); !errors.Is(err, ErrHeight) {
			t.Errorf("expected ErrHeight, got %v", err)
		}
	})
}

func TestAssignment_Validate(t *testing.T) {
	if err := (Assignment{RowStart: 2, RowEnd: 3}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, a := range []Assignment{{RowStart: 3, RowEnd: 3}, {RowStart: 4, RowEnd: 2}, {RowStart: -1, RowEnd: 2}} {
		if err := a.Validate(); !errors.Is(err, ErrEmptyRange) {
			t.Errorf("[%d, %d): expected ErrEmptyRange, got %v", a.RowStart, a.RowEnd, err)
		}
	}
}
