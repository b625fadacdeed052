package cpu

import (
	"fmt"
	"slices"
	"testing"
)

func TestFirstN(t *testing.T) {
	t.Run("sets the low n processors", func(t *testing.T) {
		m := FirstN(4)
		if m.Count() != 4 {
			t.Fatalf("expected 4 processors, got %d", m.Count())
		}
		if got := m.CPUs(); !slices.Equal(got, []int{0, 1, 2, 3}) {
			t.Errorf("expected [0 1 2 3], got %v", got)
		}
		if m.Has(4) {
			t.Error("processor 4 should not be in the mask")
		}
		if m.lowWord() != 0xF {
			t.Errorf("expected low word 0xF, got 0x%X", m.lowWord())
		}
	})

	t.Run("non-positive count yields empty mask", func(t *testing.T) {
		for _, n := range []int{0, -3} {
			m := FirstN(n)
			if m.Count() != 0 {
				t.Errorf("FirstN(%d): expected empty mask, got %d processors", n, m.Count())
			}
			if m.String() != "none" {
				t.Errorf("FirstN(%d): expected \"none\", got %q", n, m.String())
			}
		}
	})

	t.Run("count beyond one word", func(t *testing.T) {
		want := min(130, maxMaskCPUs)
		m := FirstN(130)
		if m.Count() != want {
			t.Fatalf("expected %d processors, got %d", want, m.Count())
		}
		if !m.Has(want-1) || m.Has(want) {
			t.Errorf("expected processors 0..%d exactly", want-1)
		}
		if m.lowWord() != ^uint64(0) {
			t.Errorf("expected full low word, got 0x%X", m.lowWord())
		}
		if m.Requested() != 130 {
			t.Errorf("expected 130 requested, got %d", m.Requested())
		}
	})

	t.Run("huge count is truncated to what the platform can address", func(t *testing.T) {
		const n = 1 << 40
		m := FirstN(n)
		if m.Count() != maxMaskCPUs {
			t.Fatalf("expected %d processors, got %d", maxMaskCPUs, m.Count())
		}
		if m.Requested() != n {
			t.Errorf("expected %d requested, got %d", n, m.Requested())
		}
		if len(m.CPUs()) != maxMaskCPUs {
			t.Errorf("expected %d listed processors, got %d", maxMaskCPUs, len(m.CPUs()))
		}
		want := fmt.Sprintf("0-%d (%d requested)", maxMaskCPUs-1, n)
		if got := m.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestMask_String(t *testing.T) {
	tests := []struct {
		mask Mask
		want string
	}{
		{FirstN(1), "0"},
		{FirstN(2), "0-1"},
		{FirstN(8), "0-7"},
		{Mask{}, "none"},
	}

	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestMask_Equal(t *testing.T) {
	if !FirstN(3).Equal(FirstN(3)) {
		t.Error("identical masks should be equal")
	}
	if FirstN(3).Equal(FirstN(2)) {
		t.Error("masks of different size should differ")
	}
	if !(Mask{}).Equal(FirstN(0)) {
		t.Error("empty masks should be equal")
	}
	if FirstN(maxMaskCPUs).Equal(FirstN(maxMaskCPUs + 1)) {
		t.Error("masks requested for different counts should differ")
	}
}
