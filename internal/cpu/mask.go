package cpu

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Mask is a set of logical processors a thread is allowed to run on.
// The zero value is an empty mask.
type Mask struct {
	set       *bitset.BitSet
	requested int
}

// FirstN returns the mask {0, 1, ..., n-1}.
// n may exceed the number of processors on the machine. Only the first
// maxMaskCPUs processors, as many as the platform's affinity call can
// address, are kept in the set; Requested still reports n.
func FirstN(n int) Mask {
	if n <= 0 {
		return Mask{}
	}

	kept := min(n, maxMaskCPUs)
	set := bitset.New(uint(kept))
	for i := range kept {
		set.Set(uint(i))
	}
	return Mask{set: set, requested: n}
}

// Requested returns the processor count the mask was built for, which may be
// larger than Count.
func (m Mask) Requested() int {
	return m.requested
}

// Count returns the number of processors in the mask.
func (m Mask) Count() int {
	if m.set == nil {
		return 0
	}
	return int(m.set.Count())
}

// Has reports whether processor cpu is in the mask.
func (m Mask) Has(cpu int) bool {
	if m.set == nil || cpu < 0 {
		return false
	}
	return m.set.Test(uint(cpu))
}

// CPUs returns the processors in the mask in ascending order.
func (m Mask) CPUs() []int {
	if m.set == nil {
		return nil
	}

	cpus := make([]int, 0, m.set.Count())
	for i, ok := m.set.NextSet(0); ok; i, ok = m.set.NextSet(i + 1) {
		cpus = append(cpus, int(i))
	}
	return cpus
}

// Equal reports whether both masks hold the same processors.
func (m Mask) Equal(o Mask) bool {
	if m.requested != o.requested || m.Count() != o.Count() {
		return false
	}
	return m.Count() == 0 || m.set.SymmetricDifferenceCardinality(o.set) == 0
}

// lowWord returns the first 64 processors of the mask as a machine word,
// which is what the Windows thread affinity API accepts.
func (m Mask) lowWord() uint64 {
	if m.set == nil {
		return 0
	}
	words := m.set.Bytes()
	if len(words) == 0 {
		return 0
	}
	return words[0]
}

// String renders the mask as a list of processor ranges, e.g. "0-3" or "0,2".
// A truncated mask also names the requested count: "0-1023 (4096 requested)".
func (m Mask) String() string {
	cpus := m.CPUs()
	if len(cpus) == 0 {
		return "none"
	}

	var b strings.Builder
	start := cpus[0]
	prev := cpus[0]
	flush := func() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		if start == prev {
			fmt.Fprintf(&b, "%d", start)
		} else {
			fmt.Fprintf(&b, "%d-%d", start, prev)
		}
	}

	for _, c := range cpus[1:] {
		if c == prev+1 {
			prev = c
			continue
		}
		flush()
		start, prev = c, c
	}
	flush()
	if m.requested > len(cpus) {
		fmt.Fprintf(&b, " (%d requested)", m.requested)
	}
	return b.String()
}
