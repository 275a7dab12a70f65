package probemap

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// Slot arrays near MaxInt cannot be allocated in a test, so the overflow
// boundary is exercised on the capacity arithmetic directly. Every
// ordinary doubling succeeds; only the top of the int range fails.
func TestDoubleCapacityOverflowBoundary(t *testing.T) {
	ok := []int{1, 2, 1 << 20, math.MaxInt / 2}
	for _, c := range ok {
		doubled, err := doubleCapacity(c)
		if err != nil {
			t.Errorf("doubleCapacity(%d) failed: %v", c, err)
		}
		if doubled != c*2 {
			t.Errorf("doubleCapacity(%d) = %d, want %d", c, doubled, c*2)
		}
	}

	overflow := []int{math.MaxInt/2 + 1, math.MaxInt}
	for _, c := range overflow {
		if _, err := doubleCapacity(c); !errors.Is(err, ErrCapacityOverflow) {
			t.Errorf("doubleCapacity(%d): expected ErrCapacityOverflow, got %v", c, err)
		}
	}
}

// grow must land every entry at its recomputed home index in the larger
// array. Probing from the new home index has to reach each key without
// crossing an unused slot, which only holds if entries were rehashed
// rather than copied across at their old positions.
func TestGrowRehashesEveryEntry(t *testing.T) {
	m := &Map[int]{
		hasher: FNV1a{},
		slots:  make([]slot[int], 8),
	}

	keys := make([][]byte, 4)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("entry-%d", i))
		if _, err := m.Set(keys[i], i); err != nil {
			t.Fatalf("Failed to set %q: %v", keys[i], err)
		}
	}

	if err := m.grow(); err != nil {
		t.Fatalf("grow failed: %v", err)
	}
	if len(m.slots) != 16 {
		t.Fatalf("Expected capacity 16 after grow, got %d", len(m.slots))
	}
	if m.count != 4 {
		t.Fatalf("grow changed count: %d", m.count)
	}

	for i, key := range keys {
		s := m.findSlot(m.slots, key)
		if !s.used {
			t.Errorf("Key %q unreachable from its new home index", key)
			continue
		}

		home := int(m.hasher.Sum64(key) % uint64(len(m.slots)))
		if v, ok := m.Get(key); !ok || v != i {
			t.Errorf("Key %q (home %d): got (%d, %v), want (%d, true)", key, home, v, ok, i)
		}
	}
}
