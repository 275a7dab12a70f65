package probemap

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned by New when the requested initial
	// capacity is zero or negative.
	ErrInvalidCapacity = errors.New("initial capacity must be positive")

	// ErrEmptyKey is returned by Set when the key is nil or has zero length.
	ErrEmptyKey = errors.New("empty key")

	// ErrCapacityOverflow is returned by Set when doubling the slot array
	// would overflow the int capacity. The map is left unchanged.
	ErrCapacityOverflow = errors.New("capacity overflow")

	// ErrClosed is returned by Set after Close has been called.
	ErrClosed = errors.New("map is closed")
)

// slot is a single cell of the open-addressed array. Occupancy is tracked
// by an explicit tag so that any value, including the zero value of V, can
// be stored.
type slot[V any] struct {
	key   []byte
	value V
	used  bool
}

// Map is a hash table mapping byte-slice keys to values of type V. It uses
// open addressing with linear probing, doubles its slot array whenever the
// load factor would exceed 0.5, and keeps its own copy of every key.
//
// A Map is not safe for concurrent use; callers needing shared access must
// serialize all operations externally.
type Map[V any] struct {
	hasher Hasher
	slots  []slot[V]
	count  int
	closed bool
}

// New creates a map with the given initial capacity, hashing keys with
// 64-bit FNV-1a. The capacity must be positive.
func New[V any](capacity int) (*Map[V], error) {
	return NewWithHasher[V](capacity, FNV1a{})
}

// NewWithHasher creates a map that hashes keys with h. Any deterministic
// Hasher yields a correct map; the choice affects distribution only, never
// the growth schedule.
func NewWithHasher[V any](capacity int, h Hasher) (*Map[V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if h == nil {
		h = FNV1a{}
	}
	return &Map[V]{
		hasher: h,
		slots:  make([]slot[V], capacity),
	}, nil
}

// findSlot scans slots starting at the key's home index, wrapping at the
// end of the array, and returns the first slot that is either unused (the
// landing slot for an insert, a miss for a lookup) or holds a byte-equal
// key. The caller guarantees the array has at least one unused slot, so
// the scan always terminates.
func (m *Map[V]) findSlot(slots []slot[V], key []byte) *slot[V] {
	idx := int(m.hasher.Sum64(key) % uint64(len(slots)))
	for {
		s := &slots[idx]
		if !s.used || bytes.Equal(s.key, key) {
			return s
		}
		idx++
		if idx == len(slots) {
			idx = 0
		}
	}
}

// Set inserts or updates the value stored under key and returns the map's
// own copy of the key. The returned slice stays valid for the life of the
// map and must not be modified.
//
// The growth check runs before the probe, so a Set that turns out to be an
// update of an existing key can still trigger a resize. That schedule is
// part of the observable contract: a map of capacity c grows as soon as a
// Set is attempted with c/2 slots already occupied.
func (m *Map[V]) Set(key []byte, value V) ([]byte, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	if m.count >= len(m.slots)/2 {
		if err := m.grow(); err != nil {
			return nil, err
		}
	}

	s := m.findSlot(m.slots, key)
	if s.used {
		s.value = value
		return s.key, nil
	}

	s.key = append([]byte(nil), key...)
	s.value = value
	s.used = true
	m.count++
	return s.key, nil
}

// Get returns the value stored under key. The second return is false when
// the key is absent. Get never modifies the map.
func (m *Map[V]) Get(key []byte) (V, bool) {
	if m.closed || len(key) == 0 {
		var zero V
		return zero, false
	}
	s := m.findSlot(m.slots, key)
	if !s.used {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Len returns the number of keys currently stored.
func (m *Map[V]) Len() int {
	return m.count
}

// Cap returns the current length of the slot array. It changes only
// through growth; a freshly created map reports exactly the capacity
// passed to New.
func (m *Map[V]) Cap() int {
	if m.closed {
		return 0
	}
	return len(m.slots)
}

// grow doubles the slot array and reinserts every occupied slot at its
// recomputed home index. Slot positions depend on capacity, so entries
// must be rehashed rather than copied across at their old indices; a
// same-index copy would break probe chains and strand keys.
//
// On overflow the map is left exactly as it was.
func (m *Map[V]) grow() error {
	newCap, err := doubleCapacity(len(m.slots))
	if err != nil {
		return err
	}

	next := make([]slot[V], newCap)
	for i := range m.slots {
		old := &m.slots[i]
		if !old.used {
			continue
		}
		// Keys are unique, so this always lands on an unused slot.
		*m.findSlot(next, old.key) = *old
	}
	m.slots = next
	return nil
}

// doubleCapacity returns c*2, or ErrCapacityOverflow if the product does
// not fit in an int.
func doubleCapacity(c int) (int, error) {
	doubled := c * 2
	if doubled <= c {
		return 0, ErrCapacityOverflow
	}
	return doubled, nil
}

// Close releases the slot array and every stored key and value. The map
// must not be used afterwards: Set fails with ErrClosed, Get reports every
// key absent, and Len and Cap report zero. Closing an already-closed map
// is a no-op.
func (m *Map[V]) Close() error {
	if m.closed {
		return nil
	}
	m.slots = nil
	m.count = 0
	m.closed = true
	return nil
}
