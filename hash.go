package probemap

import "github.com/cespare/xxhash/v2"

// Hasher computes a 64-bit digest of a key. Implementations must be
// deterministic: equal byte sequences always produce equal digests. The
// map rehashes every key on growth, so digests are never stored and a
// Hasher carries no per-table state.
type Hasher interface {
	Sum64(key []byte) uint64
}

// 64-bit FNV-1a parameters.
const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// FNV1a is the default Hasher: the FNV-1a algorithm over the key bytes,
// XOR then multiply per byte, with wrapping 64-bit arithmetic.
type FNV1a struct{}

// Sum64 implements Hasher.
func (FNV1a) Sum64(key []byte) uint64 {
	hash := fnvOffsetBasis
	for _, b := range key {
		hash ^= uint64(b)
		hash *= fnvPrime
	}
	return hash
}

// XXHash is an alternative Hasher backed by xxHash64, useful when key sets
// are large enough for its throughput to matter.
type XXHash struct{}

// Sum64 implements Hasher.
func (XXHash) Sum64(key []byte) uint64 {
	return xxhash.Sum64(key)
}

var (
	_ Hasher = FNV1a{}
	_ Hasher = XXHash{}
)
