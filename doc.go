/*
Package probemap provides an open-addressing hash table mapping byte-slice
keys to values of any type.

Map is designed as a small, predictable building block: linear probing for
collision resolution, 64-bit FNV-1a hashing, and automatic doubling of the
slot array whenever the load factor would exceed 0.5.

Basic usage:

	import "github.com/theflywheel/probemap"

	// Create a map with an initial capacity of 16 slots
	m, err := probemap.New[int](16)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	// Insert data
	m.Set([]byte("alice"), 1500)
	m.Set([]byte("bob"), 1200)

	// Retrieve data
	score, ok := m.Get([]byte("alice"))
	if ok {
		fmt.Println("alice:", score)
	}

	// Check size
	fmt.Println("entries:", m.Len(), "capacity:", m.Cap())

Features:

  - Byte-slice keys of any non-zero length, values of any Go type
  - Open addressing with linear probing for collision resolution
  - FNV-1a hashing by default; pluggable via NewWithHasher (an xxHash64
    implementation is included)
  - Automatic doubling resize that rehashes every entry, keeping the load
    factor at or below 0.5
  - Keys are copied on insert, so callers keep ownership of their buffers

Implementation Details:

Each slot carries an explicit occupancy tag, its key, and its value, so any
value (including the zero value) can be stored. Because the map supports no
deletion, an unused slot always terminates a probe sequence and no
tombstone handling is needed.

The resize check runs before every Set, even one that only updates an
existing key, so the growth schedule depends solely on capacity and count:
a map of capacity c grows to 2c on the first Set attempted with c/2 slots
occupied.

A Map is not safe for concurrent use. Callers that share a map across
goroutines must serialize all operations on it, for example with a single
mutex per map.
*/
package probemap
