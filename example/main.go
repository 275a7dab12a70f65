package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/probemap"
)

func main() {
	// Create a map with an initial capacity of 8 slots
	m, err := probemap.New[uint64](8)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}
	defer m.Close()

	fmt.Println("Map created successfully")

	// Insert some data
	for i := uint64(0); i < 10; i++ {
		key := []byte(fmt.Sprintf("user-%d", i))
		if _, err := m.Set(key, i*100); err != nil {
			log.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}

	fmt.Println("Inserted 10 key-value pairs")
	fmt.Printf("Entries: %d, capacity after growth: %d\n", m.Len(), m.Cap())

	// Retrieve and display some values
	for i := uint64(0); i < 15; i += 2 {
		key := []byte(fmt.Sprintf("user-%d", i))
		if value, found := m.Get(key); found {
			fmt.Printf("Key %s => Value %d\n", key, value)
		} else {
			fmt.Printf("Key %s not found\n", key)
		}
	}

	// Update a value
	if _, err := m.Set([]byte("user-2"), 999); err != nil {
		log.Fatalf("Failed to update: %v", err)
	}

	value, _ := m.Get([]byte("user-2"))
	fmt.Printf("Updated user-2 => %d\n", value)
}
