package intmap_test

import (
	"encoding/binary"
	"testing"

	"github.com/kvstore-go/intmap"
)

// FuzzOps replays a byte string as a sequence of {Insert, Get, Delete,
// Contains} operations against a reference map[int32]int32, keeping the
// load factor at or below 0.5 by capping the key space to half the map's
// capacity.
func FuzzOps(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		const cap = 4096
		m := intmap.WithCapacity[intmap.Native[int32], int32](cap)
		truth := make(map[int32]int32)

		for len(data) >= 6 {
			op := data[0] % 4
			key := int32(binary.LittleEndian.Uint16(data[1:3])) % (cap / 2)
			val := int32(binary.LittleEndian.Uint16(data[3:5]))
			data = data[6:]

			switch op {
			case 0: // Insert
				a, aok := truth[key]
				truth[key] = val
				b, bok := m.Insert(intmap.N(key), val)
				if aok != bok || (aok && a != b) {
					t.Fatalf("insert(%d,%d): truth=(%v,%v) map=(%v,%v)", key, val, a, aok, b, bok)
				}
			case 1: // Get
				a, aok := truth[key]
				b, bok := m.Get(intmap.N(key))
				if aok != bok || (aok && a != b) {
					t.Fatalf("get(%d): truth=(%v,%v) map=(%v,%v)", key, a, aok, b, bok)
				}
			case 2: // Delete
				a, aok := truth[key]
				delete(truth, key)
				b, bok := m.Remove(intmap.N(key))
				if aok != bok || (aok && a != b) {
					t.Fatalf("remove(%d): truth=(%v,%v) map=(%v,%v)", key, a, aok, b, bok)
				}
			case 3: // Contains
				_, aok := truth[key]
				bok := m.Contains(intmap.N(key))
				if aok != bok {
					t.Fatalf("contains(%d): truth=%v map=%v", key, aok, bok)
				}
			}
		}

		if len(truth) != m.Len() {
			t.Fatalf("len mismatch: truth=%d map=%d", len(truth), m.Len())
		}
	})
}
