package intmap

// distance is the per-slot probe-distance byte. free marks an empty slot;
// valid probe distances are [0, maxDistance].
type distance = int8

const (
	free = distance(-1)
	// maxDistance is the largest legal probe distance. It is one less than
	// the overflow tail size (127): the tail exists so that no probe ever
	// needs to wrap, and its size is exactly the range a distance byte can
	// represent before the search/insert loops must treat it as a sizing
	// error.
	maxDistance = distance(126)
	// tailSlots is the number of extra slots appended beyond the logical
	// capacity to absorb the maximum legal probe distance without modular
	// wrap.
	tailSlots = 127
	// maxCapacity is the largest logical capacity the table accepts;
	// requests above it are silently clamped.
	maxCapacity = uint32(1) << 30
)

// table is the columnar slot storage and the probe/search/displacement
// engine. It has no notion of "not found" sentinels beyond free — absence
// is only ever represented by distance == free, never by a zero key.
type table[K Key[K], V any] struct {
	distances []distance
	keys      []K
	values    []V

	// capacity is the logical (power-of-two) capacity; len(distances) is
	// capacity+tailSlots.
	capacity uint32
	// indexMask is capacity-1, pre-converted to K so home() is a single
	// And+Index per lookup.
	indexMask K

	length int
}

func clampCapacity(requested uint32) uint32 {
	if requested == 0 {
		requested = 1
	}
	if requested > maxCapacity {
		return maxCapacity
	}
	return nextPowerOf2(requested)
}

func newTable[K Key[K], V any](requested uint32) *table[K, V] {
	capacity := clampCapacity(requested)
	slots := int(capacity) + tailSlots

	distances := make([]distance, slots)
	for i := range distances {
		distances[i] = free
	}

	var zeroKey K
	return &table[K, V]{
		distances: distances,
		keys:      make([]K, slots),
		values:    make([]V, slots),
		capacity:  capacity,
		indexMask: zeroKey.FromUint32(capacity - 1),
	}
}

// home returns the slot a key would live in if uncontested: the key's low
// log2(capacity) bits, reinterpreted as an index. There is no hashing.
func (t *table[K, V]) home(key K) uintptr {
	return key.And(t.indexMask).Index()
}

// search walks the probe chain starting at home, returning the slot a key
// occupies, or the slot and distance at which it would need to be inserted.
//
// The walk stops — correctly, not merely as an optimization — as soon as
// the walking probe's own distance exceeds the incumbent's distance[i]:
// Robin Hood insertion guarantees any occupant past that point sorts by a
// distance the search key could never have produced from this home, so the
// key cannot appear further down the chain.
func (t *table[K, V]) search(key K, home uintptr) (idx uintptr, d distance, found bool) {
	idx = home
	d = 0
	for {
		if t.distances[idx] < d {
			return idx, d, false
		}
		if t.keys[idx] == key {
			return idx, d, true
		}
		idx++
		d++
		if d > maxDistance {
			panicProbeOverflow(home, t.capacity)
		}
	}
}

// get returns the value stored for key, if present. The slot's key memory
// is only read when distance[idx] >= d, which search already guarantees.
func (t *table[K, V]) get(key K) (V, bool) {
	idx, _, found := t.search(key, t.home(key))
	if !found {
		var zero V
		return zero, false
	}
	return t.values[idx], true
}

func (t *table[K, V]) getPtr(key K) (*V, bool) {
	idx, _, found := t.search(key, t.home(key))
	if !found {
		return nil, false
	}
	return &t.values[idx], true
}

func (t *table[K, V]) contains(key K) bool {
	_, _, found := t.search(key, t.home(key))
	return found
}

// insert places key/value, displacing richer incumbents forward per the
// Robin Hood creed, and returns the previous value if key was already
// present.
func (t *table[K, V]) insert(key K, value V) (old V, hadOld bool) {
	home := t.home(key)
	idx, d, found := t.search(key, home)

	if found {
		old = t.values[idx]
		t.values[idx] = value
		return old, true
	}

	if t.distances[idx] == free {
		t.distances[idx] = d
		t.keys[idx] = key
		t.values[idx] = value
		t.length++
		var zero V
		return zero, false
	}

	// Displacement loop: the carried entry starts as our new key/value,
	// swapped in at the insertion point search found (which is occupied,
	// since the free case was handled above). From then on the carried
	// entry always holds the "richer" (lower-distance) of itself and the
	// slot it is being compared against.
	carriedKey, carriedVal, carriedDist := key, value, d
	i := idx
	t.keys[i], carriedKey = carriedKey, t.keys[i]
	t.values[i], carriedVal = carriedVal, t.values[i]
	t.distances[i], carriedDist = carriedDist, t.distances[i]

	for {
		i++
		carriedDist++
		if carriedDist > maxDistance {
			panicProbeOverflow(home, t.capacity)
		}

		if t.distances[i] == free {
			t.distances[i] = carriedDist
			t.keys[i] = carriedKey
			t.values[i] = carriedVal
			break
		}

		if carriedDist > t.distances[i] {
			t.keys[i], carriedKey = carriedKey, t.keys[i]
			t.values[i], carriedVal = carriedVal, t.values[i]
			t.distances[i], carriedDist = carriedDist, t.distances[i]
		}
		// else: carried entry is no poorer than the incumbent; keep
		// walking without swapping.
	}

	t.length++
	var zero V
	return zero, false
}

// remove deletes key if present and back-shifts the following displaced
// entries one slot earlier, repairing the probe chain.
func (t *table[K, V]) remove(key K) (old V, found bool) {
	home := t.home(key)
	idx, _, found := t.search(key, home)
	if !found {
		var zero V
		return zero, false
	}

	old = t.values[idx]
	t.distances[idx] = free

	current := idx
	j := idx + 1
	for t.distances[j] >= 1 {
		t.distances[j]--
		t.distances[current], t.distances[j] = t.distances[j], t.distances[current]
		t.keys[current], t.keys[j] = t.keys[j], t.keys[current]
		t.values[current], t.values[j] = t.values[j], t.values[current]
		current = j
		j++
	}

	// current now holds the removed entry's final resting place; release
	// it so V containing pointers/handles does not linger past removal.
	var zeroKey K
	var zeroVal V
	t.keys[current] = zeroKey
	t.values[current] = zeroVal

	t.length--
	return old, true
}

// clear resets every slot to free and drops every occupied key/value.
func (t *table[K, V]) clear() {
	var zeroKey K
	var zeroVal V
	for i, d := range t.distances {
		if d != free {
			t.keys[i] = zeroKey
			t.values[i] = zeroVal
			t.distances[i] = free
		}
	}
	t.length = 0
}

// probes returns, for each occupied slot in storage order, the distance
// between that slot and the key's home slot.
func (t *table[K, V]) probes() []int {
	out := make([]int, 0, t.length)
	for _, d := range t.distances {
		if d != free {
			out = append(out, int(d))
		}
	}
	return out
}
