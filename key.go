package intmap

import "golang.org/x/exp/constraints"

// Key is the capability set a type must satisfy to be used as a table key.
//
// Identity indexing needs strictly less than a general hashing trait: a key
// only has to support a bitwise AND against another key of its own kind, a
// total order, and conversions to/from the 32-bit and platform-width
// integers the table uses for rounding and slot addressing. This interface
// intentionally does not mention hashing — there is none.
type Key[K any] interface {
	comparable
	// And returns the bitwise AND of k and other.
	And(other K) K
	// Less reports whether k sorts before other.
	Less(other K) bool
	// FromUint32 returns the key whose bit pattern is u; the table uses it
	// to build its index mask from the rounded capacity.
	FromUint32(u uint32) K
	// ToUint32 truncates the key to its low 32 bits.
	ToUint32() uint32
	// Index reinterprets the key as a platform-width unsigned slot index.
	// Implementations must not do more than mask+convert: the table relies
	// on Index() and And() agreeing bit-for-bit on the low log2(capacity)
	// bits.
	Index() uintptr
}

// Native adapts any built-in Go integer kind (signed or unsigned, any
// width, including uintptr) to the Key interface. It is the identity
// adapter: every method is a one-line cast or operator application, so the
// compiler inlines Native the same way it would inline direct use of T.
type Native[T constraints.Integer] struct {
	V T
}

// N is a convenience constructor so callers can write N(int64(42)) instead
// of Native[int64]{42}.
func N[T constraints.Integer](v T) Native[T] {
	return Native[T]{V: v}
}

func (n Native[T]) And(other Native[T]) Native[T] {
	return Native[T]{V: n.V & other.V}
}

func (n Native[T]) Less(other Native[T]) bool {
	return n.V < other.V
}

func (n Native[T]) FromUint32(u uint32) Native[T] {
	return Native[T]{V: T(u)}
}

func (n Native[T]) ToUint32() uint32 {
	return uint32(n.V)
}

func (n Native[T]) Index() uintptr {
	return uintptr(n.V)
}

// Uint128 is a 128-bit unsigned key made of two 64-bit words. Go has no
// native 128-bit integer kind, so 128-bit keys are represented explicitly
// instead of being folded into the Native[T] family.
//
// Only Lo participates in indexing: identity indexing reads the key's low
// bits, and for a 128-bit key the low bits live entirely in Lo regardless
// of capacity (capacity is clamped to 2^30, far below 64 bits).
type Uint128 struct {
	Hi, Lo uint64
}

func (u Uint128) And(other Uint128) Uint128 {
	return Uint128{Hi: u.Hi & other.Hi, Lo: u.Lo & other.Lo}
}

func (u Uint128) Less(other Uint128) bool {
	if u.Hi != other.Hi {
		return u.Hi < other.Hi
	}
	return u.Lo < other.Lo
}

func (u Uint128) FromUint32(v uint32) Uint128 {
	return Uint128{Lo: uint64(v)}
}

func (u Uint128) ToUint32() uint32 {
	return uint32(u.Lo)
}

func (u Uint128) Index() uintptr {
	return uintptr(u.Lo)
}
