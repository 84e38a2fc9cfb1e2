package flat

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// hashOf hashes an arbitrary comparable key by reinterpreting its bits (for
// fixed-width kinds) or its backing bytes (for strings) and running them
// through xxhash. This is the opposite design choice from the core table:
// where intmap.Map indexes by a key's own low bits with no hash function
// at all, this comparator exists specifically to hash, so it leans on a
// real hashing library rather than reimplementing one.
func hashOf[K comparable](key K) uint64 {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return xxhash.Sum64String(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		size := v.Type().Size()
		return xxhash.Sum64(rawBytes(unsafe.Pointer(&key), size))
	default:
		panic(fmt.Sprintf("flat: unsupported key type %T of kind %v", key, v.Kind()))
	}
}

// rawBytes reinterprets a pointer to a fixed-size value as a byte slice.
func rawBytes(p unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(p), int(size))
}
