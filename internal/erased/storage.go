package erased

import "unsafe"

// Capacity is the number of bytes a Storage can hold.
const Capacity = 128

// maxAligned contains the scalar types with the strictest alignment
// requirements on the target platform.
type maxAligned struct {
	_ uint64
	_ float64
	_ complex128
	_ uintptr
}

// MaxAlign is the maximum natural alignment of the platform.
const MaxAlign = unsafe.Alignof(maxAligned{})

// Storage is an inline, MaxAlign aligned byte buffer that holds at most one
// value. Which type occupies the buffer is tracked outside of Storage, usually
// by a pointer to the types Table.
type Storage struct {
	_     [0]maxAligned
	bytes [Capacity]byte
}

func (s *Storage) Pointer() unsafe.Pointer {
	return unsafe.Pointer(&s.bytes)
}

// Place writes a value of type T into a new Storage. The caller must have
// checked the layout of T with CheckLayout.
func Place[T any](value T) (s Storage) {
	*(*T)(s.Pointer()) = value
	return s
}

// PlaceAt writes a value of type T into the given storage. The storage must
// not hold a live value.
func PlaceAt[T any](s *Storage, value T) {
	*(*T)(s.Pointer()) = value
}
