package erased

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrTooLarge    = errors.New("type does not fit into storage")
	ErrOverAligned = errors.New("type alignment exceeds storage alignment")
	ErrHasPointers = errors.New("type contains pointers")
)

// CheckLayout verifies that a value of the given type can be stored in a Storage.
//
// Values in a Storage are kept as raw bytes the garbage collector does not scan,
// which is why types that hold pointers are rejected as well.
func CheckLayout(ty reflect.Type) error {
	if err := checkFit(ty.String(), ty.Size(), uintptr(ty.Align())); err != nil {
		return err
	}

	if typeHasPointers(ty) {
		return fmt.Errorf("%w: %s", ErrHasPointers, ty)
	}

	return nil
}

// checkFit verifies size and alignment of a type against the Storage layout.
func checkFit(name string, size, align uintptr) error {
	if size > Capacity {
		return fmt.Errorf("%w: %s needs %d bytes, capacity is %d",
			ErrTooLarge, name, size, Capacity)
	}

	if align > MaxAlign {
		return fmt.Errorf("%w: %s needs alignment %d, storage provides %d",
			ErrOverAligned, name, align, MaxAlign)
	}

	return nil
}

// typeHasPointers returns true, if a value of the given type contains
// any pointer the garbage collector would need to trace.
func typeHasPointers(ty reflect.Type) bool {
	switch ty.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false

	case reflect.Array:
		return ty.Len() > 0 && typeHasPointers(ty.Elem())

	case reflect.Struct:
		for idx := range ty.NumField() {
			if typeHasPointers(ty.Field(idx).Type) {
				return true
			}
		}

		return false

	default:
		// pointers, strings, slices, maps, channels, functions, interfaces
		// and unsafe pointers
		return true
	}
}
