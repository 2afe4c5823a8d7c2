package erased

import (
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"
)

// FoodReporter is the capability every erased value provides.
type FoodReporter interface {
	PrintFoodRequirements()
}

// Destroyer can optionally be implemented by a pointer to an erased type.
// Destroy is called exactly once when the value is destroyed, but not when
// it is relocated to another storage.
type Destroyer interface {
	Destroy()
}

type TypeId uint16

// Table is the dispatch table of one concrete type. A Table is created once
// per type and never modified afterwards.
type Table struct {
	Id   TypeId
	Name string
	Type reflect.Type

	Size  uintptr
	Align uintptr

	// Err is set if values of the type can not be placed in a Storage.
	Err error

	// Invoke calls PrintFoodRequirements on the value at data.
	Invoke func(data unsafe.Pointer)

	// Destroy ends the lifetime of the value at data.
	Destroy func(data unsafe.Pointer)

	// Relocate moves the value at src to the uninitialized memory at dst.
	// After the call, src does not hold a value anymore.
	Relocate func(src, dst unsafe.Pointer)
}

func (t *Table) String() string {
	return t.Name
}

var tables atomic.Pointer[map[unsafe.Pointer]*Table]

func init() {
	// initialize the lookup table
	tables.Store(&map[unsafe.Pointer]*Table{})
}

// TableOf returns the dispatch table of T. Calling TableOf multiple times
// for the same type always returns the same pointer.
func TableOf[T FoodReporter]() *Table {
	ptrToType := abiTypePointerTo(reflect.TypeFor[T]())

	if cached, ok := (*tables.Load())[ptrToType]; ok {
		return cached
	}

	return ensureTable(ptrToType, makeTable[T])
}

func ensureTable(ptrToType unsafe.Pointer, makeTable func(id TypeId) *Table) *Table {
	for {
		previousTables := tables.Load()
		if cached, ok := (*previousTables)[ptrToType]; ok {
			return cached
		}

		newTable := makeTable(TypeId(len(*previousTables) + 1))

		newTables := maps.Clone(*previousTables)
		newTables[ptrToType] = newTable

		if tables.CompareAndSwap(previousTables, &newTables) {
			slog.Debug(
				"New dispatch table registered",
				slog.String("name", newTable.Name),
				slog.Int("id", int(newTable.Id)),
				slog.Int("size", int(newTable.Size)),
				slog.Bool("fits", newTable.Err == nil),
			)

			return newTable
		}
	}
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

func makeTable[T FoodReporter](id TypeId) *Table {
	reflectType := reflect.TypeFor[T]()

	table := &Table{
		Id:    id,
		Name:  reflectType.String(),
		Type:  reflectType,
		Size:  reflectType.Size(),
		Align: uintptr(reflectType.Align()),

		Invoke:   invoke[T],
		Destroy:  destroy[T],
		Relocate: relocate[T],
	}

	table.Err = CheckLayout(table.Type)

	return table
}

func invoke[T FoodReporter](data unsafe.Pointer) {
	(*(*T)(data)).PrintFoodRequirements()
}

func destroy[T FoodReporter](data unsafe.Pointer) {
	value := (*T)(data)

	if destroyer, ok := any(value).(Destroyer); ok {
		destroyer.Destroy()
	}

	var zero T
	*value = zero
}

func relocate[T FoodReporter](src, dst unsafe.Pointer) {
	var zero T

	*(*T)(dst) = *(*T)(src)
	*(*T)(src) = zero
}
