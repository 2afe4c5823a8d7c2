// Package anyanimal provides AnyAnimal, a container that holds a value of any
// type implementing FoodReporter. The value is stored inline in a fixed size
// buffer and dispatched through a per type table, the container never
// allocates.
//
//	animal := anyanimal.New(zoo.NewLion())
//	animal.PrintFoodRequirements()
//
// An AnyAnimal must not be copied, use Move or MoveFrom to transfer the value
// to another container. A moved-from container is empty.
package anyanimal

import (
	"reflect"

	"github.com/oliverbestmann/anyanimal/internal/assert"
	"github.com/oliverbestmann/anyanimal/internal/erased"
)

// Capacity is the maximum size in bytes of a value held by an AnyAnimal.
const Capacity = erased.Capacity

// MaxAlign is the maximum alignment of a value held by an AnyAnimal.
const MaxAlign = erased.MaxAlign

// FoodReporter is the capability a type must implement to be held by an AnyAnimal.
type FoodReporter = erased.FoodReporter

// Destroyer can be implemented by a pointer to a FoodReporter. Destroy is called
// once when the AnyAnimal holding the value is destroyed or overwritten.
type Destroyer = erased.Destroyer

// AnyAnimal holds at most one FoodReporter value. The zero value is empty.
type AnyAnimal struct {
	noCopy noCopy

	storage erased.Storage

	// dispatch table of the type currently held in storage,
	// nil if the container is empty
	table *erased.Table
}

// New creates an AnyAnimal holding obj. New panics if a value of type T
// does not fit into an AnyAnimal, see Fits.
func New[T FoodReporter](obj T) AnyAnimal {
	table := tableFor[T]()

	return AnyAnimal{
		table:   table,
		storage: erased.Place(obj),
	}
}

// Replace destroys the value held by dst and places obj into it.
func Replace[T FoodReporter](dst *AnyAnimal, obj T) {
	table := tableFor[T]()

	dst.Destroy()

	erased.PlaceAt(&dst.storage, obj)
	dst.table = table
}

func tableFor[T FoodReporter]() *erased.Table {
	table := erased.TableOf[T]()

	if table.Type == reflect.TypeFor[*AnyAnimal]() {
		panic(ErrSelfType)
	}

	assert.NoError(table.Err)

	return table
}

// Move transfers the held value into a new AnyAnimal. The receiver is empty afterwards.
// Moving an empty AnyAnimal returns an empty AnyAnimal.
func (a *AnyAnimal) Move() AnyAnimal {
	table := a.table

	return AnyAnimal{
		table:   table,
		storage: a.release(),
	}
}

func (a *AnyAnimal) release() (storage erased.Storage) {
	if a.table == nil {
		return
	}

	a.table.Relocate(a.storage.Pointer(), storage.Pointer())
	a.table = nil

	return
}

// MoveFrom destroys the value held by the receiver and moves the value of
// src into it. src is empty afterwards. If src is empty, the receiver will
// be empty too. Moving an AnyAnimal into itself does nothing.
func (a *AnyAnimal) MoveFrom(src *AnyAnimal) {
	if a == src {
		return
	}

	a.Destroy()

	if src.table == nil {
		return
	}

	src.table.Relocate(src.storage.Pointer(), a.storage.Pointer())

	a.table = src.table
	src.table = nil
}

// Destroy ends the lifetime of the held value and leaves the AnyAnimal empty.
// Destroying an empty AnyAnimal does nothing.
func (a *AnyAnimal) Destroy() {
	if a.table == nil {
		return
	}

	a.table.Destroy(a.storage.Pointer())
	a.table = nil
}

// PrintFoodRequirements forwards to the PrintFoodRequirements method of the held value.
//
// Calling PrintFoodRequirements on an empty AnyAnimal violates its contract and panics.
// When built with the anyanimal_unchecked tag, the check is removed and the call
// fails with a nil pointer dereference instead.
func (a *AnyAnimal) PrintFoodRequirements() {
	assert.That(a.table != nil, "PrintFoodRequirements called on empty AnyAnimal")
	a.table.Invoke(a.storage.Pointer())
}

// TryPrintFoodRequirements is like PrintFoodRequirements, but returns ErrEmpty
// if the AnyAnimal does not hold a value.
func (a *AnyAnimal) TryPrintFoodRequirements() error {
	if a.table == nil {
		return ErrEmpty
	}

	a.table.Invoke(a.storage.Pointer())
	return nil
}

// IsEmpty returns true if the AnyAnimal does not hold a value.
func (a *AnyAnimal) IsEmpty() bool {
	return a.table == nil
}

// TypeName returns the name of the held type, or an empty string.
func (a *AnyAnimal) TypeName() string {
	if a.table == nil {
		return ""
	}

	return a.table.Name
}

// noCopy makes go vet report copies of the struct embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
