package anyanimal

import (
	"fmt"
	"iter"

	"github.com/oliverbestmann/anyanimal/internal/assert"
)

// RosterCapacity is the maximum number of animals in a Roster.
const RosterCapacity = 32

// Roster is an ordered, fixed capacity sequence of AnyAnimal values.
// All animals are stored inline, a Roster never allocates.
type Roster struct {
	noCopy noCopy

	animals [RosterCapacity]AnyAnimal
	len     int
}

// Append places obj at the end of the roster.
func Append[T FoodReporter](r *Roster, obj T) error {
	if r.len == RosterCapacity {
		return ErrRosterFull
	}

	Replace(&r.animals[r.len], obj)
	r.len += 1

	return nil
}

// Push moves the value held by animal to the end of the roster.
// animal is empty afterwards.
func (r *Roster) Push(animal *AnyAnimal) error {
	if animal.IsEmpty() {
		return ErrEmpty
	}

	if r.len == RosterCapacity {
		return ErrRosterFull
	}

	r.animals[r.len].MoveFrom(animal)
	r.len += 1

	return nil
}

func (r *Roster) Len() int {
	return r.len
}

// At returns the animal at the given index. Moving the value out of the
// returned AnyAnimal leaves an empty slot in the roster. PrintAll refuses to
// print a roster with empty slots.
func (r *Roster) At(idx int) *AnyAnimal {
	assert.That(idx >= 0 && idx < r.len, "roster index out of range")
	return &r.animals[idx]
}

// All iterates over the animals in the order they were added.
func (r *Roster) All() iter.Seq2[int, *AnyAnimal] {
	return func(yield func(int, *AnyAnimal) bool) {
		for idx := range r.len {
			if !yield(idx, &r.animals[idx]) {
				return
			}
		}
	}
}

// PrintAll calls PrintFoodRequirements on all animals in order. Nothing is
// printed if any slot of the roster is empty.
func (r *Roster) PrintAll() error {
	for idx, animal := range r.All() {
		if animal.IsEmpty() {
			return fmt.Errorf("slot %d: %w", idx, ErrEmpty)
		}
	}

	for _, animal := range r.All() {
		animal.PrintFoodRequirements()
	}

	return nil
}

// Destroy destroys all animals in the roster, in order, and empties it.
func (r *Roster) Destroy() {
	for idx := range r.len {
		r.animals[idx].Destroy()
	}

	r.len = 0
}
