package anyanimal

import (
	"reflect"

	"github.com/oliverbestmann/anyanimal/internal/erased"
)

// Validate should be called to verify that values of type T can be held by an AnyAnimal.
//
//	type Lion struct {
//	   DailyKg uint16
//	}
//
//	var _ = anyanimal.Validate[Lion]()
//
// This rejects types that are too large or contain pointers when the package
// is initialized, before any AnyAnimal is created.
func Validate[T FoodReporter]() struct{} {
	if err := Fits[T](); err != nil {
		panic(err)
	}

	return struct{}{}
}

// Fits returns an error describing why a value of type T can not be held by
// an AnyAnimal, or nil if it can.
func Fits[T FoodReporter]() error {
	table := erased.TableOf[T]()

	if table.Type == reflect.TypeFor[*AnyAnimal]() {
		return ErrSelfType
	}

	return table.Err
}
