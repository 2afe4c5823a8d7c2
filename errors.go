package anyanimal

import (
	"errors"

	"github.com/oliverbestmann/anyanimal/internal/erased"
)

var (
	ErrEmpty      = errors.New("AnyAnimal is empty")
	ErrSelfType   = errors.New("AnyAnimal can not hold an AnyAnimal")
	ErrRosterFull = errors.New("roster is full")

	ErrTooLarge    = erased.ErrTooLarge
	ErrOverAligned = erased.ErrOverAligned
	ErrHasPointers = erased.ErrHasPointers
)
