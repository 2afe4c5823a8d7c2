//go:build !anyanimal_unchecked

package anyanimal_test

import (
	"github.com/oliverbestmann/anyanimal"
	"github.com/oliverbestmann/anyanimal/zoo"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPrintFoodRequirements_Empty(t *testing.T) {
	out := captureOutput(t)

	var animal anyanimal.AnyAnimal

	require.PanicsWithValue(t, "PrintFoodRequirements called on empty AnyAnimal", func() {
		animal.PrintFoodRequirements()
	})

	moved := anyanimal.New(zoo.NewLion())
	_ = moved.Move()

	require.Panics(t, func() { moved.PrintFoodRequirements() })
	require.Empty(t, out.String())
}

func TestRoster_AtOutOfRange(t *testing.T) {
	var r anyanimal.Roster
	require.NoError(t, anyanimal.Append(&r, zoo.NewLion()))

	require.Panics(t, func() { r.At(1) })
	require.Panics(t, func() { r.At(-1) })
}
