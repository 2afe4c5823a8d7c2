package erased

import (
	"bytes"
	"fmt"
	"github.com/stretchr/testify/require"
	"reflect"
	"testing"
)

// output receives everything the test types print
var output bytes.Buffer

type Parrot struct {
	Seeds uint8
}

func (p Parrot) PrintFoodRequirements() {
	_, _ = fmt.Fprintf(&output, "Parrot needs: seeds (%dg/day)", p.Seeds)
}

// counters indexed by Tracked.Slot, a Tracked value can not hold
// a pointer to its counter.
var destroyed [8]int

type Tracked struct {
	Slot int
}

func (t Tracked) PrintFoodRequirements() {
	_, _ = fmt.Fprintf(&output, "Tracked %d", t.Slot)
}

func (t *Tracked) Destroy() {
	destroyed[t.Slot] += 1
}

type Hungry struct {
	Food string
}

func (h Hungry) PrintFoodRequirements() {
	output.WriteString(h.Food)
}

func printed(fn func()) string {
	output.Reset()
	fn()
	return output.String()
}

func TestTableOf_Identity(t *testing.T) {
	require.Same(t, TableOf[Parrot](), TableOf[Parrot]())
	require.Same(t, TableOf[Tracked](), TableOf[Tracked]())
	require.NotSame(t, TableOf[Parrot](), TableOf[Tracked]())

	require.NotEqual(t, TableOf[Parrot]().Id, TableOf[Tracked]().Id)
}

func TestTableOf_Metadata(t *testing.T) {
	table := TableOf[Parrot]()

	require.Equal(t, "erased.Parrot", table.Name)
	require.Equal(t, "erased.Parrot", table.String())
	require.Equal(t, reflect.TypeFor[Parrot](), table.Type)
	require.EqualValues(t, 1, table.Size)
	require.EqualValues(t, 1, table.Align)
	require.NoError(t, table.Err)
}

func TestTableOf_RejectsPointers(t *testing.T) {
	table := TableOf[Hungry]()
	require.ErrorIs(t, table.Err, ErrHasPointers)
	require.Equal(t, reflect.TypeFor[Hungry](), table.Type)
}

func TestTable_Invoke(t *testing.T) {
	parrot := Parrot{Seeds: 20}
	direct := printed(parrot.PrintFoodRequirements)

	storage := Place(parrot)
	erased := printed(func() { TableOf[Parrot]().Invoke(storage.Pointer()) })

	require.Equal(t, "Parrot needs: seeds (20g/day)", erased)
	require.Equal(t, direct, erased)
}

func TestTable_Relocate(t *testing.T) {
	destroyed = [8]int{}

	table := TableOf[Tracked]()

	var src, dst Storage
	PlaceAt(&src, Tracked{Slot: 3})

	table.Relocate(src.Pointer(), dst.Pointer())

	require.Equal(t, Tracked{Slot: 3}, *(*Tracked)(dst.Pointer()))
	require.Equal(t, Tracked{}, *(*Tracked)(src.Pointer()))

	// relocating does not end the lifetime of the value
	require.Equal(t, 0, destroyed[3])

	require.Equal(t, "Tracked 3", printed(func() { table.Invoke(dst.Pointer()) }))
}

func TestTable_Destroy(t *testing.T) {
	destroyed = [8]int{}

	table := TableOf[Tracked]()

	storage := Place(Tracked{Slot: 5})
	table.Destroy(storage.Pointer())

	require.Equal(t, 1, destroyed[5])
	require.Equal(t, Tracked{}, *(*Tracked)(storage.Pointer()))
}

func TestTable_DestroyWithoutHook(t *testing.T) {
	storage := Place(Parrot{Seeds: 7})
	TableOf[Parrot]().Destroy(storage.Pointer())

	require.Equal(t, Parrot{}, *(*Parrot)(storage.Pointer()))
}

func BenchmarkTableOf(b *testing.B) {
	for b.Loop() {
		_ = TableOf[Parrot]()
	}
}

func BenchmarkTable_Invoke(b *testing.B) {
	table := TableOf[Parrot]()
	storage := Place(Parrot{Seeds: 1})

	for b.Loop() {
		output.Reset()
		table.Invoke(storage.Pointer())
	}
}
