// Package zoo contains the animals of the zoo. Every animal reports its
// daily food requirements and can be held by an anyanimal.AnyAnimal.
package zoo

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/oliverbestmann/anyanimal"
)

// Output receives the food requirements printed by the animals.
var Output io.Writer = os.Stdout

// Animal holds the state shared by all animals.
// Embed it and call PrintFoodRequirements to write the common prefix.
type Animal struct {
	name Name
}

func (a Animal) Name() string {
	return a.name.String()
}

// PrintFoodRequirements prints the prefix of the line, without the actual food.
func (a Animal) PrintFoodRequirements() {
	_, _ = fmt.Fprintf(Output, "%s needs: ", a.name)
}

type Elephant struct {
	Animal
	DailyKg uint16
}

func NewElephant() Elephant {
	return Elephant{Animal: Animal{name: NameOf("Elephant")}, DailyKg: 300}
}

func (e Elephant) PrintFoodRequirements() {
	e.Animal.PrintFoodRequirements()
	_, _ = fmt.Fprintf(Output, "hay, fruit, vegetables (%dkg/day)\n", e.DailyKg)
}

type Zebra struct {
	Animal
	DailyKg uint16
}

func NewZebra() Zebra {
	return Zebra{Animal: Animal{name: NameOf("Zebra")}, DailyKg: 15}
}

func (z Zebra) PrintFoodRequirements() {
	z.Animal.PrintFoodRequirements()
	_, _ = fmt.Fprintf(Output, "hay, grass (%dkg/day)\n", z.DailyKg)
}

type Lion struct {
	Animal
	DailyKg uint16
}

func NewLion() Lion {
	return Lion{Animal: Animal{name: NameOf("Lion")}, DailyKg: 11}
}

func (l Lion) PrintFoodRequirements() {
	l.Animal.PrintFoodRequirements()
	_, _ = fmt.Fprintf(Output, "meat (%dkg/day)\n", l.DailyKg)
}

type Penguin struct {
	Animal
	DailyKg uint16
}

func NewPenguin() Penguin {
	return Penguin{Animal: Animal{name: NameOf("Penguin")}, DailyKg: 2}
}

func (p Penguin) PrintFoodRequirements() {
	p.Animal.PrintFoodRequirements()
	_, _ = fmt.Fprintf(Output, "fish (%dkg/day)\n", p.DailyKg)
}

// a variant that grows beyond anyanimal.Capacity or anyanimal.MaxAlign
// overflows uintptr here and fails to compile.
const (
	_ = anyanimal.Capacity - unsafe.Sizeof(Elephant{})
	_ = anyanimal.Capacity - unsafe.Sizeof(Zebra{})
	_ = anyanimal.Capacity - unsafe.Sizeof(Lion{})
	_ = anyanimal.Capacity - unsafe.Sizeof(Penguin{})

	_ = anyanimal.MaxAlign - unsafe.Alignof(Elephant{})
	_ = anyanimal.MaxAlign - unsafe.Alignof(Zebra{})
	_ = anyanimal.MaxAlign - unsafe.Alignof(Lion{})
	_ = anyanimal.MaxAlign - unsafe.Alignof(Penguin{})
)

var _ = anyanimal.Validate[Elephant]()
var _ = anyanimal.Validate[Zebra]()
var _ = anyanimal.Validate[Lion]()
var _ = anyanimal.Validate[Penguin]()
