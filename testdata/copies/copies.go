package copies

import "github.com/oliverbestmann/anyanimal"

type Goat struct {
	DailyKilograms uint8
}

func (Goat) PrintFoodRequirements() {}

var _ = anyanimal.Validate[Goat]()

func assign() {
	a := anyanimal.New(Goat{DailyKilograms: 3})
	b := a // want "assignment copies lock value to b"
	b.Destroy()
	a.Destroy()
}

func feed(a anyanimal.AnyAnimal) { // want "feed passes lock by value"
	a.PrintFoodRequirements()
}

func duplicate(r *anyanimal.Roster) int {
	c := *r // want "assignment copies lock value to c"
	return c.Len()
}

func handOver() {
	a := anyanimal.New(Goat{DailyKilograms: 3})
	b := a.Move()
	a.MoveFrom(&b)
	a.Destroy()
}

func fill(r *anyanimal.Roster) error {
	a := anyanimal.New(Goat{DailyKilograms: 3})
	return r.Push(&a)
}
