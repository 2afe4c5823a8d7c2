package assert

// That panics with the given message if cond is false. Assertions are compiled
// out when building with the anyanimal_unchecked tag.
func That(cond bool, msg string) {
	if Enabled && !cond {
		panic(msg)
	}
}

// NoError panics if err is not nil. Unlike That, NoError is always checked.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}
