//go:build !anyanimal_unchecked

package assert

// Enabled reports whether contract assertions are checked.
const Enabled = true
