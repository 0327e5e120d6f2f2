//go:build !debug

package debug

// Debug reports whether the binary was built with the debug tag. Expensive
// invariant checks (see Assert) compile to no-ops without it.
const Debug = false
