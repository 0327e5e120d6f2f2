//go:build !debug

package debug

// Assert does nothing unless the debug build tag is set.
func Assert(condition bool, message ...string) {}
