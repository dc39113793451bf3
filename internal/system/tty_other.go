//go:build !linux

package system

// EnterGraphicsMode is a no-op without a Linux virtual terminal.
func EnterGraphicsMode(l logger) (restore func()) {
	report(l, "no virtual terminal, console mode unchanged", nil)
	return func() {}
}
