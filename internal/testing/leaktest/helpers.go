// Package leaktest wraps goleak with the ignore list shared by every package
// that starts long-lived background goroutines.
package leaktest

import (
	"testing"

	"go.uber.org/goleak"
)

// lruJanitor is the expiry goroutine started by every expirable.LRU. It runs
// for the life of the process and cannot be stopped.
const lruJanitor = "github.com/hashicorp/golang-lru/v2/expirable.NewLRU[...].func1"

// Options returns the goleak options used across the module's tests.
func Options(extra ...goleak.Option) []goleak.Option {
	opts := []goleak.Option{
		goleak.IgnoreAnyFunction(lruJanitor),
	}
	return append(opts, extra...)
}

// VerifyTestMain runs the package tests and fails if goroutines leaked.
func VerifyTestMain(m *testing.M, extra ...goleak.Option) {
	goleak.VerifyTestMain(m, Options(extra...)...)
}

// VerifyNone fails t if goroutines started since the test began are still
// running. Call it with defer at the top of a test.
func VerifyNone(t testing.TB, extra ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, Options(extra...)...)
}

// CheckNoGoroutineLeak runs fn and fails t if it left goroutines behind.
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	ignore := goleak.IgnoreCurrent()
	fn()
	goleak.VerifyNone(t, Options(ignore)...)
}
