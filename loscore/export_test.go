package loscore

import "testing"

// TraceOps records the name of every operation entered until t ends.
func TraceOps(t testing.TB) *[]string {
	t.Helper()
	var ops []string
	testHookEnter = func(op string) { ops = append(ops, op) }
	t.Cleanup(func() { testHookEnter = nil })
	return &ops
}
