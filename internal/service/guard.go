package service

import "sync/atomic"

// guard is the cooperative in-flight check behind submit actions: one
// pending submission at a time, a concurrent second attempt is
// refused. It is not a server-enforced uniqueness constraint.
type guard struct {
	busy atomic.Bool
}

// begin claims the guard, reporting false when a submission is
// already pending.
func (g *guard) begin() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *guard) end() {
	g.busy.Store(false)
}
