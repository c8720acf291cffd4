package archetype

import "golang.org/x/sync/semaphore"

// OperationGuard serializes apply and remove globally, across every
// character. The persistence layer is not transactional, so only one
// mutating operation may be in flight in the whole process; concurrent
// operations on different characters are also blocked.
type OperationGuard struct {
	sem *semaphore.Weighted
}

// NewOperationGuard creates a free guard
func NewOperationGuard() *OperationGuard {
	return &OperationGuard{sem: semaphore.NewWeighted(1)}
}

// TryAcquire takes the guard without blocking. A false return means another
// operation is in flight and the caller must report a busy outcome with no
// side effects.
func (g *OperationGuard) TryAcquire() bool {
	return g.sem.TryAcquire(1)
}

// Release frees the guard. Must run on every exit path; callers defer it
// immediately after a successful TryAcquire.
func (g *OperationGuard) Release() {
	g.sem.Release(1)
}
