package nodeid

import (
	"math"
	"sync/atomic"

	"github.com/c360/semstreams-opcua/errors"
)

// Allocator hands out numeric identifier values from a single monotonic
// sequence shared across namespaces. It is safe for concurrent use and never
// returns the same value twice.
type Allocator struct {
	next atomic.Uint64
}

// NewAllocator creates an allocator whose first value is first.
func NewAllocator(first uint32) *Allocator {
	a := &Allocator{}
	a.next.Store(uint64(first))
	return a
}

// Next returns a fresh numeric node identifier in the given namespace.
// Once every uint32 value has been handed out it fails with
// errors.ErrAllocatorExhausted instead of wrapping around.
func (a *Allocator) Next(namespace uint16) (NodeID, error) {
	v := a.next.Add(1) - 1
	if v > math.MaxUint32 {
		return NodeID{}, errors.WrapFatal(errors.ErrAllocatorExhausted, "Allocator", "Next", "allocate numeric value")
	}
	return NewNumeric(namespace, uint32(v)), nil
}

// Peek returns the value the next call to Next would try to hand out.
func (a *Allocator) Peek() uint64 {
	return a.next.Load()
}

var defaultAllocator = NewAllocator(1)

// DefaultAllocator returns the process-wide allocator, seeded at 1.
func DefaultAllocator() *Allocator {
	return defaultAllocator
}

// NextNumeric allocates from the process-wide allocator. It does not check
// whether the value is already used by identifiers created elsewhere.
func NextNumeric(namespace uint16) (NodeID, error) {
	return defaultAllocator.Next(namespace)
}
