package block

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a lock-free float32 cell. Nodes store one representative
// value per block (typically the last output sample) and the UI thread polls
// it for LED/phase style metering. This is the only synchronization
// primitive allowed in the audio hot path.
type AtomicFloat struct {
	bits uint32
}

// NewAtomicFloat returns a slot holding v.
func NewAtomicFloat(v float32) *AtomicFloat {
	a := &AtomicFloat{}
	a.Set(v)
	return a
}

// Set stores v.
func (a *AtomicFloat) Set(v float32) {
	atomic.StoreUint32(&a.bits, math.Float32bits(v))
}

// Get returns the most recently stored value.
func (a *AtomicFloat) Get() float32 {
	return math.Float32frombits(atomic.LoadUint32(&a.bits))
}
