// Package block provides the fixed-size sample buffer that carries signals
// between nodes of the processing graph, and the atomic feedback slots the
// real-time thread uses to report metering values.
package block

import "fmt"

// BlockSize is the fixed number of frames processed per audio block.
// Every Buf owns exactly this many samples.
const BlockSize = 128

// Buf is a processing buffer handle. Copies of a Buf are shallow: they alias
// the same backing block, so a Buf can be passed by value through the whole
// graph execution call chain without copying sample data.
//
// The zero value (and Null) is a detached handle: reads yield silence and
// writes are dropped, so unconnected ports need no special casing in node
// code.
type Buf struct {
	p *[BlockSize]float32
}

// New allocates a zero-filled block. Buffers are created once per port when
// a node is wired, never inside the audio callback.
func New() Buf {
	return Buf{p: new([BlockSize]float32)}
}

// Null returns the detached sentinel handle used for unconnected ports.
func Null() Buf {
	return Buf{}
}

// IsNull reports whether the handle is detached from any backing block.
func (b Buf) IsNull() bool {
	return b.p == nil
}

// Read returns the sample at idx. idx must be < BlockSize; a null buffer
// reads as silence.
func (b Buf) Read(idx int) float32 {
	if b.p == nil {
		return 0.0
	}
	return b.p[idx]
}

// Write stores v at idx. idx must be < BlockSize; writes to a null buffer
// are dropped.
func (b Buf) Write(idx int, v float32) {
	if b.p == nil {
		return
	}
	b.p[idx] = v
}

// WriteFrom bulk-copies up to len(src) samples into the start of the block.
func (b Buf) WriteFrom(src []float32) {
	if b.p == nil {
		return
	}
	copy(b.p[:], src)
}

// Fill sets every sample of the block to v.
func (b Buf) Fill(v float32) {
	if b.p == nil {
		return
	}
	for i := range b.p {
		b.p[i] = v
	}
}

// CopyTo snapshots the first n samples into dst without taking ownership.
// Monitoring code polls this off the real-time thread; the caller must
// tolerate reading a block that is about to be overwritten next cycle.
func (b Buf) CopyTo(n int, dst []float32) {
	if b.p == nil {
		for i := range dst[:n] {
			dst[i] = 0.0
		}
		return
	}
	copy(dst[:n], b.p[:n])
}

// Free releases this handle's reference to the backing block. It is
// idempotent and a no-op on a null buffer. Other handles aliasing the same
// block stay valid; the block itself is reclaimed once the last handle drops
// it.
func (b *Buf) Free() {
	b.p = nil
}

func (b Buf) String() string {
	if b.p == nil {
		return "Buf(null)"
	}
	return fmt.Sprintf("Buf(0: %f)", b.p[0])
}
