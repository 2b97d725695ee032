// Package node defines the closed registry of DSP node kinds: their
// parameter descriptors, the NodeID/ParamID addressing scheme external
// layers use to read and write parameters without knowing node internals,
// and the uniform processing contract the graph router drives once per
// audio block.
package node

import (
	"github.com/justyntemme/modular/pkg/dsp/block"
	"github.com/justyntemme/modular/pkg/framework/atom"
	"github.com/justyntemme/modular/pkg/framework/debug"
)

// AudioContext is the host-callback abstraction a node processes against.
// It supplies the frame count of the current block and the physical output
// write function. This core only consumes it; the host owns it.
type AudioContext interface {
	// Frames returns the number of frames in the current block,
	// at most block.BlockSize.
	Frames() int
	// Output writes one sample to a physical output channel.
	Output(ch, frame int, v float32)
}

// DspNode is the uniform execution contract every node kind implements.
// A node moves Uninitialized -> Reset -> Processing and re-enters Reset on
// an explicit Reset or sample-rate change; both are only applied between
// blocks.
type DspNode interface {
	// SetSampleRate updates internal per-sample increments. Must not
	// allocate.
	SetSampleRate(srate float32)

	// Reset restores internal continuous state (phases, filter memory) to
	// initial values. Configuration values are not touched.
	Reset()

	// Process runs one audio block. atoms are the un-smoothed
	// configuration values; params are smoothed parameter buffers;
	// inputs may be overwritten by upstream node outputs; outputs are
	// this node's buffers to fill. The node writes one representative
	// value per block into its feedback slot for metering. Process must
	// not allocate, lock or block.
	Process(ctx AudioContext, atoms []atom.Value, params, inputs, outputs []block.Buf,
		feedback []*block.AtomicFloat)
}

// Node holds one graph slot: either the Nop placeholder or a live DspNode
// instance owning its internal state.
type Node struct {
	kind Kind
	dsp  DspNode
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// ToID returns the NodeID of this node for a given instance number.
func (n *Node) ToID(instance int) NodeID {
	return NewID(n.kind, uint8(instance))
}

// Reset forwards to the live node; a placeholder does nothing.
func (n *Node) Reset() {
	if n.dsp != nil {
		n.dsp.Reset()
	}
}

// SetSampleRate forwards to the live node; a placeholder does nothing.
func (n *Node) SetSampleRate(srate float32) {
	if n.dsp != nil {
		n.dsp.SetSampleRate(srate)
	}
}

// Process forwards to the live node; a placeholder does nothing.
func (n *Node) Process(ctx AudioContext, atoms []atom.Value, params, inputs, outputs []block.Buf,
	feedback []*block.AtomicFloat) {
	if n.dsp != nil {
		n.dsp.Process(ctx, atoms, params, inputs, outputs, feedback)
	}
}

// Factory is the sole construction entry point for node instances. It pairs
// a fresh Node (zeroed internal state) with the kind's Info. ok is false
// for the Nop placeholder and unknown kinds; the router simply does not
// place such a node.
func Factory(id NodeID) (Node, Info, bool) {
	spec := id.spec()
	if spec.newDsp == nil {
		return Node{}, Info{}, false
	}

	debug.Debug("node factory: %s", id)

	return Node{kind: id.kind, dsp: spec.newDsp()}, InfoFromNodeID(id), true
}
