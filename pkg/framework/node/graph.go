package node

import (
	"github.com/justyntemme/modular/pkg/dsp"
	"github.com/justyntemme/modular/pkg/framework/atom"
)

// GraphAtomData gives a graph-preview function read access to the current
// configuration of the node it previews, without touching live audio.
type GraphAtomData interface {
	// Get returns the atom at a shared-namespace parameter index.
	Get(paramIdx int) (atom.Value, bool)
	// GetDenorm returns the denormalized value at a shared-namespace
	// parameter index.
	GetDenorm(paramIdx int) float32
}

// GraphFunc draws one point of a kind's preview curve: given the node's
// configuration, whether the node is active, and a phase x in [0, 1), it
// returns the curve value in [0, 1]. The UI samples it across x to render a
// preview without running live audio.
type GraphFunc func(data GraphAtomData, active bool, x float32) float32

// sinGraphFunc previews one sine cycle.
func sinGraphFunc() GraphFunc {
	return func(_ GraphAtomData, _ bool, x float32) float32 {
		return 0.5 + 0.5*dsp.FastSin(x*dsp.TwoPi)
	}
}
