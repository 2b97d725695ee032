package node

import (
	"math"

	"github.com/justyntemme/modular/pkg/dsp"
	"github.com/justyntemme/modular/pkg/dsp/block"
	"github.com/justyntemme/modular/pkg/framework/atom"
)

// Port indices of the sin kind.
const (
	sinInpFreq = 0
	sinOutSig  = 0
)

// sinNode is a sine oscillator. It integrates phase from the denormalized
// frequency input each frame and evaluates the fast sine approximation.
type sinNode struct {
	srate float32
	phase float32
}

func newSinNode() DspNode {
	return &sinNode{srate: 44100.0}
}

func (n *sinNode) SetSampleRate(srate float32) {
	n.srate = srate
}

func (n *sinNode) Reset() {
	n.phase = 0.0
}

func (n *sinNode) Process(ctx AudioContext, _ []atom.Value, _, inputs, outputs []block.Buf,
	feedback []*block.AtomicFloat) {
	out := outputs[sinOutSig]
	freq := inputs[sinInpFreq]
	isr := 1.0 / n.srate

	var last float32
	for frame := 0; frame < ctx.Frames(); frame++ {
		f := pitchCurve.Denorm(freq.Read(frame))

		last = dsp.FastSin(n.phase * dsp.TwoPi)
		out.Write(frame, last)

		n.phase += f * isr
		n.phase -= float32(math.Floor(float64(n.phase)))
	}

	feedback[0].Set(last)
}
