package node

import (
	"github.com/justyntemme/modular/pkg/dsp/block"
	"github.com/justyntemme/modular/pkg/framework/atom"
)

// Port indices of the out kind.
const (
	outInpCh1   = 0
	outInpCh2   = 1
	outAtomMono = 0
)

// outNode is the physical output sink. The mono atom selects whether ch1 is
// fanned out to both physical channels or ch1/ch2 go out separately.
type outNode struct{}

func newOutNode() DspNode {
	return &outNode{}
}

func (n *outNode) SetSampleRate(_ float32) {}

func (n *outNode) Reset() {}

func (n *outNode) Process(ctx AudioContext, atoms []atom.Value, _, inputs, _ []block.Buf,
	feedback []*block.AtomicFloat) {
	in1 := inputs[outInpCh1]

	if atoms[outAtomMono].I() > 0 {
		for frame := 0; frame < ctx.Frames(); frame++ {
			v := in1.Read(frame)
			ctx.Output(0, frame, v)
			ctx.Output(1, frame, v)
		}
	} else {
		in2 := inputs[outInpCh2]

		for frame := 0; frame < ctx.Frames(); frame++ {
			ctx.Output(0, frame, in1.Read(frame))
			ctx.Output(1, frame, in2.Read(frame))
		}
	}

	if frames := ctx.Frames(); frames > 0 {
		feedback[0].Set(in1.Read(frames - 1))
	}
}
