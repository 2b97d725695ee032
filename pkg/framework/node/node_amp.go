package node

import (
	"github.com/justyntemme/modular/pkg/dsp/block"
	"github.com/justyntemme/modular/pkg/framework/atom"
)

// Port indices of the amp kind.
const (
	ampInpInp     = 0
	ampInpGain    = 1
	ampInpAtt     = 2
	ampAtomNegAtt = 0
	ampOutSig     = 0
)

// ampNode scales its input by a gain and an attenuation control. The
// neg_att atom decides how negative attenuation input is treated: Allow
// keeps the sign, inverting the signal; Clip silences it.
type ampNode struct{}

func newAmpNode() DspNode {
	return &ampNode{}
}

func (n *ampNode) SetSampleRate(_ float32) {}

func (n *ampNode) Reset() {}

func (n *ampNode) Process(ctx AudioContext, atoms []atom.Value, _, inputs, outputs []block.Buf,
	feedback []*block.AtomicFloat) {
	inp := inputs[ampInpInp]
	gain := inputs[ampInpGain]
	att := inputs[ampInpAtt]
	out := outputs[ampOutSig]

	allowNeg := atoms[ampAtomNegAtt].I() == 0

	var last float32
	for frame := 0; frame < ctx.Frames(); frame++ {
		a := att.Read(frame)

		var av float32
		if allowNeg {
			av = attCurve.Denorm(abs32(a))
			if a < 0 {
				av = -av
			}
		} else {
			if a < 0 {
				a = 0
			}
			av = attCurve.Denorm(a)
		}

		g := gainCurve.Denorm(gain.Read(frame))

		last = inp.Read(frame) * g * av
		out.Write(frame, last)
	}

	feedback[0].Set(last)
}
