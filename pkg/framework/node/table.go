package node

import "github.com/justyntemme/modular/pkg/framework/atom"

// The tables below are the registry: one spec per kind, fixed at compile
// time and read-only after package init. Continuous params and discrete
// atoms share one index namespace as seen by ParamID, but are stored in two
// separate arrays; the slot tables resolve an index to its array in O(1).

// paramSpec describes one continuous (smoothed) parameter of a kind.
type paramSpec struct {
	idx   uint8 // index in the shared param/atom namespace
	name  string
	curve Curve
	min   float32
	max   float32
	def   float32 // stored denormalized
	help  string
	// format renders the denormalized value for display; nil uses the
	// default numeric formatting.
	format func(v float64) string
}

// atomSpec describes one discrete atom of a kind.
type atomSpec struct {
	idx     uint8 // index in the shared param/atom namespace
	atomIdx uint8 // index into the node's atom array
	name    string
	def     atom.Value
	min     int64
	max     int64
	labels  []string
	help    string
}

// outSpec describes one output port of a kind.
type outSpec struct {
	idx  uint8
	name string
	help string
}

type kindSpec struct {
	name     string
	uiType   UIType
	category UICategory
	params   []paramSpec
	atoms    []atomSpec
	outs     []outSpec
	newDsp   func() DspNode // nil for the Nop placeholder
	graphFn  func() GraphFunc
}

// idCurve passes values through unchanged: the linear family with a unit
// range, without the absolute value so bipolar control signals keep their
// sign.
var idCurve = Curve{
	Norm:   func(x float32) float32 { return x },
	Denorm: func(n float32) float32 { return n },
}

var (
	gainCurve = expCurve(0.0, 2.0)
	attCurve  = expCurve(0.0, 1.0)
)

var kindSpecs = [kindCount]kindSpec{
	Nop: {
		name:     "nop",
		uiType:   UITypeGeneric,
		category: CategoryNone,
	},
	Amp: {
		name:     "amp",
		uiType:   UITypeGeneric,
		category: CategorySignal,
		params: []paramSpec{
			{idx: 0, name: "inp", curve: idCurve, min: -1.0, max: 1.0, def: 0.0,
				help: "Amp inp\nSignal input.\nRange: (-1..1)"},
			{idx: 1, name: "gain", curve: gainCurve, min: 0.0, max: 1.0, def: 1.0,
				help:   "Amp gain\nGain input, scales the signal up to twice its level.\nRange: (0..1)",
				format: GainFormat},
			{idx: 2, name: "att", curve: attCurve, min: 0.0, max: 1.0, def: 1.0,
				help:   "Amp att\nAttenuation input, scales the signal down.\nRange: (0..1)",
				format: GainFormat},
		},
		atoms: []atomSpec{
			{idx: 3, atomIdx: 0, name: "neg_att", def: atom.Setting(1), min: 0, max: 1,
				labels: labelsAmpNegAtt[:],
				help:   "Amp neg_att\nHow negative attenuation input is handled:\ninverted or clipped to zero."},
		},
		outs: []outSpec{
			{idx: 0, name: "sig", help: "Amp sig\nAmplified signal output.\nRange: (-1..1)"},
		},
		newDsp: newAmpNode,
	},
	Sin: {
		name:     "sin",
		uiType:   UITypeGeneric,
		category: CategoryOsc,
		params: []paramSpec{
			{idx: 0, name: "freq", curve: pitchCurve, min: -1.0, max: 1.0, def: 440.0,
				help:   "Sin freq\nFrequency of the oscillator.\nRange: (-1..1)",
				format: FrequencyFormat},
		},
		outs: []outSpec{
			{idx: 0, name: "sig", help: "Sin sig\nOscillator signal output.\nRange: (-1..1)"},
		},
		newDsp:  newSinNode,
		graphFn: sinGraphFunc,
	},
	Out: {
		name:     "out",
		uiType:   UITypeGeneric,
		category: CategoryIOUtil,
		params: []paramSpec{
			{idx: 0, name: "ch1", curve: idCurve, min: -1.0, max: 1.0, def: 0.0,
				help: "Out ch1\nAudio channel 1 (left).\nRange: (-1..1)"},
			{idx: 1, name: "ch2", curve: idCurve, min: -1.0, max: 1.0, def: 0.0,
				help: "Out ch2\nAudio channel 2 (right).\nRange: (-1..1)"},
		},
		atoms: []atomSpec{
			{idx: 2, atomIdx: 0, name: "mono", def: atom.Setting(0), min: 0, max: 1,
				labels: labelsOutMono[:],
				help:   "Out mono\nIf set to 'Mono', ch1 is sent to both output channels."},
		},
		newDsp: newOutNode,
	},
}

// Setting label tables, indexed by the setting value.
var (
	labelsAmpNegAtt = [2]string{"Allow", "Clip"}
	labelsOutMono   = [2]string{"Stereo", "Mono"}
)

// slot classification for the shared index namespace.
type slotClass uint8

const (
	slotInvalid slotClass = iota
	slotParam
	slotAtom
)

type slot struct {
	class slotClass
	pos   uint8 // position inside the param or atom array
}

// kindSlots[kind][idx] resolves a shared-namespace index in O(1). Built
// once at package init and read-only afterwards.
var kindSlots [kindCount][]slot

var kindsByName = make(map[string]Kind, kindCount)

func resolve(k Kind, idx int) slot {
	if k >= kindCount {
		return slot{}
	}
	slots := kindSlots[k]
	if idx < 0 || idx >= len(slots) {
		return slot{}
	}
	return slots[idx]
}

func init() {
	for k := Kind(0); k < kindCount; k++ {
		spec := &kindSpecs[k]
		kindsByName[spec.name] = k

		maxIdx := -1
		for i := range spec.params {
			if int(spec.params[i].idx) > maxIdx {
				maxIdx = int(spec.params[i].idx)
			}
		}
		for i := range spec.atoms {
			if int(spec.atoms[i].idx) > maxIdx {
				maxIdx = int(spec.atoms[i].idx)
			}
		}

		slots := make([]slot, maxIdx+1)
		for i := range spec.params {
			slots[spec.params[i].idx] = slot{class: slotParam, pos: uint8(i)}
		}
		for i := range spec.atoms {
			slots[spec.atoms[i].idx] = slot{class: slotAtom, pos: uint8(i)}
		}
		kindSlots[k] = slots
	}
}
