package node

import (
	"fmt"

	"github.com/justyntemme/modular/pkg/framework/atom"
)

// Kind enumerates the closed set of node types. The set is versioned with
// the binary; there is no run-time plugin loading.
type Kind uint8

const (
	// Nop is the placeholder kind for unallocated graph slots. It has no
	// parameters, atoms or outputs and its instance number is always 0.
	Nop Kind = iota
	// Amp is a signal amplifier/attenuator.
	Amp
	// Sin is a sine oscillator.
	Sin
	// Out is the physical output sink.
	Out

	kindCount
)

// UIType tags which widget family renders a kind.
type UIType uint8

const (
	UITypeGeneric UIType = iota
	UITypeLFO
	UITypeEnv
	UITypeOsc
)

// UICategory groups kinds for the UI palette.
type UICategory uint8

const (
	CategoryNone UICategory = iota
	CategoryOsc
	CategoryMod
	CategoryNtoM
	CategorySignal
	CategoryCV
	CategoryIOUtil
)

// NodeIDs calls fn with the NodeID of every kind in this category, in
// declaration order, skipping the first skip entries. Used to populate UI
// palettes.
func (c UICategory) NodeIDs(skip int, fn func(NodeID)) {
	for k := Kind(0); k < kindCount; k++ {
		if kindSpecs[k].category != c {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		fn(NodeID{kind: k})
	}
}

// NodeID identifies a node kind plus instance number. It is two bytes and
// freely copyable; external layers address nodes exclusively through it.
type NodeID struct {
	kind     Kind
	instance uint8
}

// NewID returns the NodeID for a kind and instance number. The Nop
// placeholder always has instance 0.
func NewID(k Kind, instance uint8) NodeID {
	if k >= kindCount {
		return NodeID{}
	}
	if k == Nop {
		return NodeID{}
	}
	return NodeID{kind: k, instance: instance}
}

// FromString resolves a kind name ("sin", "amp", ...) to instance 0 of that
// kind. Unknown names map to the Nop placeholder.
func FromString(name string) NodeID {
	if k, ok := kindsByName[name]; ok {
		return NodeID{kind: k}
	}
	return NodeID{}
}

func (id NodeID) spec() *kindSpec {
	return &kindSpecs[id.kind]
}

// Kind returns the node kind.
func (id NodeID) Kind() Kind { return id.kind }

// Name returns the kind name.
func (id NodeID) Name() string { return id.spec().name }

// Instance returns the instance number.
func (id NodeID) Instance() int { return int(id.instance) }

// ToInstance returns the same kind with a different instance number.
func (id NodeID) ToInstance(instance int) NodeID {
	return NewID(id.kind, uint8(instance))
}

// SameKind reports whether the two ids refer to the same kind, ignoring the
// instance number.
func (id NodeID) SameKind(other NodeID) bool {
	return id.kind == other.kind
}

// UIType returns the widget family tag of the kind.
func (id NodeID) UIType() UIType { return id.spec().uiType }

// UICategory returns the palette category of the kind.
func (id NodeID) UICategory() UICategory { return id.spec().category }

// GraphFunc returns a fresh graph-preview function for the kind, or nil if
// the kind does not provide one.
func (id NodeID) GraphFunc() GraphFunc {
	if fn := id.spec().graphFn; fn != nil {
		return fn()
	}
	return nil
}

func (id NodeID) String() string {
	if id.kind == Nop {
		return "nop"
	}
	return fmt.Sprintf("%s %d", id.spec().name, id.instance)
}

// ParamByIdx resolves an index from the shared continuous/atom namespace to
// a ParamID.
func (id NodeID) ParamByIdx(idx int) (ParamID, bool) {
	s := resolve(id.kind, idx)
	switch s.class {
	case slotParam:
		return ParamID{node: id, idx: uint8(idx), name: id.spec().params[s.pos].name}, true
	case slotAtom:
		return ParamID{node: id, idx: uint8(idx), name: id.spec().atoms[s.pos].name}, true
	}
	return ParamID{}, false
}

// InpParamByIdx resolves a continuous-only parameter index to a ParamID.
func (id NodeID) InpParamByIdx(idx int) (ParamID, bool) {
	params := id.spec().params
	if idx < 0 || idx >= len(params) {
		return ParamID{}, false
	}
	p := &params[idx]
	return ParamID{node: id, idx: p.idx, name: p.name}, true
}

// AtomParamByIdx resolves an atom-only index (relative to the kind's atom
// array) to the ParamID carrying the shared-namespace index.
func (id NodeID) AtomParamByIdx(idx int) (ParamID, bool) {
	atoms := id.spec().atoms
	if idx < 0 || idx >= len(atoms) {
		return ParamID{}, false
	}
	a := &atoms[idx]
	return ParamID{node: id, idx: a.idx, name: a.name}, true
}

// InpParam resolves a parameter or atom name to its ParamID.
func (id NodeID) InpParam(name string) (ParamID, bool) {
	for i := range id.spec().params {
		p := &id.spec().params[i]
		if p.name == name {
			return ParamID{node: id, idx: p.idx, name: p.name}, true
		}
	}
	for i := range id.spec().atoms {
		a := &id.spec().atoms[i]
		if a.name == name {
			return ParamID{node: id, idx: a.idx, name: a.name}, true
		}
	}
	return ParamID{}, false
}

// Inp resolves a continuous parameter name to its input index.
func (id NodeID) Inp(name string) (uint8, bool) {
	for i := range id.spec().params {
		p := &id.spec().params[i]
		if p.name == name {
			return p.idx, true
		}
	}
	return 0, false
}

// Out resolves an output port name to its output index.
func (id NodeID) Out(name string) (uint8, bool) {
	for i := range id.spec().outs {
		o := &id.spec().outs[i]
		if o.name == name {
			return o.idx, true
		}
	}
	return 0, false
}

// ParamID addresses one parameter or atom of one node instance. It is only
// ever produced by NodeID lookups, which guarantees the index is valid for
// the kind.
type ParamID struct {
	node NodeID
	idx  uint8
	name string
}

// NodeID returns the addressed node.
func (p ParamID) NodeID() NodeID { return p.node }

// Inp returns the shared-namespace index of the parameter.
func (p ParamID) Inp() uint8 { return p.idx }

// Name returns the parameter name.
func (p ParamID) Name() string { return p.name }

// IsAtom reports whether the index belongs to the node's atom array rather
// than the smoothed parameter array. This is O(1): the split is resolved
// from the kind tables built at start-up.
func (p ParamID) IsAtom() bool {
	return resolve(p.node.kind, int(p.idx)).class == slotAtom
}

// ParamMinMax returns the declared denormalized range of a continuous
// parameter. ok is false for atoms.
func (p ParamID) ParamMinMax() (min, max float32, ok bool) {
	s := resolve(p.node.kind, int(p.idx))
	if s.class != slotParam {
		return 0, 0, false
	}
	ps := &p.node.spec().params[s.pos]
	return ps.min, ps.max, true
}

// SettingMinMax returns the allowed integer range of an atom setting. ok is
// false for continuous parameters.
func (p ParamID) SettingMinMax() (min, max int64, ok bool) {
	s := resolve(p.node.kind, int(p.idx))
	if s.class != slotAtom {
		return 0, 0, false
	}
	as := &p.node.spec().atoms[s.pos]
	return as.min, as.max, true
}

// SettingLabel returns the display label for a setting value, if the atom
// declares a label table that covers it.
func (p ParamID) SettingLabel(lblIdx int) (string, bool) {
	s := resolve(p.node.kind, int(p.idx))
	if s.class != slotAtom {
		return "", false
	}
	labels := p.node.spec().atoms[s.pos].labels
	if lblIdx < 0 || lblIdx >= len(labels) {
		return "", false
	}
	return labels[lblIdx], true
}

// AsAtomDef returns the factory-default configuration value for this
// address: the declared atom default for atoms, the normalized parameter
// default wrapped in a Param value for continuous parameters.
func (p ParamID) AsAtomDef() atom.Value {
	s := resolve(p.node.kind, int(p.idx))
	switch s.class {
	case slotParam:
		return atom.Param(p.NormDef())
	case slotAtom:
		return p.node.spec().atoms[s.pos].def
	}
	return atom.Param(0.0)
}

// NormDef returns the normalized default of a continuous parameter, 0 for
// anything else.
func (p ParamID) NormDef() float32 {
	s := resolve(p.node.kind, int(p.idx))
	if s.class != slotParam {
		return 0.0
	}
	ps := &p.node.spec().params[s.pos]
	return ps.curve.Norm(ps.def)
}

// Norm maps a denormalized value through the parameter's curve. Returns 0
// for atoms.
func (p ParamID) Norm(v float32) float32 {
	s := resolve(p.node.kind, int(p.idx))
	if s.class != slotParam {
		return 0.0
	}
	return p.node.spec().params[s.pos].curve.Norm(v)
}

// Denorm maps a normalized value back into the parameter's unit range.
// Returns 0 for atoms.
func (p ParamID) Denorm(v float32) float32 {
	s := resolve(p.node.kind, int(p.idx))
	if s.class != slotParam {
		return 0.0
	}
	return p.node.spec().params[s.pos].curve.Denorm(v)
}
