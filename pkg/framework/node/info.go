package node

// Info is the kind-level introspection object: port and atom names, help
// text and counts for UI layout. It is stateless metadata, independent of
// any running instance, and cheap to reconstruct from a NodeID at any time.
type Info struct {
	id   NodeID
	spec *kindSpec
}

// InfoFromNodeID returns the Info for a node's kind.
func InfoFromNodeID(id NodeID) Info {
	return Info{id: id, spec: id.spec()}
}

// InfoFromString returns the Info for a kind name; unknown names yield the
// Nop placeholder Info.
func InfoFromString(name string) Info {
	return InfoFromNodeID(FromString(name))
}

// ID returns the NodeID this Info was created from.
func (i Info) ID() NodeID { return i.id }

// InName returns the name of the idx-th addressable input: continuous
// parameters first, then atoms.
func (i Info) InName(idx int) (string, bool) {
	if idx < 0 {
		return "", false
	}
	if idx < len(i.spec.params) {
		return i.spec.params[idx].name, true
	}
	idx -= len(i.spec.params)
	if idx < len(i.spec.atoms) {
		return i.spec.atoms[idx].name, true
	}
	return "", false
}

// AtName returns the name of the idx-th atom.
func (i Info) AtName(idx int) (string, bool) {
	if idx < 0 || idx >= len(i.spec.atoms) {
		return "", false
	}
	return i.spec.atoms[idx].name, true
}

// OutName returns the name of the idx-th output port.
func (i Info) OutName(idx int) (string, bool) {
	if idx < 0 || idx >= len(i.spec.outs) {
		return "", false
	}
	return i.spec.outs[idx].name, true
}

// InHelp returns the help text of the idx-th addressable input, continuous
// parameters first, then atoms.
func (i Info) InHelp(idx int) (string, bool) {
	if idx < 0 {
		return "", false
	}
	if idx < len(i.spec.params) {
		return i.spec.params[idx].help, true
	}
	idx -= len(i.spec.params)
	if idx < len(i.spec.atoms) {
		return i.spec.atoms[idx].help, true
	}
	return "", false
}

// OutHelp returns the help text of the idx-th output port.
func (i Info) OutHelp(idx int) (string, bool) {
	if idx < 0 || idx >= len(i.spec.outs) {
		return "", false
	}
	return i.spec.outs[idx].help, true
}

// Norm maps a denormalized value through the curve of the idx-th continuous
// parameter. Returns 0 for out-of-range indices.
func (i Info) Norm(idx int, x float32) float32 {
	if idx < 0 || idx >= len(i.spec.params) {
		return 0.0
	}
	return i.spec.params[idx].curve.Norm(x)
}

// Denorm maps a normalized value through the curve of the idx-th continuous
// parameter. Returns 0 for out-of-range indices.
func (i Info) Denorm(idx int, x float32) float32 {
	if idx < 0 || idx >= len(i.spec.params) {
		return 0.0
	}
	return i.spec.params[idx].curve.Denorm(x)
}

// InCount returns the number of continuous parameters.
func (i Info) InCount() int { return len(i.spec.params) }

// AtCount returns the number of atoms.
func (i Info) AtCount() int { return len(i.spec.atoms) }

// OutCount returns the number of output ports.
func (i Info) OutCount() int { return len(i.spec.outs) }
