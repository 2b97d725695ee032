package node

// Curve is a normalize/denormalize function pair mapping between the
// UI-facing normalized knob range and a parameter's physical unit range.
// Different physical ranges need different perceptual spacing, so each
// parameter descriptor picks a curve family rather than a single formula.
type Curve struct {
	// Norm maps a denormalized value into the normalized range.
	Norm func(x float32) float32
	// Denorm is the inverse of Norm.
	Denorm func(n float32) float32
}

// linCurve spaces values evenly across [min, max].
func linCurve(min, max float32) Curve {
	return Curve{
		Norm: func(x float32) float32 {
			return abs32((x - min) / (max - min))
		},
		Denorm: func(n float32) float32 {
			return min*(1.0-n) + max*n
		},
	}
}

// expCurve applies square-law shaping, giving low values finer control
// resolution. Used for gain and attenuation style ranges.
func expCurve(min, max float32) Curve {
	return Curve{
		Norm: func(x float32) float32 {
			return sqrtf(abs32((x - min) / (max - min)))
		},
		Denorm: func(n float32) float32 {
			x := n * n
			return min*(1.0-x) + max*x
		},
	}
}

// exp4Curve applies quartic shaping for an even steeper low end.
func exp4Curve(min, max float32) Curve {
	return Curve{
		Norm: func(x float32) float32 {
			return sqrtf(sqrtf(abs32((x - min) / (max - min))))
		},
		Denorm: func(n float32) float32 {
			x := n * n * n * n
			return min*(1.0-x) + max*x
		},
	}
}

// pitchCurve maps the normalized range logarithmically onto frequency,
// centered on 440 Hz with ten octaves per unit, so +-1.0 spans +-10
// octaves.
var pitchCurve = Curve{
	Norm: func(x float32) float32 {
		return log2f(max32(x, 0.01)/440.0) / 10.0
	},
	Denorm: func(n float32) float32 {
		return 440.0 * exp2f(n*10.0)
	},
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
