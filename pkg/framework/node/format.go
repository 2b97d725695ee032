package node

import (
	"fmt"
	"math"
)

// Display formatting for parameter values, used by UI controls. Formatters
// take the denormalized value.

// FrequencyFormat formats a frequency in Hz, switching to kHz above 1000.
func FrequencyFormat(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// GainFormat formats a linear gain factor as decibels.
func GainFormat(gain float64) string {
	if gain <= 0 {
		return "-inf dB"
	}
	return fmt.Sprintf("%.1f dB", 20*math.Log10(gain))
}

func defaultFormat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Format renders a normalized parameter value for display: continuous
// parameters are denormalized and run through the kind's formatter,
// settings use their label table when one covers the value.
func (p ParamID) Format(norm float32) string {
	s := resolve(p.node.kind, int(p.idx))
	switch s.class {
	case slotParam:
		ps := &p.node.spec().params[s.pos]
		v := float64(ps.curve.Denorm(norm))
		if ps.format != nil {
			return ps.format(v)
		}
		return defaultFormat(v)
	case slotAtom:
		setting := int64(norm)
		if lbl, ok := p.SettingLabel(int(setting)); ok {
			return lbl
		}
		return fmt.Sprintf("%d", setting)
	}
	return ""
}
