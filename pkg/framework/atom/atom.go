// Package atom provides the discrete, non-smoothed configuration values a
// node carries alongside its continuously smoothed parameters: strings,
// micro sample snippets, shared audio sample references, integer settings
// and plain scalar params.
package atom

// MicroSampleLen is the fixed length of the inline micro sample variant.
const MicroSampleLen = 8

// Kind tags the active variant of a Value.
type Kind uint8

const (
	// KindStr is UTF-8 text.
	KindStr Kind = iota
	// KindMicroSample is an inline 8-sample snippet.
	KindMicroSample
	// KindAudioSample is a named reference to a shared, possibly not yet
	// loaded audio sample.
	KindAudioSample
	// KindSetting is a discrete signed integer setting.
	KindSetting
	// KindParam is a scalar parameter value.
	KindParam
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindStr:
		return "str"
	case KindMicroSample:
		return "micro_sample"
	case KindAudioSample:
		return "audio_sample"
	case KindSetting:
		return "setting"
	case KindParam:
		return "param"
	default:
		return "unknown"
	}
}

// Sample is a shared audio sample. Values referencing the same Sample alias
// one allocation; Data stays nil until a loader fills it in.
type Sample struct {
	Name string
	Data []float32
}

// Value is a tagged configuration value. The control layer replaces a node's
// Values wholesale; they are never mutated in place. The zero Value is an
// empty string.
type Value struct {
	kind    Kind
	str     string
	micro   [MicroSampleLen]float32
	sample  *Sample
	setting int64
	param   float32
}

// Str returns a text value.
func Str(s string) Value {
	return Value{kind: KindStr, str: s}
}

// Micro returns an inline micro sample value.
func Micro(m [MicroSampleLen]float32) Value {
	return Value{kind: KindMicroSample, micro: m}
}

// Audio returns a loaded shared audio sample reference.
func Audio(name string, data []float32) Value {
	return Value{kind: KindAudioSample, sample: &Sample{Name: name, Data: data}}
}

// AudioUnloaded returns an audio sample reference whose data has not been
// loaded yet.
func AudioUnloaded(name string) Value {
	return Value{kind: KindAudioSample, sample: &Sample{Name: name}}
}

// Setting returns a discrete integer setting.
func Setting(i int64) Value {
	return Value{kind: KindSetting, setting: i}
}

// Param returns a scalar param value.
func Param(f float32) Value {
	return Value{kind: KindParam, param: f}
}

// Kind returns the active variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// S returns the text of a Str value, or "" for any other variant.
func (v Value) S() string {
	if v.kind != KindStr {
		return ""
	}
	return v.str
}

// MicroSample returns the inline snippet of a MicroSample value, or zeros
// for any other variant.
func (v Value) MicroSample() [MicroSampleLen]float32 {
	if v.kind != KindMicroSample {
		return [MicroSampleLen]float32{}
	}
	return v.micro
}

// AudioSample returns the shared sample of an AudioSample value, or nil.
func (v Value) AudioSample() *Sample {
	if v.kind != KindAudioSample {
		return nil
	}
	return v.sample
}

// I projects the value onto an integer. Setting and Param convert; every
// other variant yields 0 rather than signaling the mismatch.
func (v Value) I() int64 {
	switch v.kind {
	case KindSetting:
		return v.setting
	case KindParam:
		return int64(v.param)
	default:
		return 0
	}
}

// F projects the value onto a float. Setting and Param convert; every other
// variant yields 0.
func (v Value) F() float32 {
	switch v.kind {
	case KindSetting:
		return float32(v.setting)
	case KindParam:
		return v.param
	default:
		return 0.0
	}
}

// IsContinuous reports whether the value is the smoothed Param variant.
func (v Value) IsContinuous() bool {
	return v.kind == KindParam
}

// DefaultOf returns the zero/empty value of the same variant. Cross-variant
// defaults are never produced.
func (v Value) DefaultOf() Value {
	switch v.kind {
	case KindStr:
		return Str("")
	case KindMicroSample:
		return Micro([MicroSampleLen]float32{})
	case KindAudioSample:
		return AudioUnloaded("")
	case KindSetting:
		return Setting(0)
	default:
		return Param(0.0)
	}
}
