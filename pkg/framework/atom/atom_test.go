package atom

import "testing"

func TestDefaultOfKeepsVariant(t *testing.T) {
	values := []Value{
		Str("hello"),
		Micro([MicroSampleLen]float32{1, 2, 3, 4, 5, 6, 7, 8}),
		Audio("kick.wav", []float32{0.1, 0.2}),
		AudioUnloaded("snare.wav"),
		Setting(7),
		Param(0.33),
	}

	for _, v := range values {
		def := v.DefaultOf()
		if def.Kind() != v.Kind() {
			t.Errorf("DefaultOf changed variant: %d -> %d", v.Kind(), def.Kind())
		}
	}

	if s := Str("x").DefaultOf().S(); s != "" {
		t.Errorf("Str default = %q, want empty", s)
	}
	if i := Setting(9).DefaultOf().I(); i != 0 {
		t.Errorf("Setting default = %d, want 0", i)
	}
	if f := Param(1.5).DefaultOf().F(); f != 0.0 {
		t.Errorf("Param default = %f, want 0", f)
	}
	if m := Micro([MicroSampleLen]float32{1}).DefaultOf().MicroSample(); m != ([MicroSampleLen]float32{}) {
		t.Errorf("Micro default not zeroed: %v", m)
	}

	def := Audio("kick.wav", []float32{1}).DefaultOf()
	if smp := def.AudioSample(); smp == nil || smp.Name != "" || smp.Data != nil {
		t.Errorf("Audio default = %+v, want unloaded empty reference", smp)
	}
}

func TestNumericProjection(t *testing.T) {
	tests := []struct {
		name  string
		v     Value
		wantI int64
		wantF float32
	}{
		{"setting", Setting(42), 42, 42.0},
		{"negative setting", Setting(-3), -3, -3.0},
		{"param", Param(1.7), 1, 1.7},
		{"str", Str("12"), 0, 0.0},
		{"micro", Micro([MicroSampleLen]float32{9}), 0, 0.0},
		{"audio", AudioUnloaded("a.wav"), 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.I(); got != tt.wantI {
				t.Errorf("I() = %d, want %d", got, tt.wantI)
			}
			if got := tt.v.F(); got != tt.wantF {
				t.Errorf("F() = %f, want %f", got, tt.wantF)
			}
		})
	}
}

func TestIsContinuous(t *testing.T) {
	if !Param(0.1).IsContinuous() {
		t.Error("Param should be continuous")
	}
	for _, v := range []Value{Str(""), Setting(1), Micro([MicroSampleLen]float32{}), AudioUnloaded("")} {
		if v.IsContinuous() {
			t.Errorf("variant %d should not be continuous", v.Kind())
		}
	}
}

func TestAudioSampleSharing(t *testing.T) {
	data := []float32{0.5, -0.5}
	a := Audio("loop.wav", data)
	b := a // copies share the same underlying sample

	if a.AudioSample() != b.AudioSample() {
		t.Error("copies should alias one shared sample")
	}
	if a.AudioSample().Name != "loop.wav" {
		t.Errorf("Name = %q", a.AudioSample().Name)
	}

	u := AudioUnloaded("later.wav")
	if u.AudioSample().Data != nil {
		t.Error("unloaded sample should have nil data")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindStr, "str"},
		{KindMicroSample, "micro_sample"},
		{KindAudioSample, "audio_sample"},
		{KindSetting, "setting"},
		{KindParam, "param"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var v Value
	if v.Kind() != KindStr || v.S() != "" {
		t.Errorf("zero Value should be an empty string, got kind %d", v.Kind())
	}
}
