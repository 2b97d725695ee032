// Command modplay renders a small sine-through-amplifier patch and plays it
// on the default audio device. It exists to exercise the node registry and
// block pipeline end to end from a real host loop.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/justyntemme/modular/pkg/dsp/analysis"
	"github.com/justyntemme/modular/pkg/dsp/block"
	"github.com/justyntemme/modular/pkg/framework/atom"
	"github.com/justyntemme/modular/pkg/framework/debug"
	"github.com/justyntemme/modular/pkg/framework/monitor"
	"github.com/justyntemme/modular/pkg/framework/node"
	"github.com/justyntemme/modular/pkg/framework/param"
)

// renderCtx adapts one interleaved stereo block to the node processing
// contract.
type renderCtx struct {
	frames int
	buf    []float32
}

func (c *renderCtx) Frames() int { return c.frames }

func (c *renderCtx) Output(ch, frame int, v float32) {
	c.buf[frame*2+ch] = v
}

func main() {
	var (
		freq    = flag.Float64("freq", 440.0, "oscillator frequency in Hz")
		dur     = flag.Float64("dur", 2.0, "play duration in seconds")
		rate    = flag.Int("rate", 44100, "sample rate in Hz")
		gain    = flag.Float64("gain", 1.0, "linear gain (0..2)")
		mono    = flag.Bool("mono", false, "fan channel 1 out to both channels")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		debug.SetLevel(debug.LogLevelDebug)
	} else {
		debug.SetLevel(debug.LogLevelInfo)
	}

	if err := run(*freq, *dur, *rate, *gain, *mono); err != nil {
		debug.Error("%v", err)
		os.Exit(1)
	}
}

func run(freq, dur float64, rate int, gain float64, mono bool) error {
	sinID := node.FromString("sin")
	ampID := node.FromString("amp")
	outID := node.FromString("out")

	osc, sinInfo, ok := node.Factory(sinID)
	if !ok {
		return fmt.Errorf("cannot instantiate %s", sinID)
	}
	amp, _, ok := node.Factory(ampID)
	if !ok {
		return fmt.Errorf("cannot instantiate %s", ampID)
	}
	sink, _, ok := node.Factory(outID)
	if !ok {
		return fmt.Errorf("cannot instantiate %s", outID)
	}

	for _, n := range []*node.Node{&osc, &amp, &sink} {
		n.SetSampleRate(float32(rate))
		n.Reset()
	}

	// Control inputs are constant for the whole render, so the blocks are
	// filled once with normalized values.
	freqParam, _ := sinID.InpParam("freq")
	gainParam, _ := ampID.InpParam("gain")
	attParam, _ := ampID.InpParam("att")

	freqBuf := block.New()
	freqBuf.Fill(freqParam.Norm(float32(freq)))
	attBuf := block.New()
	attBuf.Fill(attParam.Norm(1.0))

	// Fade the gain in over a few milliseconds to avoid a start click.
	gainBuf := block.New()
	gainSmoother := param.NewSmoother(float32(rate), 10.0)
	gainSmoother.Reset(0.0)
	gainSmoother.Set(gainParam.Norm(float32(gain)))

	sinOut := block.New()
	ampOut := block.New()

	negAtt, _ := ampID.InpParam("neg_att")
	ampAtoms := []atom.Value{negAtt.AsAtomDef()}
	monoSetting := int64(0)
	if mono {
		monoSetting = 1
	}
	outAtoms := []atom.Value{atom.Setting(monoSetting)}

	fbSin := []*block.AtomicFloat{block.NewAtomicFloat(0.0)}
	fbAmp := []*block.AtomicFloat{block.NewAtomicFloat(0.0)}
	fbOut := []*block.AtomicFloat{block.NewAtomicFloat(0.0)}

	totalFrames := int(float64(rate) * dur)
	debug.Info("rendering %s at %s, %d frames",
		sinInfo.ID(), freqParam.Format(freqParam.Norm(float32(freq))), totalFrames)

	scope := monitor.NewScope(1, block.BlockSize)

	var pcm bytes.Buffer
	interleaved := make([]float32, 2*block.BlockSize)
	tail := make([]float32, 0, 4096)

	for rendered := 0; rendered < totalFrames; rendered += block.BlockSize {
		frames := block.BlockSize
		if left := totalFrames - rendered; left < frames {
			frames = left
		}
		ctx := &renderCtx{frames: frames, buf: interleaved}
		gainSmoother.NextBlock(gainBuf, frames)

		osc.Process(ctx, nil, nil,
			[]block.Buf{freqBuf}, []block.Buf{sinOut}, fbSin)
		amp.Process(ctx, ampAtoms, nil,
			[]block.Buf{sinOut, gainBuf, attBuf}, []block.Buf{ampOut}, fbAmp)
		sink.Process(ctx, outAtoms, nil,
			[]block.Buf{ampOut, ampOut}, nil, fbOut)

		scope.Feed(0, ampOut)

		for frame := 0; frame < frames; frame++ {
			tail = append(tail, interleaved[frame*2])
			if len(tail) > 4096 {
				tail = tail[1:]
			}
			for ch := 0; ch < 2; ch++ {
				var b [4]byte
				binary.LittleEndian.PutUint32(b[:],
					math.Float32bits(interleaved[frame*2+ch]))
				pcm.Write(b[:])
			}
		}
	}

	debug.Debug("%s", scope.FormatStats(0))
	peak, rms := scope.PeakRMS(0)
	debug.Debug("levels peak: %.3f rms: %.3f", peak, rms)
	debug.Debug("output feedback level: %f", fbOut[0].Get())
	reportPeak(tail, rate)

	return play(&pcm, rate, dur)
}

// reportPeak runs the rendered tail through the spectrum analyzer and logs
// the dominant frequency.
func reportPeak(tail []float32, rate int) {
	const fftSize = 4096
	if len(tail) < fftSize {
		return
	}

	spec, err := analysis.NewSpectrum(fftSize)
	if err != nil {
		debug.Warn("spectrum setup: %v", err)
		return
	}
	mags := spec.Analyze(tail[len(tail)-fftSize:])
	bin := analysis.PeakBin(mags)
	debug.Info("spectral peak near %.1f Hz",
		spec.BinFrequency(bin, float64(rate)))
}

func play(pcm *bytes.Buffer, rate int, dur float64) error {
	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(pcm)
	player.Play()

	deadline := time.Now().Add(time.Duration(dur*float64(time.Second)) + time.Second)
	for player.IsPlaying() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}
