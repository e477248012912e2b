package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("sample %d is not finite: %v", total+i, v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise}

	for _, w := range waves {
		osc := NewOscillator(440, 50*time.Millisecond, w, rate)
		n, peak := drain(t, osc, rate.N(time.Second))

		if n != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d streamed %d samples, expected %d", w, n, rate.N(50*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d peak %f out of range", w, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d error: %v", w, osc.Err())
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, SampleRate)
	samples := make([][2]float64, 64)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1.0 && v != -1.0 {
			t.Fatalf("square sample %d = %f, expected ±1", i, v)
		}
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("streamed %d samples, expected 1000", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, expected silent start", samples[0][0])
	}
	if samples[500][0] != 1.0 {
		t.Errorf("sustain sample = %f, expected full level", samples[500][0])
	}
	if samples[999][0] > 0.02 {
		t.Errorf("last sample = %f, expected near silence", samples[999][0])
	}

	if n, ok := env.Stream(samples); n != 0 || ok {
		t.Errorf("exhausted envelope returned (%d, %v), expected (0, false)", n, ok)
	}
}

func TestEffectsAreBoundedAndFinite(t *testing.T) {
	sounds := map[string]func(beep.SampleRate) beep.Streamer{
		"fire":         FireSound,
		"hit":          HitSound,
		"shield-break": ShieldBreakSound,
	}

	for name, newSound := range sounds {
		t.Run(name, func(t *testing.T) {
			n, peak := drain(t, newSound(SampleRate), SampleRate.N(2*time.Second))
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
			if peak > 1.5 {
				t.Errorf("effect peak %f is too loud", peak)
			}
		})
	}
}

func TestMusicGeneratorIsEndless(t *testing.T) {
	g := NewMusicGenerator(SampleRate)
	buf := make([][2]float64, 1024)

	// Several bars worth of audio
	for i := 0; i < SampleRate.N(10*time.Second)/len(buf); i++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("music stopped at chunk %d", i)
		}
		for _, s := range buf {
			if math.Abs(s[0]) > 1 {
				t.Fatalf("music sample %f out of range", s[0])
			}
		}
	}
}

func TestUninitializedManagerIsSilentNoop(t *testing.T) {
	sm := NewSoundManager(150)
	if sm.Volume() != 100 {
		t.Errorf("Volume() = %d, expected clamp to 100", sm.Volume())
	}

	// None of these may touch the speaker before Initialize
	sm.PlayFire()
	sm.PlayHit()
	sm.PlayShieldBreak()
	sm.StartMusic()
	sm.StopMusic()
	sm.Cleanup()

	sm.SetVolume(0)
	if !sm.master.Silent {
		t.Error("volume 0 should silence the master")
	}
	sm.SetVolume(50)
	if sm.master.Silent || sm.master.Volume != -1 {
		t.Errorf("volume 50 should be half gain, got %f", sm.master.Volume)
	}
}

func TestNopSatisfiesPlayer(t *testing.T) {
	var p Player = Nop{}
	p.PlayFire()
	p.StartMusic()
	p.StopMusic()

	var _ Player = (*SoundManager)(nil)
}
