package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output sample rate for every generated sound.
const SampleRate = beep.SampleRate(44100)

// Effect durations
const (
	fireDuration        = 90 * time.Millisecond
	hitDuration         = 140 * time.Millisecond
	shieldBreakDuration = 400 * time.Millisecond
	beatLength          = 500 * time.Millisecond // 120 BPM
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency slides from freq to endFreq
// over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly between two pitches.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		releaseStart := e.totalSamples - e.release
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// FireSound is a short downward zap.
func FireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1400, 500, fireDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, fireDuration, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.25)
}

// HitSound is a dull thump with a burst of noise.
func HitSound(rate beep.SampleRate) beep.Streamer {
	body := NewSweep(180, 60, hitDuration, WaveSine, rate)
	noise := NewOscillator(0, hitDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(body, 0.8), newVolume(noise, 0.3))
	return newVolume(NewEnvelope(mixed, hitDuration, 2*time.Millisecond, 110*time.Millisecond, rate), 0.6)
}

// ShieldBreakSound is a falling glassy crack.
func ShieldBreakSound(rate beep.SampleRate) beep.Streamer {
	ring := NewSweep(1800, 300, shieldBreakDuration, WaveSaw, rate)
	crack := NewOscillator(0, shieldBreakDuration/4, WaveNoise, rate)
	mixed := beep.Mix(newVolume(ring, 0.4), newVolume(crack, 0.5))
	return newVolume(NewEnvelope(mixed, shieldBreakDuration, time.Millisecond, 300*time.Millisecond, rate), 0.5)
}

// MusicGenerator is an endless background beat: a kick on every beat over
// a bass line that changes note each bar.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

// bassLine holds one note per bar, in Hz.
var bassLine = []float64{55, 55, 65.41, 49}

// NewMusicGenerator creates the background loop.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:   sr,
		beat: sr.N(beatLength),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(100 * time.Millisecond)
	for i := range samples {
		beatPos := g.pos % g.beat
		bar := (g.pos / (g.beat * 4)) % len(bassLine)
		t := float64(g.pos) / float64(g.sr)
		bt := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1.0 - float64(beatPos)/float64(kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+env)*bt)
		}
		bass := 0.12 * math.Sin(2*math.Pi*bassLine[bar]*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error { return nil }
