// Package audio plays the duel's sound effects and background music
// through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Player is what the game loop needs from an audio backend.
type Player interface {
	PlayFire()
	PlayHit()
	PlayShieldBreak()
	StartMusic()
	StopMusic()
}

// Nop is a Player that makes no sound. Used for muted and SSH sessions.
type Nop struct{}

func (Nop) PlayFire()        {}
func (Nop) PlayHit()         {}
func (Nop) PlayShieldBreak() {}
func (Nop) StartMusic()      {}
func (Nop) StopMusic()       {}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	volume      int // 0-100
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume (0-100).
func NewSoundManager(volume int) *SoundManager {
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, 1),
	}
	sm.applyVolume(volume)
	return sm
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	sm.music = nil
	speaker.Unlock()

	// beep has no speaker shutdown; an empty mixer plays silence
	sm.initialized = false
}

// Volume returns the current volume (0-100).
func (sm *SoundManager) Volume() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// SetVolume changes the master volume (0-100).
func (sm *SoundManager) SetVolume(volume int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.applyVolume(volume)
}

// applyVolume maps 0-100 onto the master gain. Callers hold the locks.
func (sm *SoundManager) applyVolume(volume int) {
	volume = max(0, min(100, volume))
	sm.volume = volume
	if volume == 0 {
		sm.master.Silent = true
		return
	}
	sm.master.Silent = false
	sm.master.Volume = math.Log2(float64(volume) / 100)
}

// PlayFire plays the shot sound.
func (sm *SoundManager) PlayFire() {
	sm.play(FireSound(SampleRate))
}

// PlayHit plays the hit sound.
func (sm *SoundManager) PlayHit() {
	sm.play(HitSound(SampleRate))
}

// PlayShieldBreak plays the shield-break sound.
func (sm *SoundManager) PlayShieldBreak() {
	sm.play(ShieldBreakSound(SampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartMusic starts or resumes the background loop.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	// If already created, just resume
	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(SampleRate), 0.5)}
	sm.mixer.Add(sm.music)
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}
