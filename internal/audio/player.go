// Package audio plays the runner's two cues: a background loop whose
// tempo follows the score and a one-shot game-over stinger.
//
// Every failure degrades to silence. A Player that could not open an
// output device still satisfies the cue interface and simply drops calls.
package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/adventure-squad/neon-runner/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)
	musicBPM   = 128
)

// ErrNoDevice is returned by Init when no audio output could be opened.
var ErrNoDevice = errors.New("audio: no output device")

// Player mixes the background loop and the stinger onto the speaker.
type Player struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	logger *log.Logger

	mixer   *beep.Mixer
	music   *beep.Ctrl
	tempo   *beep.Resampler
	closer  io.Closer
	rate    float64
	ready   bool
	lock    func()
	unlock  func()
	started bool
}

// NewPlayer creates a player. Nothing is played until Init succeeds.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
		rate:   1,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Init opens the speaker. On failure the player stays silent and the
// returned error wraps ErrNoDevice.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if !p.cfg.Enabled {
		p.logger.Debug("audio disabled by config")
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Debug("audio unavailable, running silent", "err", err)
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.started = true
	return nil
}

// Silent reports whether cues are being dropped.
func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.ready
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.stopMusicLocked()
	p.lock()
	p.mixer.Clear()
	p.unlock()
	if p.started {
		speaker.Clear()
		speaker.Close()
	}
	p.ready = false
}

// StartMusic restarts the background loop from the beginning at normal speed.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.stopMusicLocked()

	src, closer := p.musicSource()
	p.rate = 1
	p.tempo = beep.ResampleRatio(4, p.rate, src)
	p.music = &beep.Ctrl{Streamer: p.tempo}
	p.closer = closer

	p.lock()
	p.mixer.Add(p.withVolume(p.music))
	p.unlock()
}

// StopMusic silences the background loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopMusicLocked()
}

func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}
	p.lock()
	// A Ctrl without a streamer is dropped by the mixer on its next pass.
	p.music.Streamer = nil
	p.unlock()

	if p.closer != nil {
		if err := p.closer.Close(); err != nil {
			p.logger.Debug("closing music asset", "err", err)
		}
		p.closer = nil
	}
	p.music = nil
	p.tempo = nil
}

// SetMusicRate changes the loop's playback speed; 1 is normal.
func (p *Player) SetMusicRate(rate float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if rate <= 0 {
		return
	}
	p.rate = rate
	if p.tempo == nil {
		return
	}
	p.lock()
	p.tempo.SetRatio(rate)
	p.unlock()
}

// PlayGameOver plays the stinger once over whatever else is playing.
func (p *Player) PlayGameOver() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	src, closer := p.stingerSource()
	if closer != nil {
		src = beep.Seq(src, beep.Callback(func() {
			if err := closer.Close(); err != nil {
				p.logger.Debug("closing stinger asset", "err", err)
			}
		}))
	}

	p.lock()
	p.mixer.Add(p.withVolume(src))
	p.unlock()
}

// MusicRate returns the last requested playback rate.
func (p *Player) MusicRate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rate
}

// withVolume applies the configured gain. 0 is unity; each -1 halves it.
func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	if p.cfg.Volume == 0 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.cfg.Volume,
		Silent:   p.cfg.Volume <= -5,
	}
}
