package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
)

// openMP3 decodes an mp3 file and resamples it to the output rate.
// The returned closer releases the file.
func openMP3(path string, loop bool) (beep.Streamer, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}

	var s beep.Streamer = stream
	if loop {
		s = beep.Loop(-1, stream)
	}
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	return s, stream, nil
}

// musicSource returns the background loop: the configured mp3 when it
// loads, the synthesized loop otherwise.
func (p *Player) musicSource() (beep.Streamer, io.Closer) {
	if p.cfg.MusicPath != "" {
		s, c, err := openMP3(p.cfg.MusicPath, true)
		if err == nil {
			return s, c
		}
		p.logger.Debug("music asset unavailable, using synth", "err", err)
	}
	return NewMusicGenerator(sampleRate, musicBPM), nil
}

// stingerSource returns the game-over cue.
func (p *Player) stingerSource() (beep.Streamer, io.Closer) {
	if p.cfg.GameOverPath != "" {
		s, c, err := openMP3(p.cfg.GameOverPath, false)
		if err == nil {
			return s, c
		}
		p.logger.Debug("game over asset unavailable, using synth", "err", err)
	}
	g := NewStingerGenerator(sampleRate)
	return beep.Take(g.Len(), g), nil
}
