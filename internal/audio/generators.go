package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// noteHz converts a semitone offset from A4 to a frequency.
func noteHz(semitones int) float64 {
	return 440 * math.Pow(2, float64(semitones)/12)
}

// MusicGenerator produces an endless synthwave loop: a kick on every beat,
// a pulsing bass and an arpeggio over a four-chord progression.
type MusicGenerator struct {
	sr      beep.SampleRate
	pos     int
	beat    int // samples per beat
	kickLen int
}

// progression holds the bass root of each bar as semitones from A4.
var progression = []int{-24, -28, -31, -26}

// arpeggio is played in sixteenths over the bar root.
var arpeggio = []int{12, 19, 24, 19}

// NewMusicGenerator creates the background loop at the given tempo.
func NewMusicGenerator(sr beep.SampleRate, bpm float64) *MusicGenerator {
	beat := sr.N(time.Duration(float64(time.Minute) / bpm))
	return &MusicGenerator{
		sr:      sr,
		beat:    max(beat, 1),
		kickLen: sr.N(90 * time.Millisecond),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	sixteenth := max(g.beat/4, 1)
	bar := g.beat * 4

	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		beatPos := g.pos % g.beat
		root := progression[(g.pos/bar)%len(progression)]

		kick := 0.0
		if beatPos < g.kickLen {
			env := 1 - float64(beatPos)/float64(g.kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*55*(1+2*env)*t)
		}

		// Bass pumps against the kick.
		pump := 0.4 + 0.6*float64(beatPos)/float64(g.beat)
		bass := 0.12 * pump * square(noteHz(root), t)

		step := (g.pos / sixteenth) % len(arpeggio)
		stepPos := float64(g.pos%sixteenth) / float64(sixteenth)
		lead := 0.06 * (1 - stepPos) * math.Sin(2*math.Pi*noteHz(root+arpeggio[step])*t)

		sample := kick + bass + lead
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}

// StingerGenerator plays a short falling phrase for game over.
type StingerGenerator struct {
	sr      beep.SampleRate
	pos     int
	noteLen int
	notes   []int
}

// NewStingerGenerator creates the game-over cue. It ends on its own.
func NewStingerGenerator(sr beep.SampleRate) *StingerGenerator {
	return &StingerGenerator{
		sr:      sr,
		noteLen: sr.N(220 * time.Millisecond),
		notes:   []int{3, -2, -6, -9, -21},
	}
}

// Len returns the stinger length in samples.
func (g *StingerGenerator) Len() int {
	return g.noteLen * len(g.notes)
}

func (g *StingerGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.Len()
	for i := range samples {
		if g.pos >= total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		note := g.notes[g.pos/g.noteLen]
		notePos := float64(g.pos%g.noteLen) / float64(g.noteLen)

		env := math.Exp(-3 * notePos)
		if g.pos/g.noteLen == len(g.notes)-1 {
			env = 1 - notePos
		}
		sample := 0.25 * env * (0.7*square(noteHz(note), t) + 0.3*math.Sin(2*math.Pi*noteHz(note-12)*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StingerGenerator) Err() error {
	return nil
}

// square is a soft square wave in [-1, 1].
func square(freq, t float64) float64 {
	return math.Tanh(4 * math.Sin(2*math.Pi*freq*t))
}
