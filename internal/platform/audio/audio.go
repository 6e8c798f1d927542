// Package audio plays the game's sound cues as short synthesized tones.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Note frequencies in Hz.
const (
	NoteC5 = 523.25
	NoteE6 = 1318.51
	NoteA6 = 1760.00
)

// DefaultSampleRate is used when Options leaves it zero.
const DefaultSampleRate = beep.SampleRate(44100)

// Options configures a Player.
type Options struct {
	SampleRate beep.SampleRate
	Mute       bool
	Logger     *log.Logger
}

// Player turns cue events into tones on the speaker. Until Init succeeds,
// or when muted, every cue is silently dropped.
type Player struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	mute   bool
	ready  bool
	logger *log.Logger
	play   func(beep.Streamer) // speaker.Play, replaced in tests
}

// New creates a player. Call Init before the first cue.
func New(opts Options) *Player {
	sr := opts.SampleRate
	if sr == 0 {
		sr = DefaultSampleRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		sr:     sr,
		mute:   opts.Mute,
		logger: logger,
		play:   func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Init opens the speaker. A failure leaves the player silent; the game
// runs fine without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mute || p.ready {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

// FoodEaten plays a C5 for 100ms.
func (p *Player) FoodEaten() {
	p.emit("food", FoodCue(p.sr))
}

// PowerUpEaten plays a rising two-note chirp.
func (p *Player) PowerUpEaten() {
	p.emit("powerup", PowerUpCue(p.sr))
}

func (p *Player) emit(name string, s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.mute || s == nil {
		return
	}
	p.logger.Debug("cue", "name", name)
	p.play(s)
}

// FoodCue is the streamer played when food is eaten.
func FoodCue(sr beep.SampleRate) beep.Streamer {
	return Tone(sr, NoteC5, 100*time.Millisecond)
}

// PowerUpCue is the streamer played when the green apple is eaten.
func PowerUpCue(sr beep.SampleRate) beep.Streamer {
	first := Tone(sr, NoteE6, 60*time.Millisecond)
	second := Tone(sr, NoteA6, 90*time.Millisecond)
	if first == nil || second == nil {
		return nil
	}
	return beep.Seq(first, second)
}

// Tone returns a sine wave of the given frequency lasting d, at half
// volume. Returns nil when the frequency cannot be synthesized at sr.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(d), sine),
		Base:     2,
		Volume:   -1,
	}
}
