package main

import (
	"bytes"
	"io"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

const SampleRate = 44100
const BytesPerSample = 4 // 16 bit stereo

const (
	SoundSlide  = "slide"
	SoundReject = "reject"
	SoundDeal   = "deal"
	SoundWin    = "win"
)

// SoundEffects holds the raw pcm of every clip, rendered at startup.
var SoundEffects map[string][]byte

var TheSoundManager struct {
	Context *oto.Context

	volume     float64
	prevVolume float64

	tmpPlayers map[string][]*Player

	contextReadyChan chan struct{}
	contextReady     bool
}

func InitSound() {
	sm := &TheSoundManager

	sm.volume = 1
	sm.prevVolume = 1

	contextOp := oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   time.Millisecond * 50,
	}

	var err error
	sm.Context, sm.contextReadyChan, err = oto.NewContext(&contextOp)

	if err != nil {
		ErrorLogger.Fatalf("couldn't initialize sound %v", err)
	}

	sm.tmpPlayers = make(map[string][]*Player)

	SoundEffects = map[string][]byte{
		SoundSlide:  renderSlideClip(),
		SoundReject: renderRejectClip(),
		SoundDeal:   renderDealClip(),
		SoundWin:    renderWinClip(),
	}
}

func UpdateSound() {
	sm := &TheSoundManager

	if !sm.contextReady {
		select {
		case <-sm.contextReadyChan:
			sm.contextReady = true
		default:
			// pass
		}
	}

	// change volumes
	if sm.prevVolume != sm.volume {
		for _, players := range sm.tmpPlayers {
			for _, player := range players {
				player.player.SetVolume(player.volume * sm.volume)
			}
		}
	}

	sm.prevVolume = sm.volume
}

func newPlayerInternal(audioBytes []byte) *Player {
	sm := &TheSoundManager

	player := new(Player)
	player.player = sm.Context.NewPlayer(bytes.NewReader(audioBytes))
	player.volume = 1

	const buffSizeTime = time.Second / 2
	buffSizeBytes := int(buffSizeTime) * SampleRate / int(time.Second) * BytesPerSample
	player.player.SetBufferSize(int(buffSizeBytes))

	return player
}

func GlobalVolume() float64 {
	sm := &TheSoundManager

	return sm.volume
}

func SetGlobalVolume(volume float64) {
	sm := &TheSoundManager
	sm.volume = Clamp(volume, 0, 1)
}

func IsSoundReady() bool {
	sm := &TheSoundManager
	return sm.contextReady
}

func PlaySoundBytes(sound string, volume float64) {
	if !IsSoundReady() {
		return
	}

	sm := &TheSoundManager

	for _, player := range sm.tmpPlayers[sound] {
		if !player.IsPlaying() {
			player.SetVolume(volume)
			player.Seek(0, io.SeekStart)
			player.Play()
			return
		}
	}

	// all players are busy, create new one
	tmpP := newPlayerInternal(SoundEffects[sound])
	tmpP.SetVolume(volume)
	tmpP.Play()

	sm.tmpPlayers[sound] = append(sm.tmpPlayers[sound], tmpP)
}

type Player struct {
	player *oto.Player
	volume float64
}

func (p *Player) IsPlaying() bool {
	return p.player.IsPlaying()
}

func (p *Player) Play() {
	p.player.Play()
}

func (p *Player) Seek(offset int64, whence int) int64 {
	pos, _ := p.player.Seek(offset, whence)
	return pos
}

func (p *Player) SetVolume(volume float64) {
	volume = Clamp(volume, 0, 1)
	p.volume = volume
	p.player.SetVolume(p.volume * GlobalVolume())
}

func (p *Player) Volume() float64 {
	return p.volume
}

// renderTone synthesizes one interleaved stereo tone. freq and amp take
// the normalized clip position, the short attack ramp keeps the start
// click free.
func renderTone(
	dur time.Duration,
	freq func(t float64) float64,
	amp func(t float64) float64,
) []byte {
	sampleCount := int(dur) * SampleRate / int(time.Second)
	buf := make([]byte, 0, sampleCount*BytesPerSample)

	phase := 0.0
	for i := 0; i < sampleCount; i++ {
		t := f64(i) / f64(sampleCount)
		phase += freq(t) * 2 * math.Pi / SampleRate

		env := amp(t) * Clamp(t*50, 0, 1)
		s := math.Sin(phase) * env

		v := int16(s * 0.6 * math.MaxInt16)
		lo, hi := byte(v), byte(uint16(v)>>8)
		buf = append(buf, lo, hi, lo, hi)
	}

	return buf
}

func fadeOut(t float64) float64 {
	return (1 - t) * (1 - t)
}

func renderSlideClip() []byte {
	return renderTone(
		time.Millisecond*70,
		func(t float64) float64 { return 340 - 80*t },
		fadeOut,
	)
}

func renderRejectClip() []byte {
	return renderTone(
		time.Millisecond*110,
		func(t float64) float64 { return 140 - 30*t },
		fadeOut,
	)
}

func renderDealClip() []byte {
	return renderTone(
		time.Millisecond*90,
		func(t float64) float64 { return 520 + 180*t },
		fadeOut,
	)
}

func renderWinClip() []byte {
	notes := []struct {
		freq float64
		dur  time.Duration
	}{
		{523.25, time.Millisecond * 110}, // C5
		{659.25, time.Millisecond * 110}, // E5
		{783.99, time.Millisecond * 110}, // G5
		{1046.50, time.Millisecond * 260}, // C6
	}

	var buf []byte
	for _, note := range notes {
		buf = append(buf, renderTone(
			note.dur,
			func(t float64) float64 { return note.freq },
			fadeOut,
		)...)
	}

	return buf
}
