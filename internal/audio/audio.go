package audio

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	SampleRate = beep.SampleRate(44100)
)

var clipFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Manager owns decoded clips and mixes one-shot playback into a single
// streamer. The mixer is shared with the speaker goroutine once Init has run.
type Manager struct {
	mu      sync.Mutex
	clips   map[string]*beep.Buffer
	mixer   *beep.Mixer
	speaker bool
}

func NewManager() *Manager {
	return &Manager{
		clips: make(map[string]*beep.Buffer),
		mixer: &beep.Mixer{},
	}
}

var globalManager = NewManager()

// Init opens the output device and starts streaming the mixer.
func Init() error {
	return globalManager.Init()
}

// Close stops all playing clips.
func Close() {
	globalManager.Close()
}

// LoadClip decodes a WAV file and registers it under name.
func LoadClip(name, path string) error {
	return globalManager.LoadClip(name, path)
}

// SynthClip registers a synthesized tone under name.
func SynthClip(name string, freq float64, duration time.Duration, wave WaveType) {
	globalManager.SynthClip(name, freq, duration, wave)
}

// PlayOneShot plays a registered clip once. It reports false when the clip
// is unknown.
func PlayOneShot(name string, volume float32) bool {
	return globalManager.PlayOneShot(name, volume)
}

// HasClip reports whether a clip is registered under name.
func HasClip(name string) bool {
	return globalManager.HasClip(name)
}

// Playing returns the number of one-shots still mixing.
func Playing() int {
	return globalManager.Playing()
}

func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.speaker {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.speaker = true
	log.Printf("Audio: speaker ready (%d Hz)", SampleRate)
	return nil
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lockMixer()
	m.mixer.Clear()
	m.unlockMixer()
}

func (m *Manager) LoadClip(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open clip %s: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode clip %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(clipFormat)
	if format.SampleRate != SampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, SampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("read clip %s: %w", path, err)
	}

	m.mu.Lock()
	m.clips[name] = buf
	m.mu.Unlock()
	return nil
}

func (m *Manager) SynthClip(name string, freq float64, duration time.Duration, wave WaveType) {
	buf := beep.NewBuffer(clipFormat)
	buf.Append(NewTone(freq, duration, wave, SampleRate))

	m.mu.Lock()
	m.clips[name] = buf
	m.mu.Unlock()
}

func (m *Manager) HasClip(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.clips[name]
	return ok
}

func (m *Manager) PlayOneShot(name string, volume float32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf, ok := m.clips[name]
	if !ok {
		return false
	}

	s := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   gain(volume),
		Silent:   volume <= 0,
	}

	m.lockMixer()
	m.mixer.Add(s)
	m.unlockMixer()
	return true
}

// Playing returns the number of clips still in the mixer.
func (m *Manager) Playing() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lockMixer()
	defer m.unlockMixer()
	return m.mixer.Len()
}

func (m *Manager) lockMixer() {
	if m.speaker {
		speaker.Lock()
	}
}

func (m *Manager) unlockMixer() {
	if m.speaker {
		speaker.Unlock()
	}
}

// gain converts a linear volume (1 = unchanged) to a base-2 exponent.
func gain(volume float32) float64 {
	if volume <= 0 {
		return 0
	}
	return math.Log2(float64(volume))
}
