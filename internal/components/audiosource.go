package components

import (
	"interact3d/internal/audio"
	"interact3d/internal/engine"
)

func init() {
	engine.RegisterComponent("AudioSource", func(decode engine.ComponentDecoder) (engine.Component, error) {
		a := NewAudioSource()
		def := struct {
			Volume float32 `yaml:"volume"`
		}{a.Volume}
		if err := decode(&def); err != nil {
			return nil, err
		}
		a.Volume = def.Volume
		return a, nil
	})
}

// Player is the subset of the audio manager an AudioSource needs.
type Player interface {
	PlayOneShot(name string, volume float32) bool
}

type globalPlayer struct{}

func (globalPlayer) PlayOneShot(name string, volume float32) bool {
	return audio.PlayOneShot(name, volume)
}

// AudioSource plays registered clips as fire-and-forget one-shots.
type AudioSource struct {
	engine.BaseComponent
	Volume float32
	Player Player
}

func NewAudioSource() *AudioSource {
	return &AudioSource{
		Volume: 1.0,
		Player: globalPlayer{},
	}
}

// PlayOneShot plays clip once at the source volume. Overlapping calls mix.
func (a *AudioSource) PlayOneShot(clip string) bool {
	if clip == "" || a.Player == nil {
		return false
	}
	return a.Player.PlayOneShot(clip, a.Volume)
}
