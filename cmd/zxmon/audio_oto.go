//go:build !headless

package main

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// beeperSampleRate matches the accumulation rate Core uses when it turns
// T-states into speaker samples, so one Play() slice maps to one player
// buffer without resampling.
const beeperSampleRate = 882 * 50

// otoSink plays the one-bit beeper level through Oto by turning each
// bool sample into a square-wave float32 frame. It implements oto.Player's
// io.Reader source, pulling from a small ring buffer that Play() feeds.
type otoSink struct {
	ctx    *oto.Context
	player *oto.Player

	mu    sync.Mutex
	ring  []float32
	level float32
}

func newSpeakerSink() (speakerSink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   beeperSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	s := &otoSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// Play appends a frame's worth of samples to the ring buffer. It never
// blocks the core: samples beyond a generous cap are dropped rather than
// letting a slow audio backend stall emulation.
func (s *otoSink) Play(samples []bool) {
	const maxBuffered = beeperSampleRate // 1 second

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, on := range samples {
		if len(s.ring) >= maxBuffered {
			break
		}
		var v float32
		if on {
			v = 0.3
		} else {
			v = -0.3
		}
		s.ring = append(s.ring, v)
	}
}

// Read implements io.Reader for oto.Context.NewPlayer. It drains the ring
// buffer, holding the last level steady when the core hasn't produced new
// samples yet so playback doesn't glitch to silence between frames.
func (s *otoSink) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(p) / 4
	for i := 0; i < n; i++ {
		if len(s.ring) > 0 {
			s.level = s.ring[0]
			s.ring = s.ring[1:]
		}
		writeFloat32LE(p[i*4:i*4+4], s.level)
	}
	return n * 4, nil
}

func writeFloat32LE(b []byte, f float32) {
	bits := math.Float32bits(f)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
