package main

// speakerSink plays back the one-bit beeper samples a frame produced.
type speakerSink interface {
	Play(samples []bool)
}
