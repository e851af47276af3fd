// Package audio defines the decoded audio buffer exchanged between the
// capture/convert front and the recognition backends.
package audio

import (
	"fmt"
	"math"
	"time"
)

// Buffer holds decoded 16-bit little-endian PCM samples ready for recognition.
// A buffer is produced per request and submitted to exactly one provider.
type Buffer struct {
	PCM        []byte
	SampleRate int
	Channels   int
}

// DefaultSampleRate is the rate every capture and conversion path produces.
// 16 kHz mono is what the speech backends expect.
const (
	DefaultSampleRate = 16000
	DefaultChannels   = 1
)

// New returns an empty buffer with the default speech format.
func New() *Buffer {
	return &Buffer{SampleRate: DefaultSampleRate, Channels: DefaultChannels}
}

// Duration returns the play time of the buffered audio.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 || b.Channels <= 0 {
		return 0
	}
	frames := len(b.PCM) / (2 * b.Channels)
	return time.Duration(frames) * time.Second / time.Duration(b.SampleRate)
}

// Validate checks that the buffer is well-formed s16le audio.
func (b *Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", b.SampleRate)
	}
	if b.Channels <= 0 {
		return fmt.Errorf("invalid channel count: %d", b.Channels)
	}
	if len(b.PCM)%2 != 0 {
		return fmt.Errorf("pcm payload not aligned to 16-bit samples: %d bytes", len(b.PCM))
	}
	return nil
}

// RMS computes the root-mean-square amplitude of a chunk of s16le samples,
// normalized to [0, 1]. Used by the capture energy gate.
func RMS(chunk []byte) float64 {
	if len(chunk) < 2 {
		return 0
	}
	var sum float64
	n := len(chunk) / 2
	for i := 0; i < n; i++ {
		sample := float64(int16(uint16(chunk[i*2]) | uint16(chunk[i*2+1])<<8))
		sum += sample * sample
	}
	return math.Sqrt(sum/float64(n)) / 32768.0
}
