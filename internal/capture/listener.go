package capture

import (
	"bytes"
	"time"

	"github.com/voxscribe/voxscribe/internal/audio"
)

// listenState is the outcome of feeding one chunk into the listener.
type listenState int

const (
	listenContinue listenState = iota
	listenDone
	listenTimedOut
)

// listener is the energy gate: it waits for the RMS level to cross the
// speech threshold, collects audio while speech lasts, and ends the capture
// after trailing silence or the maximum duration. Time is derived from the
// amount of PCM fed in, not the wall clock, which keeps it deterministic.
type listener struct {
	config Config

	started  bool
	waited   time.Duration
	recorded time.Duration
	silent   time.Duration
	pcm      bytes.Buffer
}

func newListener(config Config) *listener {
	return &listener{config: config}
}

// feed consumes one chunk of s16le samples and advances the gate.
func (l *listener) feed(chunk []byte) listenState {
	chunkDur := l.chunkDuration(len(chunk))
	rms := audio.RMS(chunk)

	if !l.started {
		if rms >= l.config.EnergyThreshold {
			l.started = true
			l.pcm.Write(chunk)
			l.recorded += chunkDur
			return listenContinue
		}
		l.waited += chunkDur
		if l.waited >= l.config.SpeechTimeout {
			return listenTimedOut
		}
		return listenContinue
	}

	l.pcm.Write(chunk)
	l.recorded += chunkDur

	if rms < l.config.EnergyThreshold {
		l.silent += chunkDur
		if l.silent >= l.config.SilenceDuration {
			return listenDone
		}
	} else {
		l.silent = 0
	}

	if l.recorded >= l.config.MaxDuration {
		return listenDone
	}
	return listenContinue
}

func (l *listener) heardSpeech() bool {
	return l.started
}

// buffer returns the collected utterance.
func (l *listener) buffer() *audio.Buffer {
	return &audio.Buffer{
		PCM:        l.pcm.Bytes(),
		SampleRate: l.config.SampleRate,
		Channels:   l.config.Channels,
	}
}

func (l *listener) chunkDuration(n int) time.Duration {
	frameBytes := 2 * l.config.Channels
	frames := n / frameBytes
	return time.Duration(frames) * time.Second / time.Duration(l.config.SampleRate)
}
