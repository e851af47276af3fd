// Package pipeline runs one transcription request end to end: audio source,
// optional conversion, provider dispatch and optional transcript polish.
package pipeline

import (
	"context"
	"log"

	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/capture"
	"github.com/voxscribe/voxscribe/internal/convert"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/polish"
	"github.com/voxscribe/voxscribe/internal/provider"
	"github.com/voxscribe/voxscribe/internal/recognizer"
)

// Recorder captures one utterance from the microphone.
type Recorder interface {
	Capture(ctx context.Context) (*audio.Buffer, error)
}

// Converter decodes uploaded MP3 bytes into a PCM buffer.
type Converter interface {
	ToBuffer(ctx context.Context, mp3 []byte) (*audio.Buffer, error)
}

// Engine dispatches a buffer to a speech-to-text provider.
type Engine interface {
	Recognize(ctx context.Context, buf *audio.Buffer, id provider.ID, lang language.Tag) recognizer.Result
}

// Config selects the provider and language for this pipeline and carries the
// component configurations.
type Config struct {
	Provider   provider.ID
	Language   language.Tag
	Capture    capture.Config
	Recognizer recognizer.Config
	Polish     polish.Config
}

// Pipeline executes transcription requests one at a time; it holds no state
// between requests.
type Pipeline struct {
	config    Config
	recorder  Recorder
	converter Converter
	engine    Engine
	polisher  polish.Adapter // nil when polish is disabled
}

// New wires a pipeline with the real capture, convert and recognition
// components.
func New(cfg Config) (*Pipeline, error) {
	p := &Pipeline{
		config:    cfg,
		recorder:  capture.NewRecorder(cfg.Capture),
		converter: convert.New(),
		engine:    recognizer.New(cfg.Recognizer),
	}

	if cfg.Polish.Enabled {
		adapter, err := polish.NewAdapter(cfg.Polish)
		if err != nil {
			return nil, err
		}
		p.polisher = adapter
	}

	return p, nil
}

// NewWithComponents wires a pipeline from explicit components. Used by tests.
func NewWithComponents(cfg Config, rec Recorder, conv Converter, eng Engine, pol polish.Adapter) *Pipeline {
	return &Pipeline{config: cfg, recorder: rec, converter: conv, engine: eng, polisher: pol}
}

// TranscribeMicrophone records one utterance and recognizes it.
func (p *Pipeline) TranscribeMicrophone(ctx context.Context) recognizer.Result {
	buf, err := p.recorder.Capture(ctx)
	if err != nil {
		// capture failures precede dispatch, so no provider is attached
		return recognizer.Failed(recognizer.Normalize("", err))
	}
	return p.recognize(ctx, buf)
}

// TranscribeMP3 converts an uploaded MP3 and recognizes it.
func (p *Pipeline) TranscribeMP3(ctx context.Context, mp3 []byte) recognizer.Result {
	buf, err := p.converter.ToBuffer(ctx, mp3)
	if err != nil {
		return recognizer.Failed(recognizer.Normalize("", err))
	}
	return p.recognize(ctx, buf)
}

func (p *Pipeline) recognize(ctx context.Context, buf *audio.Buffer) recognizer.Result {
	result := p.engine.Recognize(ctx, buf, p.config.Provider, p.config.Language)
	if !result.Ok() || p.polisher == nil {
		return result
	}

	polished, err := p.polisher.Process(ctx, result.Text)
	if err != nil {
		// polish is best effort; a failure never turns a transcript into
		// an error
		log.Printf("pipeline: polish failed, keeping raw transcript: %v", err)
		return result
	}
	return recognizer.Success(polished)
}
