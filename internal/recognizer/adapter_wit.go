package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
)

// witAPIVersion pins the Wit.ai API revision the adapter was written against.
const witAPIVersion = "20240304"

// witAdapter submits WAV audio to the Wit.ai speech endpoint. The account's
// language is configured server side; the tag is accepted for interface
// symmetry but not transmitted.
type witAdapter struct {
	client   *http.Client
	endpoint provider.EndpointConfig
	key      string
}

// witResponse is one chunk of the streamed JSON response. Wit emits partial
// transcripts followed by a final one.
type witResponse struct {
	Text    string `json:"text"`
	IsFinal bool   `json:"is_final"`
}

func (a *witAdapter) Transcribe(ctx context.Context, buf *audio.Buffer, _ language.Tag) (string, error) {
	url := fmt.Sprintf("%s?v=%s", a.endpoint.URL(), witAPIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf.EncodeWAV()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.key)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &TransportError{Provider: provider.Wit, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Provider: provider.Wit, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	// The body is a stream of JSON objects; the last complete one carries
	// the final transcript.
	dec := json.NewDecoder(resp.Body)
	var last witResponse
	for {
		var chunk witResponse
		if err := dec.Decode(&chunk); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", &TransportError{Provider: provider.Wit, Err: fmt.Errorf("parse response: %w", err)}
		}
		last = chunk
		if chunk.IsFinal {
			break
		}
	}

	if last.Text == "" {
		return "", ErrUnintelligible
	}
	return last.Text, nil
}
