package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
)

// bingAdapter submits WAV audio to the Azure Speech REST endpoint.
type bingAdapter struct {
	client   *http.Client
	endpoint provider.EndpointConfig
	key      string
}

// bingResponse is the "simple" format result.
type bingResponse struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
}

func (a *bingAdapter) Transcribe(ctx context.Context, buf *audio.Buffer, lang language.Tag) (string, error) {
	u, err := url.Parse(a.endpoint.URL())
	if err != nil {
		return "", fmt.Errorf("parse endpoint url: %w", err)
	}
	q := u.Query()
	q.Set("language", string(lang))
	q.Set("format", "simple")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(buf.EncodeWAV()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", a.key)
	req.Header.Set("Content-Type", fmt.Sprintf("audio/wav; codecs=audio/pcm; samplerate=%d", buf.SampleRate))
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &TransportError{Provider: provider.Bing, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Provider: provider.Bing, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var parsed bingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &TransportError{Provider: provider.Bing, Err: fmt.Errorf("parse response: %w", err)}
	}

	switch parsed.RecognitionStatus {
	case "Success":
		if parsed.DisplayText == "" {
			return "", ErrUnintelligible
		}
		return parsed.DisplayText, nil
	case "NoMatch":
		return "", ErrUnintelligible
	case "InitialSilenceTimeout", "BabbleTimeout":
		return "", ErrNoSpeech
	default:
		return "", &TransportError{Provider: provider.Bing, Err: fmt.Errorf("recognition status %q", parsed.RecognitionStatus)}
	}
}
