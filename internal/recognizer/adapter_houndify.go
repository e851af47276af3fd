package recognizer

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
)

// houndifyAdapter submits WAV audio to the Houndify voice endpoint using its
// HMAC request signing scheme.
type houndifyAdapter struct {
	client    *http.Client
	endpoint  provider.EndpointConfig
	clientID  string
	clientKey string
}

type houndifyResponse struct {
	Disambiguation struct {
		ChoiceData []struct {
			Transcription string `json:"Transcription"`
		} `json:"ChoiceData"`
	} `json:"Disambiguation"`
	AllResults []struct {
		WrittenResponse string `json:"WrittenResponse"`
	} `json:"AllResults"`
	ErrorMessage string `json:"ErrorMessage"`
}

func (a *houndifyAdapter) Transcribe(ctx context.Context, buf *audio.Buffer, lang language.Tag) (string, error) {
	requestID := uuid.NewString()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	signature, err := a.sign(requestID, timestamp)
	if err != nil {
		return "", &TransportError{Provider: provider.Houndify, Err: fmt.Errorf("sign request: %w", err)}
	}

	requestInfo, err := json.Marshal(map[string]any{
		"ClientID":                  a.clientID,
		"UserID":                    "voxscribe",
		"InputLanguageIETFTag":      string(lang),
		"PartialTranscriptsDesired": false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request info: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint.URL(), bytes.NewReader(buf.EncodeWAV()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Hound-Request-Authentication", a.clientID+";"+requestID)
	req.Header.Set("Hound-Client-Authentication", a.clientID+";"+timestamp+";"+signature)
	req.Header.Set("Hound-Request-Info", string(requestInfo))
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &TransportError{Provider: provider.Houndify, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Provider: provider.Houndify, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var parsed houndifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &TransportError{Provider: provider.Houndify, Err: fmt.Errorf("parse response: %w", err)}
	}
	if parsed.ErrorMessage != "" {
		return "", &TransportError{Provider: provider.Houndify, Err: fmt.Errorf("%s", parsed.ErrorMessage)}
	}

	if len(parsed.Disambiguation.ChoiceData) > 0 && parsed.Disambiguation.ChoiceData[0].Transcription != "" {
		return parsed.Disambiguation.ChoiceData[0].Transcription, nil
	}
	if len(parsed.AllResults) > 0 && parsed.AllResults[0].WrittenResponse != "" {
		return parsed.AllResults[0].WrittenResponse, nil
	}
	return "", ErrUnintelligible
}

// sign computes the per-request HMAC-SHA256 signature over
// "requestID;timestamp" using the base64url-decoded client key.
func (a *houndifyAdapter) sign(requestID, timestamp string) (string, error) {
	key, err := base64.URLEncoding.DecodeString(a.clientKey)
	if err != nil {
		// Keys issued without padding decode with the raw alphabet.
		key, err = base64.RawURLEncoding.DecodeString(a.clientKey)
		if err != nil {
			return "", fmt.Errorf("decode client key: %w", err)
		}
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(requestID + ";" + timestamp))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}
