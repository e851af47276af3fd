// Package recognizer dispatches audio buffers to speech-to-text providers and
// folds every backend outcome into a uniform result.
package recognizer

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
)

// Credentials holds the provider secrets passed in at construction time.
// Empty fields fall back to the process environment at call time.
type Credentials struct {
	WitKey            string
	BingKey           string
	HoundifyClientID  string
	HoundifyClientKey string
}

// CredentialsFromEnv reads all provider secrets from the environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		WitKey:            os.Getenv(provider.EnvWitKey),
		BingKey:           os.Getenv(provider.EnvBingKey),
		HoundifyClientID:  os.Getenv(provider.EnvHoundifyClientID),
		HoundifyClientKey: os.Getenv(provider.EnvHoundifyClientKey),
	}
}

// Config holds recognizer construction parameters.
type Config struct {
	Credentials Credentials
	// Endpoints overrides provider endpoints; unset providers use defaults.
	Endpoints map[provider.ID]provider.EndpointConfig
	// HTTPTimeout bounds every provider request. Zero means 30 seconds.
	HTTPTimeout time.Duration
}

// adapter is implemented once per provider backend.
type adapter interface {
	Transcribe(ctx context.Context, buf *audio.Buffer, lang language.Tag) (string, error)
}

// Recognizer dispatches recognition requests across the provider set.
type Recognizer struct {
	creds  Credentials
	client *http.Client
	config Config
}

// New creates a Recognizer with explicit credentials and endpoints.
func New(cfg Config) *Recognizer {
	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Recognizer{
		creds:  cfg.Credentials,
		client: &http.Client{Timeout: timeout},
		config: cfg,
	}
}

// Recognize submits the buffer to the given provider and returns the uniform
// result. The provider set is closed; an out-of-range id panics.
func (r *Recognizer) Recognize(ctx context.Context, buf *audio.Buffer, id provider.ID, lang language.Tag) Result {
	spec := provider.GetSpec(id)

	if err := buf.Validate(); err != nil {
		return Failed(Normalize(id, &DecodeError{Err: err}))
	}

	if failure := r.checkCredentials(spec); failure != nil {
		return Failed(failure)
	}

	start := time.Now()
	text, err := r.adapterFor(id).Transcribe(ctx, buf, lang)
	duration := time.Since(start)

	if err != nil {
		failure := Normalize(id, err)
		log.Printf("recognizer: %s failed after %v: %s (%s)", id, duration, failure.Message, failure.Kind)
		return Failed(failure)
	}

	if strings.TrimSpace(text) == "" {
		return Failed(Normalize(id, ErrUnintelligible))
	}

	log.Printf("recognizer: %s transcribed %d bytes in %v", id, len(buf.PCM), duration)
	return Success(text)
}

// checkCredentials fails fast before any network call when a required secret
// is absent, so the user never sees an opaque low-level error instead.
func (r *Recognizer) checkCredentials(spec provider.Spec) *Failure {
	switch spec.Credentials {
	case provider.CredentialsNone:
		return nil
	case provider.CredentialsAPIKey:
		if r.apiKeyFor(spec.ID) == "" {
			return missingCredentials(spec)
		}
		return nil
	case provider.CredentialsKeyPair:
		id, key := r.keyPairFor(spec.ID)
		if id == "" || key == "" {
			return missingCredentials(spec)
		}
		return nil
	default:
		return nil
	}
}

func missingCredentials(spec provider.Spec) *Failure {
	return &Failure{
		Kind:     KindMissingCredentials,
		Provider: spec.ID,
		Message: fmt.Sprintf("Missing credentials for %s. Set %s in your environment or config file.",
			spec.Label, strings.Join(spec.EnvVars, " and ")),
	}
}

// apiKeyFor resolves a single-key credential, falling back to the
// environment at call time. Keys are never cached or logged.
func (r *Recognizer) apiKeyFor(id provider.ID) string {
	switch id {
	case provider.Wit:
		if r.creds.WitKey != "" {
			return r.creds.WitKey
		}
		return os.Getenv(provider.EnvWitKey)
	case provider.Bing:
		if r.creds.BingKey != "" {
			return r.creds.BingKey
		}
		return os.Getenv(provider.EnvBingKey)
	default:
		return ""
	}
}

// keyPairFor resolves houndify's client id and key.
func (r *Recognizer) keyPairFor(id provider.ID) (string, string) {
	if id != provider.Houndify {
		return "", ""
	}
	clientID := r.creds.HoundifyClientID
	if clientID == "" {
		clientID = os.Getenv(provider.EnvHoundifyClientID)
	}
	clientKey := r.creds.HoundifyClientKey
	if clientKey == "" {
		clientKey = os.Getenv(provider.EnvHoundifyClientKey)
	}
	return clientID, clientKey
}

// adapterFor is the total dispatch mapping. The default branch is unreachable
// for IDs that pass provider.GetSpec and exists only to keep the switch
// exhaustive if the enumeration ever grows.
func (r *Recognizer) adapterFor(id provider.ID) adapter {
	switch id {
	case provider.Google:
		return &googleAdapter{client: r.client, endpoint: r.endpointFor(provider.Google)}
	case provider.Sphinx:
		return &sphinxAdapter{}
	case provider.Wit:
		return &witAdapter{client: r.client, endpoint: r.endpointFor(provider.Wit), key: r.apiKeyFor(provider.Wit)}
	case provider.Bing:
		return &bingAdapter{client: r.client, endpoint: r.endpointFor(provider.Bing), key: r.apiKeyFor(provider.Bing)}
	case provider.Houndify:
		clientID, clientKey := r.keyPairFor(provider.Houndify)
		return &houndifyAdapter{client: r.client, endpoint: r.endpointFor(provider.Houndify), clientID: clientID, clientKey: clientKey}
	default:
		panic(fmt.Sprintf("recognizer: no adapter for provider %q", id))
	}
}

func (r *Recognizer) endpointFor(id provider.ID) provider.EndpointConfig {
	if ep, ok := r.config.Endpoints[id]; ok {
		return ep
	}
	return provider.DefaultEndpoint(id)
}
