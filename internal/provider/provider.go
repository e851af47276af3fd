// Package provider defines the closed set of speech-to-text backends and the
// static metadata needed to dispatch to them.
package provider

import "fmt"

// ID identifies a speech-to-text backend.
type ID string

const (
	Google   ID = "google"
	Sphinx   ID = "sphinx"
	Wit      ID = "wit"
	Bing     ID = "bing"
	Houndify ID = "houndify"
)

// CredentialRequirement describes what a provider needs before a request can be made.
type CredentialRequirement int

const (
	// CredentialsNone - the provider works without any credentials.
	CredentialsNone CredentialRequirement = iota
	// CredentialsAPIKey - the provider needs a single API key.
	CredentialsAPIKey
	// CredentialsKeyPair - the provider needs a client id and a client key.
	CredentialsKeyPair
)

// Spec is the immutable record describing one provider.
type Spec struct {
	ID          ID
	Label       string
	Credentials CredentialRequirement
	// EnvVars lists the environment variables holding the provider's
	// credentials, in the order (key) or (client id, client key).
	EnvVars []string
}

// Environment variable names for provider credentials.
const (
	EnvWitKey            = "WIT_AI_KEY"
	EnvBingKey           = "BING_KEY"
	EnvHoundifyClientID  = "HOUNDIFY_CLIENT_ID"
	EnvHoundifyClientKey = "HOUNDIFY_CLIENT_KEY"
)

// specs is the fixed provider table. Order matches the UI selection order.
var specs = []Spec{
	{ID: Google, Label: "Google Web Speech API", Credentials: CredentialsNone},
	{ID: Sphinx, Label: "Sphinx", Credentials: CredentialsNone},
	{ID: Wit, Label: "Wit.ai", Credentials: CredentialsAPIKey, EnvVars: []string{EnvWitKey}},
	{ID: Bing, Label: "Microsoft Bing Voice Recognition", Credentials: CredentialsAPIKey, EnvVars: []string{EnvBingKey}},
	{ID: Houndify, Label: "Houndify", Credentials: CredentialsKeyPair, EnvVars: []string{EnvHoundifyClientID, EnvHoundifyClientKey}},
}

var byID map[ID]Spec

func init() {
	byID = make(map[ID]Spec, len(specs))
	for _, s := range specs {
		byID[s.ID] = s
	}
}

// GetSpec returns the spec for the given provider ID.
//
// The provider set is closed and shared with the UI layer, so an unknown ID is
// a programming error and panics rather than returning a recoverable failure.
func GetSpec(id ID) Spec {
	s, ok := byID[id]
	if !ok {
		panic(fmt.Sprintf("provider: unknown provider %q", id))
	}
	return s
}

// IsValid reports whether id names a known provider.
func IsValid(id ID) bool {
	_, ok := byID[id]
	return ok
}

// List returns all provider specs in selection order.
func List() []Spec {
	result := make([]Spec, len(specs))
	copy(result, specs)
	return result
}

// IDs returns all provider IDs in selection order.
func IDs() []ID {
	ids := make([]ID, len(specs))
	for i, s := range specs {
		ids[i] = s.ID
	}
	return ids
}

// SupportsLanguage reports whether the provider accepts a language tag.
// Sphinx runs a local English model and ignores the tag.
func SupportsLanguage(id ID) bool {
	return id != Sphinx
}
