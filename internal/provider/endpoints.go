package provider

// EndpointConfig holds the base URL and path for a provider's HTTP API.
// Tests override these to point adapters at local servers.
type EndpointConfig struct {
	BaseURL string
	Path    string
}

// URL returns the full endpoint URL without query parameters.
func (e EndpointConfig) URL() string {
	return e.BaseURL + e.Path
}

// DefaultEndpoint returns the production endpoint for the given provider.
// Sphinx runs locally and has no endpoint.
func DefaultEndpoint(id ID) EndpointConfig {
	switch id {
	case Google:
		return EndpointConfig{BaseURL: "http://www.google.com", Path: "/speech-api/v2/recognize"}
	case Sphinx:
		return EndpointConfig{}
	case Wit:
		return EndpointConfig{BaseURL: "https://api.wit.ai", Path: "/speech"}
	case Bing:
		return EndpointConfig{BaseURL: "https://westus.stt.speech.microsoft.com", Path: "/speech/recognition/conversation/cognitiveservices/v1"}
	case Houndify:
		return EndpointConfig{BaseURL: "https://api.houndify.com", Path: "/v1/audio"}
	default:
		panic("provider: unknown provider " + string(id))
	}
}
