package provider

import "testing"

func TestList(t *testing.T) {
	all := List()
	if len(all) != 5 {
		t.Fatalf("expected 5 providers, got %d", len(all))
	}

	want := []ID{Google, Sphinx, Wit, Bing, Houndify}
	for i, spec := range all {
		if spec.ID != want[i] {
			t.Errorf("provider %d: expected %s, got %s", i, want[i], spec.ID)
		}
		if spec.Label == "" {
			t.Errorf("provider %s: empty label", spec.ID)
		}
	}
}

func TestCredentialRequirements(t *testing.T) {
	tests := []struct {
		id      ID
		want    CredentialRequirement
		envVars int
	}{
		{Google, CredentialsNone, 0},
		{Sphinx, CredentialsNone, 0},
		{Wit, CredentialsAPIKey, 1},
		{Bing, CredentialsAPIKey, 1},
		{Houndify, CredentialsKeyPair, 2},
	}

	for _, tt := range tests {
		spec := GetSpec(tt.id)
		if spec.Credentials != tt.want {
			t.Errorf("%s: expected requirement %d, got %d", tt.id, tt.want, spec.Credentials)
		}
		if len(spec.EnvVars) != tt.envVars {
			t.Errorf("%s: expected %d env vars, got %d", tt.id, tt.envVars, len(spec.EnvVars))
		}
	}
}

func TestGetSpecUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown provider")
		}
	}()
	GetSpec(ID("dragon"))
}

func TestIsValid(t *testing.T) {
	for _, id := range IDs() {
		if !IsValid(id) {
			t.Errorf("expected %s to be valid", id)
		}
	}
	if IsValid(ID("")) {
		t.Error("empty ID should not be valid")
	}
	if IsValid(ID("whisper")) {
		t.Error("unknown ID should not be valid")
	}
}

func TestSupportsLanguage(t *testing.T) {
	if SupportsLanguage(Sphinx) {
		t.Error("sphinx ignores language tags")
	}
	for _, id := range []ID{Google, Wit, Bing, Houndify} {
		if !SupportsLanguage(id) {
			t.Errorf("%s should accept a language tag", id)
		}
	}
}

func TestDefaultEndpoints(t *testing.T) {
	for _, id := range IDs() {
		ep := DefaultEndpoint(id)
		if id == Sphinx {
			if ep.BaseURL != "" {
				t.Error("sphinx runs locally, expected empty endpoint")
			}
			continue
		}
		if ep.BaseURL == "" || ep.Path == "" {
			t.Errorf("%s: incomplete endpoint %+v", id, ep)
		}
	}
}
