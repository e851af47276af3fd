package recognizer

import "github.com/voxscribe/voxscribe/internal/provider"

// Kind classifies a recognition failure. The set is closed; every failure
// surfaced to the UI carries exactly one of these.
type Kind int

const (
	// KindNoSpeech - capture timed out without detecting speech.
	KindNoSpeech Kind = iota
	// KindUnintelligible - speech was present but could not be decoded to text.
	KindUnintelligible
	// KindTransport - the network request to the service failed.
	KindTransport
	// KindMissingCredentials - a required key or id is absent.
	KindMissingCredentials
	// KindMissingDependency - an external tool is not installed.
	KindMissingDependency
	// KindDecode - the input audio is malformed or corrupt.
	KindDecode
	// KindUnexpected - catch-all carrying the original message.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindNoSpeech:
		return "no-speech"
	case KindUnintelligible:
		return "unintelligible"
	case KindTransport:
		return "transport"
	case KindMissingCredentials:
		return "missing-credentials"
	case KindMissingDependency:
		return "missing-dependency"
	case KindDecode:
		return "decode"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Failure is the uniform, user-facing form of any recognition error.
type Failure struct {
	Kind     Kind
	Provider provider.ID // empty when the failure precedes dispatch
	Message  string
}

func (f *Failure) Error() string {
	if f == nil {
		return "recognition failure"
	}
	return f.Message
}

// Result is the only value that crosses from the recognition core to the UI.
// Exactly one of Text and Failure is meaningful.
type Result struct {
	Text    string
	Failure *Failure
}

// Success wraps a transcript in a Result.
func Success(text string) Result {
	return Result{Text: text}
}

// Failed wraps a failure in a Result.
func Failed(f *Failure) Result {
	return Result{Failure: f}
}

// Ok reports whether the result carries a transcript.
func (r Result) Ok() bool {
	return r.Failure == nil
}
