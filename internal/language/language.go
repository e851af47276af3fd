// Package language holds the fixed set of locales offered for transcription.
package language

// Tag is an IETF locale tag passed through to providers that accept one.
type Tag string

// Language pairs a locale tag with its display name.
type Language struct {
	Tag  Tag    // locale tag sent to the provider (e.g. "en-US")
	Name string // display name (e.g. "English")
}

// Default is used when the caller does not pick a language.
const Default = Tag("en-US")

// languages is the master list of selectable locales.
var languages = []Language{
	{Tag: "en-US", Name: "English"},
	{Tag: "es-ES", Name: "Spanish"},
	{Tag: "fr-FR", Name: "French"},
	{Tag: "de-DE", Name: "German"},
	{Tag: "it-IT", Name: "Italian"},
	{Tag: "pt-PT", Name: "Portuguese"},
	{Tag: "nl-NL", Name: "Dutch"},
	{Tag: "ru-RU", Name: "Russian"},
	{Tag: "zh-CN", Name: "Chinese (Simplified)"},
	{Tag: "ja-JP", Name: "Japanese"},
}

var tagIndex map[Tag]Language

func init() {
	tagIndex = make(map[Tag]Language, len(languages))
	for _, lang := range languages {
		tagIndex[lang.Tag] = lang
	}
}

// FromTag returns the Language for the given tag and whether it is known.
func FromTag(tag Tag) (Language, bool) {
	lang, ok := tagIndex[tag]
	return lang, ok
}

// IsValid reports whether tag is one of the supported locales.
func IsValid(tag Tag) bool {
	_, ok := tagIndex[tag]
	return ok
}

// List returns all supported languages in selection order.
func List() []Language {
	result := make([]Language, len(languages))
	copy(result, languages)
	return result
}

// Tags returns all supported locale tags in selection order.
func Tags() []Tag {
	tags := make([]Tag, len(languages))
	for i, lang := range languages {
		tags[i] = lang.Tag
	}
	return tags
}
