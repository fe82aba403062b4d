// Package language holds the per-language resources used by the summarizer:
// stop-word sets and sentence-boundary rules. All tables are compiled in and
// frozen at package init; profiles are safe to share between goroutines.
package language

import (
	"fmt"
	"strings"

	"summary/internal/domain"
)

// Language identifies one of the supported document languages.
// The zero value is not a language.
type Language int

const (
	English Language = iota + 1
	French
	German
	Spanish
	Italian
	Portuguese
	Dutch
	Russian
)

type descriptor struct {
	name string
	code string
}

var descriptors = map[Language]descriptor{
	English:    {"english", "en"},
	French:     {"french", "fr"},
	German:     {"german", "de"},
	Spanish:    {"spanish", "es"},
	Italian:    {"italian", "it"},
	Portuguese: {"portuguese", "pt"},
	Dutch:      {"dutch", "nl"},
	Russian:    {"russian", "ru"},
}

// All returns every supported language in declaration order.
func All() []Language {
	return []Language{English, French, German, Spanish, Italian, Portuguese, Dutch, Russian}
}

// String returns the lowercase English name of the language.
func (l Language) String() string {
	if d, ok := descriptors[l]; ok {
		return d.name
	}
	return fmt.Sprintf("language(%d)", int(l))
}

// Code returns the ISO 639-1 code of the language, or "" if unknown.
func (l Language) Code() string {
	return descriptors[l].code
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := descriptors[l]
	return ok
}

// Parse resolves a language from its English name or ISO 639-1 code.
// Matching is case-insensitive.
func Parse(s string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for l, d := range descriptors {
		if key == d.name || key == d.code {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, s)
}

// Lookup returns the shared profile for l.
func Lookup(l Language) (*Profile, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, l)
	}
	return profiles[l], nil
}

// Agnostic returns a profile with no stop words, for text of unknown language.
func Agnostic() *Profile {
	return agnostic
}

var (
	profiles = map[Language]*Profile{
		English:    newProfile(English, englishStopWords, englishAbbreviations, true),
		French:     newProfile(French, frenchStopWords, frenchAbbreviations, true),
		German:     newProfile(German, germanStopWords, germanAbbreviations, true),
		Spanish:    newProfile(Spanish, spanishStopWords, spanishAbbreviations, false),
		Italian:    newProfile(Italian, italianStopWords, italianAbbreviations, false),
		Portuguese: newProfile(Portuguese, portugueseStopWords, portugueseAbbreviations, true),
		Dutch:      newProfile(Dutch, dutchStopWords, dutchAbbreviations, true),
		Russian:    newProfile(Russian, russianStopWords, russianAbbreviations, true),
	}
	agnostic = newProfile(0, nil, nil, false)
)
