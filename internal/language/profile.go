package language

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Profile is the immutable set of resources for one language.
type Profile struct {
	lang          Language
	stopWords     map[string]struct{}
	abbreviations map[string]struct{}
	joinHyphens   bool
}

func newProfile(lang Language, stopWords, abbreviations []string, joinHyphens bool) *Profile {
	// A Caser is stateful, so this one never leaves the constructor.
	fold := cases.Fold()
	p := &Profile{
		lang:          lang,
		stopWords:     make(map[string]struct{}, len(stopWords)),
		abbreviations: make(map[string]struct{}, len(abbreviations)),
		joinHyphens:   joinHyphens,
	}
	for _, w := range stopWords {
		p.stopWords[fold.String(norm.NFC.String(w))] = struct{}{}
	}
	for _, a := range abbreviations {
		p.abbreviations[strings.ToLower(a)] = struct{}{}
	}
	return p
}

// Language returns the profile's language; zero for the agnostic profile.
func (p *Profile) Language() Language { return p.lang }

// IsStopWord reports whether the normalized (case-folded) word is a stop word.
func (p *Profile) IsStopWord(word string) bool {
	_, ok := p.stopWords[word]
	return ok
}

// StopWordCount returns the size of the stop-word set.
func (p *Profile) StopWordCount() int { return len(p.stopWords) }

// JoinsHyphens reports whether hyphenated compounds are kept as one token.
func (p *Profile) JoinsHyphens() bool { return p.joinHyphens }

// IsAbbreviation reports whether word (without its trailing dot) is a known
// abbreviation, a dotted acronym such as "e.g" or "U.S", or a single-letter initial.
func (p *Profile) IsAbbreviation(word string) bool {
	if word == "" {
		return false
	}
	if _, ok := p.abbreviations[strings.ToLower(word)]; ok {
		return true
	}
	if strings.ContainsRune(word, '.') {
		return isAcronym(word)
	}
	r, size := utf8.DecodeRuneInString(word)
	return size == len(word) && unicode.IsUpper(r)
}

// isAcronym reports whether word is single letters joined by dots, as in
// "e.g" or "U.S". Decimals, versions and host names do not qualify.
func isAcronym(word string) bool {
	for _, part := range strings.Split(word, ".") {
		if utf8.RuneCountInString(part) != 1 {
			return false
		}
		if r, _ := utf8.DecodeRuneInString(part); !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsTerminator reports whether r can end a sentence.
func (p *Profile) IsTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '‼', '⁇', '⁈', '⁉':
		return true
	}
	return false
}

// IsCloser reports whether r is a closing quote or bracket that may follow
// sentence-final punctuation.
func (p *Profile) IsCloser(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', '»', '›', ')', ']', '}':
		return true
	}
	return false
}

// IsBoundary decides whether the terminator run text[start:end] ends a
// sentence. The run is a maximal sequence of terminators, optionally followed
// by closing quotes or brackets.
//
// A run must be followed by whitespace or the end of text, which also keeps
// decimals such as "3.14" together.
func (p *Profile) IsBoundary(text string, start, end int) bool {
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if !unicode.IsSpace(r) {
			return false
		}
	}
	run := text[start:end]
	marks := strings.TrimRightFunc(run, p.IsCloser)

	if marks == "." && p.IsAbbreviation(wordBefore(text, start)) {
		return false
	}
	ellipsis := strings.Contains(marks, "..") || strings.ContainsRune(marks, '…')
	quoted := len(marks) < len(run)
	if ellipsis || quoted {
		if r, ok := nextLetter(text, end); ok && unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// wordBefore returns the non-space run that ends at pos, without leading
// opening punctuation.
func wordBefore(text string, pos int) string {
	begin := pos
	for begin > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:begin])
		if unicode.IsSpace(r) {
			break
		}
		begin -= size
	}
	return strings.TrimLeftFunc(text[begin:pos], func(r rune) bool {
		return unicode.IsPunct(r) && r != '.'
	})
}

func nextLetter(text string, pos int) (rune, bool) {
	for _, r := range text[pos:] {
		if unicode.IsSpace(r) {
			continue
		}
		return r, unicode.IsLetter(r)
	}
	return 0, false
}
