// Package declare implements spec.md §4.4, the declaration extractor: over
// already-atomized body text it recognizes class/interface, method,
// function, constructor and (by elimination) field declarations, replacing
// each match with a new D/E/G/H atom placeholder.
package declare

import "github.com/kent-wong/my-processing/pkg/atom"

type wordKind int

const (
	wordIdent wordKind = iota // identifier or keyword run: [A-Za-z0-9_.]+
	wordAtomRef               // a `"K N"` atom placeholder
	wordPunct                 // any other single, non-space byte
)

type word struct {
	kind       wordKind
	start, end int // byte offsets into the scanned text
	text       string
}

// scanWords tokenizes already-atomized body text into identifier runs,
// atom-placeholder references and single-byte punctuation, skipping
// whitespace. Declaration pattern matching below walks this word list
// rather than the raw bytes.
func scanWords(s string) []word {
	var words []word
	n := len(s)
	for i := 0; i < n; {
		c := s[i]
		switch {
		case isSpace(c):
			i++

		case c == '"':
			if end, ok := atomRefEnd(s, i); ok {
				words = append(words, word{kind: wordAtomRef, start: i, end: end, text: s[i:end]})
				i = end
				continue
			}
			words = append(words, word{kind: wordPunct, start: i, end: i + 1, text: s[i : i+1]})
			i++

		case isIdentStart(c):
			j := i + 1
			for j < n && isIdentPart(s[j]) {
				j++
			}
			words = append(words, word{kind: wordIdent, start: i, end: j, text: s[i:j]})
			i = j

		default:
			words = append(words, word{kind: wordPunct, start: i, end: i + 1, text: s[i : i+1]})
			i++
		}
	}
	return words
}

// atomRefEnd reports the end offset of a well-formed `"K N"` placeholder
// starting at s[i] == '"', if any.
func atomRefEnd(s string, i int) (int, bool) {
	n := len(s)
	j := i + 1
	for j < n && s[j] != '"' {
		j++
	}
	if j >= n {
		return 0, false
	}
	j++
	_, _, ok := atom.ParseToken(s[i:j])
	return j, ok
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '.'
}

var modifierWords = map[string]bool{
	"public": true, "private": true, "protected": true,
	"static": true, "final": true, "abstract": true, "synchronized": true,
}

func isModifier(w word) bool { return w.kind == wordIdent && modifierWords[w.text] }
