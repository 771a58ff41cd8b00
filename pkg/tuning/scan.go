package tuning

import (
	"github.com/matzehuels/fretboard/pkg/music"
)

// Token is one scanned note candidate. Exactly one of Note or Skip is
// meaningful: Skip is nil when Raw resolved to a note.
type Token struct {
	Raw  string     // candidate text, e.g. "C#" or "-"
	Pos  int        // rune offset of the candidate's letter in the input
	Note music.Note // parsed note when Skip is nil
	Skip error      // UNKNOWN_NOTE error when the candidate was dropped
}

// OK reports whether the token resolved to a note.
func (t Token) OK() bool { return t.Skip == nil }

// Scan splits s into note candidates and resolves each one.
// Tokens are returned in input order. A "#" with no character before it
// is absorbed without producing a token.
func Scan(s string) []Token {
	runes := []rune(s)
	tokens := make([]Token, 0, len(runes))
	sharp := false
	for i := len(runes) - 1; i >= 0; i-- {
		c := runes[i]
		if c == '#' {
			sharp = true
			continue
		}
		raw := string(c)
		if sharp {
			raw += "#"
			sharp = false
		}
		n, err := music.ParseNote(raw)
		tokens = append(tokens, Token{Raw: raw, Pos: i, Note: n, Skip: err})
	}
	reverse(tokens)
	return tokens
}

// Skipped returns the candidates Scan could not resolve.
func Skipped(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		if !t.OK() {
			out = append(out, t)
		}
	}
	return out
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
