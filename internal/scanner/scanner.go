// Package scanner provides lexical classification of raw command-line tokens.
package scanner

import "strings"

// Kind discriminates the two argument categories.
type Kind int

const (
	// KindAction is any token that does not start with '-'.
	KindAction Kind = iota
	// KindFlag is a token starting with '-', optionally carrying an
	// inline value after the first '='.
	KindFlag
)

// Token is the lexical form of one scanned argument. For actions, Key is the
// whole token. For flags, Key is the token up to (excluding) the first '='
// and Value is everything after it.
type Token struct {
	Kind     Kind
	Key      string
	Value    string
	HasValue bool
}

// Scan classifies a single raw argument into a Token.
//
// A token is a flag if and only if its first byte is '-'; everything else is
// an action. This is purely syntactic: Scan does not know which flag or
// action names the caller recognizes.
//
// For flags, only the first '=' acts as the key/value separator; any later
// '=' bytes are kept verbatim in the value. A separator as the last byte
// yields an empty value with HasValue still true, which is distinct from a
// flag with no separator at all.
//
// Scan reports ok=false for the empty string: it has no first byte to test,
// and no meaningful action name is empty.
func Scan(arg string) (Token, bool) {
	if arg == "" {
		return Token{}, false
	}
	if arg[0] != '-' {
		return Token{Kind: KindAction, Key: arg}, true
	}
	eq := strings.IndexByte(arg, '=')
	if eq < 0 {
		return Token{Kind: KindFlag, Key: arg}, true
	}
	return Token{
		Kind:     KindFlag,
		Key:      arg[:eq],
		Value:    arg[eq+1:],
		HasValue: true,
	}, true
}
