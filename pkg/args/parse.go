package args

import (
	"os"

	"github.com/shapestone/shape-args/internal/scanner"
)

// Parse classifies the process's command-line arguments (os.Args without the
// program name). It is a convenience wrapper around ParseArgs.
func Parse[F, A any](flags Classifier[F], actions Classifier[A], errUnknown error) (*Arguments[F, A], error) {
	return ParseArgs(os.Args[1:], flags, actions, errUnknown)
}

// ParseArgs classifies an explicit token sequence into flags and actions.
//
// Tokens are processed in order. A token starting with '-' is a flag: its
// key (the text before the first '=') is passed to the flag classifier, and
// any text after the separator becomes the flag's value. Every other token
// is passed whole to the action classifier. An empty argv yields an empty
// result and no error.
//
// The parse is atomic: the first token either classifier rejects — or an
// empty token, which cannot be classified — aborts the whole parse, and
// errUnknown is returned exactly as supplied with no partial result.
func ParseArgs[F, A any](argv []string, flags Classifier[F], actions Classifier[A], errUnknown error) (*Arguments[F, A], error) {
	parsed := &Arguments[F, A]{}
	for _, arg := range argv {
		tok, ok := scanner.Scan(arg)
		if !ok {
			return nil, errUnknown
		}
		switch tok.Kind {
		case scanner.KindFlag:
			key, ok := flags(tok.Key)
			if !ok {
				return nil, errUnknown
			}
			parsed.Flags = append(parsed.Flags, Flag[F]{
				Key:      key,
				Value:    tok.Value,
				HasValue: tok.HasValue,
			})
		case scanner.KindAction:
			action, ok := actions(tok.Key)
			if !ok {
				return nil, errUnknown
			}
			parsed.Actions = append(parsed.Actions, action)
		}
	}
	return parsed, nil
}
