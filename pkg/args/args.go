// Package args classifies command-line tokens into flags and actions.
//
// This package implements a single-pass argument classifier. It does not
// define any flag or action names itself: the caller supplies one
// classification function per category, and the classifier only decides
// which category each token belongs to and how flag tokens split into a key
// and an optional inline value.
//
// A token is a flag if it starts with '-'; everything else is an action.
// Flags may carry a value after the first '=' ("-h=test", "--out=a.txt").
// Unrecognized tokens abort the whole parse with a caller-supplied error
// value, returned verbatim; the package never renders messages or exits.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call builds its own result with no shared mutable state,
// provided the supplied classifiers are pure functions.
//
//	// ✅ SAFE: Concurrent parsing
//	go func() { args.ParseArgs(argv1, flags, actions, errUnknown) }()
//	go func() { args.ParseArgs(argv2, flags, actions, errUnknown) }()
//
// # Example usage
//
//	type FlagKey int
//	const (
//	    Help FlagKey = iota
//	    Verbose
//	)
//
//	type Action int
//	const (
//	    Add Action = iota
//	    Remove
//	)
//
//	flags := args.Map(map[string]FlagKey{
//	    "-h": Help, "--help": Help,
//	    "-v": Verbose, "--verbose": Verbose,
//	})
//	actions := args.Map(map[string]Action{
//	    "add": Add, "a": Add,
//	    "remove": Remove, "r": Remove,
//	})
//
//	errUnknown := errors.New("action or flag is not recognized")
//	parsed, err := args.ParseArgs([]string{"-v", "add"}, flags, actions, errUnknown)
//	if err != nil {
//	    // err == errUnknown; rendering and exiting are the caller's job
//	}
//	// parsed.Flags  = [{Key: Verbose}]
//	// parsed.Actions = [Add]
package args

// Flag is one classified flag token: the caller-defined key plus the inline
// value, if the token carried one. Value is only meaningful when HasValue is
// true; "-h=" yields HasValue true with an empty Value, while "-h" yields
// HasValue false.
type Flag[F any] struct {
	Key      F
	Value    string
	HasValue bool
}

// Arguments is the result of a successful parse: every input token appears
// in exactly one of the two collections, each ordered by first appearance.
// Relative order within a collection matches the input; interleaving between
// the two collections is not recorded.
type Arguments[F, A any] struct {
	Flags   []Flag[F]
	Actions []A
}
