package args

// Classifier maps a raw key to a caller-defined value. It reports ok=false
// when the key is not one it recognizes, which aborts the parse with the
// caller-supplied error value.
//
// Classifiers must be pure: no side effects, no state across invocations.
// The flag classifier receives only the key portion of a flag token (the
// text before the first '='), never the inline value.
type Classifier[T any] func(key string) (T, bool)

// Map builds a Classifier from a literal table of recognized spellings.
// Multiple spellings may map to the same value, e.g. "-h" and "--help".
//
// Example:
//
//	flags := args.Map(map[string]FlagKey{
//	    "-h": Help, "--help": Help,
//	})
func Map[T any](m map[string]T) Classifier[T] {
	return func(key string) (T, bool) {
		v, ok := m[key]
		return v, ok
	}
}
