package markov

import (
	"math/rand/v2"
	"strings"
)

// DefaultMaxWords is the word budget used when WithMaxWords is not given.
const DefaultMaxWords = 100

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	maxWords int
	rng      *rand.Rand
}

// GenerateOption is a function that configures generation parameters. It's used
// as a variadic argument in generation functions like Generate and Walk.
type GenerateOption func(*generateOptions)

// WithMaxWords sets the maximum number of words to generate. The walk may
// stop earlier when it draws a boundary token or reaches a dead end. A
// non-positive n produces an empty sequence regardless of model contents.
func WithMaxWords(n int) GenerateOption {
	return func(o *generateOptions) { o.maxWords = n }
}

// WithRand sets the random source used to choose among continuations,
// making generation reproducible. The default is the shared math/rand/v2
// source, seeded once at process start.
func WithRand(rng *rand.Rand) GenerateOption {
	return func(o *generateOptions) { o.rng = rng }
}

func newGenerateOptions(opts []GenerateOption) *generateOptions {
	options := &generateOptions{
		maxWords: DefaultMaxWords,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Generate runs a complete walk from the start-of-text context and returns
// the generated words joined by single spaces. An untrained model, or one
// whose walk ends immediately, yields an empty string.
func (m *Model) Generate(opts ...GenerateOption) string {
	return drain(m.Walk(opts...))
}

// GenerateFrom begins generation from the given seed text. The seed words
// are included in the output and count against the word budget; generation
// continues from the context they establish. If the seed text is empty, it
// behaves identically to Generate.
func (m *Model) GenerateFrom(seed string, opts ...GenerateOption) (string, error) {
	walk, err := m.WalkFrom(seed, opts...)
	if err != nil {
		return "", err
	}
	return drain(walk), nil
}

// drain consumes a walk and joins its words with single spaces.
func drain(walk *Walk) string {
	var builder strings.Builder
	for {
		word, ok := walk.Next()
		if !ok {
			return builder.String()
		}
		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(word)
	}
}
