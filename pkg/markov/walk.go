package markov

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Walk is a lazy generation pass over a trained model, producing one word
// per call to Next. This allows processing generated text word-by-word
// without building the whole string up front. A Walk consumes its window
// state as it runs: once it stops it stays stopped, and a fresh walk must
// be created for another pass.
type Walk struct {
	model  *Model
	window Prefix
	seed   []string
	budget int
	rng    *rand.Rand
	done   bool

	produced int
}

// Walk starts a generation walk from the start-of-text context.
// Generation can be customized with GenerateOption functions.
func (m *Model) Walk(opts ...GenerateOption) *Walk {
	options := newGenerateOptions(opts)
	return &Walk{
		model:  m,
		window: Prefix{Boundary(), Boundary()},
		budget: options.maxWords,
		rng:    options.rng,
	}
}

// WalkFrom starts a generation walk that first replays the words of the
// given seed text and then continues from the context they establish. Seed
// words count against the word budget and are truncated to it. Boundary
// tokens in the seed are skipped. A seed whose final context was never
// observed during training simply dead-ends once the seed is exhausted.
func (m *Model) WalkFrom(seed string, opts ...GenerateOption) (*Walk, error) {
	walk := m.Walk(opts...)
	stream := m.tokenizer.NewStream(strings.NewReader(seed))
	for {
		token, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenizer error while reading seed: %w", err)
		}
		// We do not replay boundary tokens from the seed, as we want to
		// continue the chain from it.
		if token.Boundary {
			continue
		}
		walk.seed = append(walk.seed, token.Text)
		walk.window.shift(*token)
	}
	return walk, nil
}

// Next returns the next word of the walk. The boolean is false once the
// walk has terminated, whether by drawing a boundary token, hitting a dead
// end, or exhausting the word budget; all three are normal terminations.
// After termination every subsequent call returns ("", false).
func (w *Walk) Next() (string, bool) {
	if w.done {
		return "", false
	}

	if w.produced >= w.budget {
		w.done = true
		w.model.logger.Debug("Generation terminated by reaching max words",
			slog.Int("max_words", w.budget),
			slog.Int("generated_length", w.produced),
		)
		return "", false
	}

	if len(w.seed) > 0 {
		word := w.seed[0]
		w.seed = w.seed[1:]
		w.produced++
		return word, true
	}

	s := w.model.lookup(w.window, false)
	if s == nil || len(s.suffixes) == 0 {
		w.done = true
		w.model.logger.Debug("Generation terminated due to dead-end",
			slog.String("last_context", w.window[0].Text+" "+w.window[1].Text),
			slog.Int("generated_length", w.produced),
		)
		return "", false
	}

	token := s.suffixes[w.intn(len(s.suffixes))]
	if token.Boundary {
		w.done = true
		w.model.logger.Debug("Generation terminated by boundary token",
			slog.Int("generated_length", w.produced),
		)
		return "", false
	}

	w.window.shift(token)
	w.produced++
	return token.Text, true
}

// intn draws a uniform index in [0, n) from the walk's random source, or
// from the shared process source when none was injected.
func (w *Walk) intn(n int) int {
	if w.rng != nil {
		return w.rng.IntN(n)
	}
	return rand.IntN(n)
}
