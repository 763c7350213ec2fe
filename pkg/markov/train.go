package markov

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Train reads data through the model's tokenizer and records one transition
// per token: the current context window maps to the token that followed it.
// The window starts as boundary padding and slides forward one token at a
// time, so the very first transition is "start of text" to the first word.
// After the stream is exhausted a final boundary transition is recorded,
// terminating the trained sequence. An empty input is valid and records
// only the degenerate boundary-to-boundary transition.
//
// Boundary tokens produced by the tokenizer end the current sequence and
// reset the window, so each delimited sequence is trained independently.
//
// Train may be called multiple times to accumulate more text into the same
// model. Generation should only begin once all training is done.
func (m *Model) Train(data io.Reader) error {
	window := Prefix{Boundary(), Boundary()}
	stream := m.tokenizer.NewStream(data)

	// fresh is true while the window holds only boundary padding.
	fresh := true
	var tokenCount, sequenceCount int

	for {
		token, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("tokenizer error: %w", err)
		}

		if token.Boundary {
			if fresh {
				continue
			}
			m.add(&window, *token)
			window = Prefix{Boundary(), Boundary()}
			fresh = true
			sequenceCount++
			continue
		}

		m.add(&window, *token)
		m.tokens++
		tokenCount++
		fresh = false
	}

	// The final sequence is terminated implicitly by the end of the stream,
	// unless a boundary token already did so. A model that has recorded
	// nothing at all still gets the degenerate end transition.
	if !fresh || m.transitions == 0 {
		m.add(&window, Boundary())
		sequenceCount++
	}

	m.logger.Info("Training completed",
		slog.Int("tokens_processed", tokenCount),
		slog.Int("sequences_processed", sequenceCount),
		slog.Int("states", m.states),
		slog.Int("transitions", m.transitions),
	)

	return nil
}
