package markov

import "io"

// Token represents a single tokenized unit of text. It contains the text
// itself and a boolean flag indicating whether it is the boundary marker
// that pads the start of a sequence and terminates its end.
type Token struct {
	Text     string
	Boundary bool
}

// Word returns a token carrying the given text. A word token never compares
// equal to the boundary token, even when its text is empty.
func Word(text string) Token {
	return Token{Text: text}
}

// Boundary returns the reserved boundary token. It seeds the context window
// before the first word of a sequence, is recorded once after the last word,
// and ends a generation walk when drawn.
func Boundary() Token {
	return Token{Boundary: true}
}

// Tokenizer is an interface that defines the contract for splitting input
// text into tokens. This allows the model to be independent of the
// specific tokenization strategy.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
}

// StreamTokenizer is an interface for a stateful tokenizer that processes a
// stream of data, returning one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as the
	// error when the stream is fully consumed.
	Next() (*Token, error)
}
