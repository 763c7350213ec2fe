package markov

import (
	"bufio"
	"io"
)

// DefaultTokenLimit is the maximum byte length of a token emitted by a
// DefaultTokenizer unless WithTokenLimit overrides it.
const DefaultTokenLimit = 99

// DefaultTokenizer is a default implementation of the Tokenizer interface.
// It splits text into words on ASCII whitespace, emitting words longer
// than the token limit in limit-sized pieces so every token stays bounded.
// Its behavior can be customized with functional options.
type DefaultTokenizer struct {
	tokenLimit     int
	lineBoundaries bool
}

// Option Is a function that configures a DefaultTokenizer.
type Option func(*DefaultTokenizer)

// WithTokenLimit Sets the maximum byte length of an emitted token. Words
// longer than n are emitted in n-byte pieces. A value of n <= 0 removes
// the bound entirely.
// Default: DefaultTokenLimit
func WithTokenLimit(n int) Option {
	return func(t *DefaultTokenizer) {
		t.tokenLimit = n
	}
}

// WithLineBoundaries makes the tokenizer emit a boundary token at the end
// of every line that produced at least one word, so each input line is
// trained as an independent sequence.
func WithLineBoundaries() Option {
	return func(t *DefaultTokenizer) {
		t.lineBoundaries = true
	}
}

// NewDefaultTokenizer creates a new tokenizer with default settings, which can be
// overridden by providing one or more Option functions.
func NewDefaultTokenizer(opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{
		tokenLimit: DefaultTokenLimit,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// NewStream Returns the stream processor.
func (t *DefaultTokenizer) NewStream(r io.Reader) StreamTokenizer {
	scanner := bufio.NewScanner(r)
	scanner.Split(t.split)
	return &DefaultStreamTokenizer{
		scanner:        scanner,
		lineBoundaries: t.lineBoundaries,
	}
}

// split is the bufio.SplitFunc behind the scanner. It works like
// bufio.ScanWords restricted to ASCII whitespace, with two differences: a
// word is cut after tokenLimit bytes and the remainder is left in the
// buffer for the next call, and in line-boundaries mode a newline is
// returned as its own one-byte token.
func (t *DefaultTokenizer) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		if t.lineBoundaries && data[start] == '\n' {
			return start + 1, data[start : start+1], nil
		}
		start++
	}

	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i, data[start:i], nil
		}
		if t.tokenLimit > 0 && i+1-start == t.tokenLimit {
			return i + 1, data[start : i+1], nil
		}
	}

	// A final, non-terminated word at EOF is still a word.
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data.
	return start, nil, nil
}

// isSpace reports whether c is an ASCII whitespace byte.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// DefaultStreamTokenizer is the default implementation of the StreamTokenizer
// interface. It reads word tokens off a bufio.Scanner and, in line-boundaries
// mode, converts newline tokens into boundary tokens.
type DefaultStreamTokenizer struct {
	scanner        *bufio.Scanner
	lineBoundaries bool
	inSequence     bool
}

// Next returns the next token from the stream. It returns a Token and a nil error on
// success. When the stream is exhausted, it returns a nil Token and io.EOF.
// Any other error indicates a problem reading from the underlying stream.
func (s *DefaultStreamTokenizer) Next() (*Token, error) {
	for s.scanner.Scan() {
		text := s.scanner.Text()

		if s.lineBoundaries && text == "\n" {
			if !s.inSequence { // Blank line, nothing to terminate
				continue
			}
			s.inSequence = false
			token := Boundary()
			return &token, nil
		}

		s.inSequence = true
		token := Word(text)
		return &token, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
