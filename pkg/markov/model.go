package markov

import (
	"io"
	"log/slog"
)

// Order is the number of consecutive tokens that form the context window
// used to predict the next one.
const Order = 2

// numBuckets is the fixed (prime) size of the model's hash table.
const numBuckets = 4093

// hashMultiplier is the accumulator factor of the prefix hash.
const hashMultiplier = 31

// boundaryMark is folded into the hash in place of word bytes for a
// boundary slot. It lies outside the byte range, so no word text can
// contribute the same value.
const boundaryMark = 1 << 8

// Prefix is an ordered window of the Order most recent tokens. Two prefixes
// are equal iff every positional token matches exactly, boundary flag
// included; Go array equality gives precisely that comparison.
type Prefix [Order]Token

// shift slides the window forward: the oldest token is dropped and tok
// becomes the newest.
func (p *Prefix) shift(tok Token) {
	copy(p[:], p[1:])
	p[Order-1] = tok
}

// bucket returns the hash bucket index for p, accumulating over the bytes
// of each positional word in order. Stable within a run.
func (p *Prefix) bucket() int {
	var h uint32
	for i := range p {
		if p[i].Boundary {
			h = h*hashMultiplier + boundaryMark
			continue
		}
		for j := 0; j < len(p[i].Text); j++ {
			h = h*hashMultiplier + uint32(p[i].Text[j])
		}
	}
	return int(h % numBuckets)
}

// state is one entry of the model: a prefix window, the continuations
// observed after it, and the link to the next entry in the same bucket.
// Repeated observations of the same continuation are stored as repeated
// elements, so suffixes is a multiset, not a set.
type state struct {
	prefix   Prefix
	suffixes []Token
	next     *state
}

// Model is an order-2 word Markov model held entirely in memory. Entries
// are created lazily during training, linked into fixed hash buckets, and
// never removed. A Model is not safe for concurrent use; train fully
// before generating.
type Model struct {
	buckets   [numBuckets]*state
	tokenizer Tokenizer
	logger    *slog.Logger

	states      int
	transitions int
	tokens      int
}

// New creates an empty Model that splits input with the given tokenizer.
// A nil tokenizer selects NewDefaultTokenizer().
func New(tokenizer Tokenizer) *Model {
	if tokenizer == nil {
		tokenizer = NewDefaultTokenizer()
	}
	return &Model{
		tokenizer: tokenizer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Model. By default, all logs are
// discarded. Providing a `log/slog.Logger` will enable logging for
// training and generation.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// lookup scans the chain of the bucket selected by prefix, comparing
// entries by exact positional equality. When the prefix is absent and
// create is false it returns nil, which generation uses to detect a dead
// end. With create set, a new entry with an empty continuation list is
// linked at the head of the chain and returned.
func (m *Model) lookup(prefix Prefix, create bool) *state {
	b := prefix.bucket()
	for s := m.buckets[b]; s != nil; s = s.next {
		if s.prefix == prefix {
			return s
		}
	}
	if !create {
		return nil
	}
	s := &state{prefix: prefix, next: m.buckets[b]}
	m.buckets[b] = s
	m.states++
	return s
}

// addSuffix records one observed continuation for s.
func (m *Model) addSuffix(s *state, tok Token) {
	s.suffixes = append(s.suffixes, tok)
	m.transitions++
}

// add is the single state-transition primitive of training: record tok as
// a continuation of the current window, then slide the window over it.
func (m *Model) add(window *Prefix, tok Token) {
	m.addSuffix(m.lookup(*window, true), tok)
	window.shift(tok)
}
