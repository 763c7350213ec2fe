package markov

import (
	"testing"
)

func TestLookupCreate(t *testing.T) {
	m := newTestModel(t)
	prefix := Prefix{Word("the"), Word("cat")}

	created := m.lookup(prefix, true)
	if created == nil {
		t.Fatal("lookup with create=true returned nil")
	}
	if len(created.suffixes) != 0 {
		t.Errorf("new entry should start with no continuations, got %d", len(created.suffixes))
	}
	if m.states != 1 {
		t.Errorf("expected 1 state after first create, got %d", m.states)
	}

	// A second create-lookup must find the same entry, not allocate another.
	again := m.lookup(prefix, true)
	if again != created {
		t.Error("lookup with create=true did not return the existing entry")
	}
	if m.states != 1 {
		t.Errorf("expected state count to stay at 1, got %d", m.states)
	}
}

func TestLookupMissingIsIdempotent(t *testing.T) {
	m := newTrainedModel(t, "one fish two fish")
	prefix := Prefix{Word("blue"), Word("whale")}

	statesBefore := m.states
	transitionsBefore := m.transitions

	for i := 0; i < 3; i++ {
		if s := m.lookup(prefix, false); s != nil {
			t.Fatalf("lookup #%d of an unseen prefix returned an entry: %+v", i+1, s.prefix)
		}
	}

	if m.states != statesBefore || m.transitions != transitionsBefore {
		t.Errorf("lookup without create mutated the store: states %d -> %d, transitions %d -> %d",
			statesBefore, m.states, transitionsBefore, m.transitions)
	}
}

func TestBoundaryNeverMatchesWords(t *testing.T) {
	m := newTestModel(t)

	// A boundary slot must be a different key than any word slot, even for
	// word texts that could masquerade as a boundary.
	prefixes := []Prefix{
		{Boundary(), Word("x")},
		{Word(""), Word("x")},
		{Word("\n"), Word("x")},
	}
	for _, p := range prefixes {
		m.lookup(p, true)
	}
	if m.states != len(prefixes) {
		t.Errorf("expected %d distinct states, got %d", len(prefixes), m.states)
	}

	if Boundary() == Word("") {
		t.Error("boundary token compared equal to an empty word token")
	}
	if Boundary() == Word("\n") {
		t.Error("boundary token compared equal to a newline word token")
	}
}

func TestBucketIndexRange(t *testing.T) {
	prefixes := []Prefix{
		{Boundary(), Boundary()},
		{Boundary(), Word("a")},
		{Word("a"), Word("b")},
		{Word("longer"), Word("words")},
		{Word("\xff\xfe"), Word("\x00")},
	}
	for _, p := range prefixes {
		b := p.bucket()
		if b < 0 || b >= numBuckets {
			t.Errorf("bucket index %d for %+v outside [0, %d)", b, p, numBuckets)
		}
		if b != p.bucket() {
			t.Errorf("bucket index for %+v not stable within a run", p)
		}
	}
}

func TestBucketCollisionChaining(t *testing.T) {
	m := newTestModel(t)

	// "Aa" and "BB" accumulate to the same hash under the multiplier, so
	// these two prefixes are guaranteed to share a bucket.
	p1 := Prefix{Word("Aa"), Word("x")}
	p2 := Prefix{Word("BB"), Word("x")}
	if p1.bucket() != p2.bucket() {
		t.Fatalf("test premise broken: expected a bucket collision, got %d and %d", p1.bucket(), p2.bucket())
	}

	e1 := m.lookup(p1, true)
	e2 := m.lookup(p2, true)
	if e1 == e2 {
		t.Fatal("colliding prefixes resolved to the same entry")
	}
	if m.states != 2 {
		t.Errorf("expected 2 states in the shared bucket, got %d", m.states)
	}

	// Both entries stay reachable through the chain.
	if found := m.lookup(p1, false); found != e1 {
		t.Error("first colliding prefix not found after second insert")
	}
	if found := m.lookup(p2, false); found != e2 {
		t.Error("second colliding prefix not found")
	}
}

func TestPrefixShift(t *testing.T) {
	window := Prefix{Boundary(), Boundary()}

	window.shift(Word("the"))
	if window != (Prefix{Boundary(), Word("the")}) {
		t.Errorf("after first shift got %+v", window)
	}

	window.shift(Word("cat"))
	if window != (Prefix{Word("the"), Word("cat")}) {
		t.Errorf("after second shift got %+v", window)
	}

	window.shift(Boundary())
	if window != (Prefix{Word("cat"), Boundary()}) {
		t.Errorf("after boundary shift got %+v", window)
	}
}
