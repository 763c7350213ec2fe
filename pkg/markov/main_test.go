package markov

import (
	"go/build"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// newTestModel creates an empty model with a default tokenizer.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	return New(NewDefaultTokenizer())
}

// newTrainedModel creates a model with the given tokenizer options and
// trains it on text.
func newTrainedModel(t *testing.T, text string, opts ...Option) *Model {
	t.Helper()
	m := New(NewDefaultTokenizer(opts...))
	if err := m.Train(strings.NewReader(text)); err != nil {
		t.Fatalf("setup: Train() failed: %v", err)
	}
	return m
}

// newTestRand returns a fixed-seed random source so generation paths are
// reproducible across runs.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

// newBenchModel creates a model for benchmarking, trained on corpus.
func newBenchModel(b *testing.B, corpus string) *Model {
	b.Helper()
	m := New(NewDefaultTokenizer())
	if err := m.Train(strings.NewReader(corpus)); err != nil {
		b.Fatalf("setup: Train() failed: %v", err)
	}
	return m
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/runtime/proc.go"),
			filepath.Join(goRoot, "src/math/big/int.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this fallback corpus is short but keeps the benchmarks from crashing when GOROOT sources are unavailable. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
