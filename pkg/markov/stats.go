package markov

// Stats holds aggregated statistics for a trained model.
type Stats struct {
	States      int // The number of unique context windows in the table.
	Transitions int // The total number of recorded transitions, multiplicity included.
	Vocabulary  int // The number of distinct words observed during training.
	Starters    int // The number of transitions recorded for the start-of-text window.
}

// Stats returns a snapshot of statistics for the model by walking its
// table. It is intended to be called after training; the walk only reads.
func (m *Model) Stats() Stats {
	stats := Stats{
		States:      m.states,
		Transitions: m.transitions,
	}

	vocabulary := make(map[string]struct{})
	for i := range m.buckets {
		for s := m.buckets[i]; s != nil; s = s.next {
			for _, token := range s.suffixes {
				if !token.Boundary {
					vocabulary[token.Text] = struct{}{}
				}
			}
		}
	}
	stats.Vocabulary = len(vocabulary)

	if s := m.lookup(Prefix{Boundary(), Boundary()}, false); s != nil {
		stats.Starters = len(s.suffixes)
	}

	return stats
}
