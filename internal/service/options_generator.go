package service

import (
	"math/rand"
)

// buildOptionsWithCorrect shuffles the correct answer in among the distractors
// and returns the options with the position of the correct one.
// Callers must pass distractors that differ from correct and from each other.
func buildOptionsWithCorrect(rng *rand.Rand, correct string, distractors []string) ([]string, int) {
	options := make([]string, 0, 1+len(distractors))
	options = append(options, correct)
	options = append(options, distractors...)

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}

	return options, correctIndex
}

// sampleWithout picks count distinct values from pool, skipping excluded.
// It returns nil when the pool cannot supply enough values.
func sampleWithout(rng *rand.Rand, pool []string, excluded string, count int) []string {
	candidates := make([]string, 0, len(pool))
	for _, v := range pool {
		if v != excluded {
			candidates = append(candidates, v)
		}
	}

	if len(candidates) < count {
		return nil
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates[:count]
}

// uniqueStrings removes duplicates while preserving the original order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
