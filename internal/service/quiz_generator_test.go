package service

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/repository"
)

func smallRegistry(n int) *repository.NameRepository {
	names := make([]entities.Name, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, entities.Name{
			Number:          i,
			Transliteration: fmt.Sprintf("Name %d", i),
			Meaning:         fmt.Sprintf("Meaning %d", i),
		})
	}
	return repository.NewNameRepositoryFrom(names)
}

func TestGenerateExactCount(t *testing.T) {
	registry := repository.NewNameRepository()

	for _, count := range []int{1, 2, 3, 4, 5, 10, 15, 20, 50} {
		for seed := int64(0); seed < 5; seed++ {
			g := NewQuizGenerator(registry, rand.New(rand.NewSource(seed)))
			if got := len(g.Generate(count)); got != count {
				t.Errorf("Generate(%d) seed %d: got %d questions", count, seed, got)
			}
		}
	}
}

func TestGenerateNonPositiveCount(t *testing.T) {
	g := NewQuizGenerator(repository.NewNameRepository(), rand.New(rand.NewSource(1)))
	for _, count := range []int{0, -1} {
		if got := g.Generate(count); len(got) != 0 {
			t.Errorf("Generate(%d) = %d questions, want none", count, len(got))
		}
	}

	empty := NewQuizGenerator(repository.NewNameRepositoryFrom(nil), nil)
	if got := empty.Generate(10); len(got) != 0 {
		t.Errorf("empty registry produced %d questions", len(got))
	}
}

func TestGeneratedQuestionsAreWellFormed(t *testing.T) {
	registry := repository.NewNameRepository()
	byNumber := make(map[int]entities.Name)
	realPairings := make(map[string]bool)
	for _, n := range registry.GetAll() {
		byNumber[n.Number] = n
		realPairings[n.Transliteration+" - "+n.Meaning] = true
	}

	for seed := int64(0); seed < 20; seed++ {
		g := NewQuizGenerator(registry, rand.New(rand.NewSource(seed)))

		for _, q := range g.Generate(20) {
			target := byNumber[q.NameNumber]

			wantOptions := 4
			if q.Kind == entities.QuestionKindTrueFalse {
				wantOptions = 2
			}
			if len(q.Options) != wantOptions {
				t.Fatalf("%s question has %d options", q.Kind, len(q.Options))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Fatalf("correct index %d out of range", q.CorrectIndex)
			}
			if q.SelectedIndex != nil {
				t.Fatal("fresh question already has a selection")
			}

			seen := make(map[string]bool)
			for _, o := range q.Options {
				if seen[o] {
					t.Fatalf("duplicate option %q in %+v", o, q)
				}
				seen[o] = true
			}

			correct := q.CorrectAnswer()
			switch q.Kind {
			case entities.QuestionKindMeaning:
				if correct != target.Meaning {
					t.Errorf("meaning question for %q: correct = %q", target.Transliteration, correct)
				}
			case entities.QuestionKindName:
				if correct != target.Transliteration {
					t.Errorf("name question for %q: correct = %q", target.Transliteration, correct)
				}
			case entities.QuestionKindPairing:
				if correct != target.Transliteration+" - "+target.Meaning {
					t.Errorf("pairing question: correct = %q", correct)
				}
				for i, o := range q.Options {
					if i != q.CorrectIndex && realPairings[o] {
						t.Errorf("distractor %q is a real pairing", o)
					}
				}
			case entities.QuestionKindTrueFalse:
				if !reflect.DeepEqual(q.Options, []string{"True", "False"}) {
					t.Errorf("true/false options = %v", q.Options)
				}
				asserted := fmt.Sprintf("True or False: '%s' means '%s'", target.Transliteration, target.Meaning)
				if (q.Prompt == asserted) != (q.CorrectIndex == 0) {
					t.Errorf("prompt %q does not agree with correct index %d", q.Prompt, q.CorrectIndex)
				}
				if !strings.HasPrefix(q.Prompt, "True or False: '"+target.Transliteration+"'") {
					t.Errorf("prompt %q does not name %q", q.Prompt, target.Transliteration)
				}
			default:
				t.Errorf("unknown kind %q", q.Kind)
			}
		}
	}
}

func TestGenerateSmallRegistry(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 5, 6} {
		g := NewQuizGenerator(smallRegistry(size), rand.New(rand.NewSource(int64(size))))

		questions := g.Generate(10)
		if len(questions) > 10 {
			t.Errorf("size %d: %d questions, want at most 10", size, len(questions))
		}
		for _, q := range questions {
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Errorf("size %d: correct index %d out of range", size, q.CorrectIndex)
			}
		}
	}
}

func TestGenerateThreeNamesOnlyTrueFalse(t *testing.T) {
	g := NewQuizGenerator(smallRegistry(3), rand.New(rand.NewSource(7)))

	questions := g.Generate(10)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want the 2 true/false ones", len(questions))
	}
	for _, q := range questions {
		if q.Kind != entities.QuestionKindTrueFalse {
			t.Errorf("kind = %s, want true_false", q.Kind)
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	registry := repository.NewNameRepository()

	a := NewQuizGenerator(registry, rand.New(rand.NewSource(42))).Generate(10)
	b := NewQuizGenerator(registry, rand.New(rand.NewSource(42))).Generate(10)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different batches")
	}
}

func TestBuildOptionsWithCorrect(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 50 {
		options, idx := buildOptionsWithCorrect(rng, "right", []string{"a", "b", "c"})
		if len(options) != 4 || options[idx] != "right" {
			t.Fatalf("options = %v, idx = %d", options, idx)
		}
	}
}

func TestSampleWithout(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	if got := sampleWithout(rng, []string{"a", "b", "c"}, "a", 3); got != nil {
		t.Errorf("expected nil when the pool is too small, got %v", got)
	}

	got := sampleWithout(rng, []string{"a", "b", "c", "d"}, "a", 3)
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	for _, v := range got {
		if v == "a" {
			t.Error("excluded value sampled")
		}
	}
}
