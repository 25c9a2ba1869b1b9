package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

const (
	// DefaultQuestionCount is the batch size used when none is configured.
	DefaultQuestionCount = 10

	distractorsPerQuestion = 3
	maxPairingAttempts     = 20

	answerTrue  = "True"
	answerFalse = "False"
)

// NameSource is the read side of the name registry used by the generator.
type NameSource interface {
	GetAll() []entities.Name
	GetMeaning(name string) string
}

type namePair struct {
	number  int
	name    string
	meaning string
}

func (p namePair) pairing() string {
	return formatPairing(p.name, p.meaning)
}

func formatPairing(name, meaning string) string {
	return name + " - " + meaning
}

// QuizGenerator synthesizes shuffled multiple-choice question batches from the registry.
// It is safe for concurrent use.
type QuizGenerator struct {
	names NameSource

	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizGenerator creates a QuizGenerator. A nil rng is replaced by a time-seeded one.
func NewQuizGenerator(names NameSource, rng *rand.Rand) *QuizGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuizGenerator{
		names: names,
		rng:   rng,
	}
}

// Generate returns at most count questions. Meaning and name questions take a
// third of the count each, pairing questions fill the rest, and count/5
// true/false questions are added on top before the batch is shuffled and cut
// back to count. Questions that cannot get enough distinct distractors are
// left out, so small registries yield shorter batches.
func (g *QuizGenerator) Generate(count int) []entities.Question {
	if count <= 0 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	pairs := g.pairs()
	if len(pairs) == 0 {
		return nil
	}

	names := make([]string, 0, len(pairs))
	meanings := make([]string, 0, len(pairs))
	for _, p := range pairs {
		names = append(names, p.name)
		meanings = append(meanings, p.meaning)
	}
	names = uniqueStrings(names)
	meanings = uniqueStrings(meanings)

	questions := make([]entities.Question, 0, count+count/5)

	for i := 0; i < count/3; i++ {
		if q, ok := g.meaningQuestion(g.pick(pairs), meanings); ok {
			questions = append(questions, q)
		}
	}

	for i := 0; i < count/3; i++ {
		if q, ok := g.nameQuestion(g.pick(pairs), names); ok {
			questions = append(questions, q)
		}
	}

	remaining := count - len(questions)
	for i := 0; i < remaining; i++ {
		if q, ok := g.pairingQuestion(g.pick(pairs), pairs, meanings); ok {
			questions = append(questions, q)
		}
	}

	for i := 0; i < count/5; i++ {
		if q, ok := g.trueFalseQuestion(g.pick(pairs), meanings); ok {
			questions = append(questions, q)
		}
	}

	g.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	if len(questions) > count {
		questions = questions[:count]
	}

	return questions
}

func (g *QuizGenerator) pairs() []namePair {
	all := g.names.GetAll()
	pairs := make([]namePair, 0, len(all))
	for _, n := range all {
		pairs = append(pairs, namePair{
			number:  n.Number,
			name:    n.Transliteration,
			meaning: g.names.GetMeaning(n.Transliteration),
		})
	}
	return pairs
}

func (g *QuizGenerator) pick(pairs []namePair) namePair {
	return pairs[g.rng.Intn(len(pairs))]
}

// meaningQuestion asks for the meaning of a name.
func (g *QuizGenerator) meaningQuestion(target namePair, meanings []string) (entities.Question, bool) {
	distractors := sampleWithout(g.rng, meanings, target.meaning, distractorsPerQuestion)
	if distractors == nil {
		return entities.Question{}, false
	}

	options, correctIndex := buildOptionsWithCorrect(g.rng, target.meaning, distractors)

	return entities.Question{
		Kind:         entities.QuestionKindMeaning,
		NameNumber:   target.number,
		Prompt:       fmt.Sprintf("What is the meaning of %s?", target.name),
		Options:      options,
		CorrectIndex: correctIndex,
	}, true
}

// nameQuestion asks which name carries a meaning.
func (g *QuizGenerator) nameQuestion(target namePair, names []string) (entities.Question, bool) {
	distractors := sampleWithout(g.rng, names, target.name, distractorsPerQuestion)
	if distractors == nil {
		return entities.Question{}, false
	}

	options, correctIndex := buildOptionsWithCorrect(g.rng, target.name, distractors)

	return entities.Question{
		Kind:         entities.QuestionKindName,
		NameNumber:   target.number,
		Prompt:       fmt.Sprintf("Which name means '%s'?", target.meaning),
		Options:      options,
		CorrectIndex: correctIndex,
	}, true
}

// pairingQuestion asks which "name - meaning" option is a true pairing.
func (g *QuizGenerator) pairingQuestion(target namePair, pairs []namePair, meanings []string) (entities.Question, bool) {
	distractors := g.pairingDistractors(target, pairs, meanings)
	if len(distractors) < distractorsPerQuestion {
		return entities.Question{}, false
	}

	correct := target.pairing()
	options, correctIndex := buildOptionsWithCorrect(g.rng, correct, distractors)

	return entities.Question{
		Kind:         entities.QuestionKindPairing,
		NameNumber:   target.number,
		Prompt:       "Which of these pairings is correct?",
		Options:      options,
		CorrectIndex: correctIndex,
	}, true
}

// pairingDistractors combines other names with other meanings. Random draws
// are bounded by maxPairingAttempts, after which the remaining slots are
// filled by scanning combinations in registry order. A combination that is a
// real pairing of another name is never used.
func (g *QuizGenerator) pairingDistractors(target namePair, pairs []namePair, meanings []string) []string {
	others := make([]namePair, 0, len(pairs))
	for _, p := range pairs {
		if p.name != target.name {
			others = append(others, p)
		}
	}
	wrongMeanings := make([]string, 0, len(meanings))
	for _, m := range meanings {
		if m != target.meaning {
			wrongMeanings = append(wrongMeanings, m)
		}
	}
	if len(others) == 0 || len(wrongMeanings) == 0 {
		return nil
	}

	correct := target.pairing()
	used := make(map[string]struct{}, distractorsPerQuestion)
	out := make([]string, 0, distractorsPerQuestion)

	accept := func(p namePair, meaning string) {
		if meaning == p.meaning {
			return
		}
		option := formatPairing(p.name, meaning)
		if option == correct {
			return
		}
		if _, dup := used[option]; dup {
			return
		}
		used[option] = struct{}{}
		out = append(out, option)
	}

	for attempt := 0; attempt < maxPairingAttempts && len(out) < distractorsPerQuestion; attempt++ {
		p := others[g.rng.Intn(len(others))]
		m := wrongMeanings[g.rng.Intn(len(wrongMeanings))]
		accept(p, m)
	}

	for _, p := range others {
		for _, m := range wrongMeanings {
			if len(out) >= distractorsPerQuestion {
				return out
			}
			accept(p, m)
		}
	}

	return out
}

// trueFalseQuestion asserts a pairing that is correct half of the time.
// The prompt always shows the meaning that is actually asserted.
func (g *QuizGenerator) trueFalseQuestion(target namePair, meanings []string) (entities.Question, bool) {
	wrong := sampleWithout(g.rng, meanings, target.meaning, 1)
	if wrong == nil {
		return entities.Question{}, false
	}

	isCorrect := g.rng.Intn(2) == 0
	displayed := wrong[0]
	correctIndex := 1
	if isCorrect {
		displayed = target.meaning
		correctIndex = 0
	}

	return entities.Question{
		Kind:         entities.QuestionKindTrueFalse,
		NameNumber:   target.number,
		Prompt:       fmt.Sprintf("True or False: '%s' means '%s'", target.name, displayed),
		Options:      []string{answerTrue, answerFalse},
		CorrectIndex: correctIndex,
	}, true
}
