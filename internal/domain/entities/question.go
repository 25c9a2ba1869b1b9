package entities

// QuestionKind identifies how a quiz question was built.
type QuestionKind string

const (
	QuestionKindMeaning   QuestionKind = "meaning"    // name shown, pick its meaning
	QuestionKindName      QuestionKind = "name"       // meaning shown, pick the name
	QuestionKindPairing   QuestionKind = "pairing"    // pick the correct "name - meaning" pair
	QuestionKindTrueFalse QuestionKind = "true_false" // assertion about a pairing
)

// Question is a single multiple-choice quiz question.
type Question struct {
	Kind          QuestionKind
	NameNumber    int
	Prompt        string
	Options       []string // 4 options, or 2 for true/false
	CorrectIndex  int
	SelectedIndex *int // set by the session, nil until the user picks
}

// CorrectAnswer returns the text of the correct option.
func (q Question) CorrectAnswer() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// IsAnswered reports whether an option has been selected.
func (q Question) IsAnswered() bool {
	return q.SelectedIndex != nil
}

// IsCorrect reports whether the selected option is the correct one.
func (q Question) IsCorrect() bool {
	return q.SelectedIndex != nil && *q.SelectedIndex == q.CorrectIndex
}
