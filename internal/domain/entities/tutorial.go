package entities

// TutorialFlag names a persisted "has seen tutorial" marker.
type TutorialFlag string

const (
	FlagSeenTutorial      TutorialFlag = "has_seen_tutorial"
	FlagSeenCardTutorial  TutorialFlag = "has_seen_card_tutorial"
	FlagSeenQuizTutorial  TutorialFlag = "has_seen_quiz_tutorial"
	FlagSeenNamesTutorial TutorialFlag = "has_seen_names_tutorial"
	FlagSeenDuaTutorial   TutorialFlag = "has_seen_dua_tutorial"
)

// TutorialFlagList lists every known flag.
var TutorialFlagList = []TutorialFlag{
	FlagSeenTutorial,
	FlagSeenCardTutorial,
	FlagSeenQuizTutorial,
	FlagSeenNamesTutorial,
	FlagSeenDuaTutorial,
}

// Valid reports whether the flag is one of the known flags.
func (f TutorialFlag) Valid() bool {
	for _, known := range TutorialFlagList {
		if f == known {
			return true
		}
	}
	return false
}

// TutorialFlags holds flag values for one user. Missing flags read as false.
type TutorialFlags map[TutorialFlag]bool

// Seen reports whether the flag is set.
func (f TutorialFlags) Seen(flag TutorialFlag) bool {
	return f[flag]
}

// TutorialTab is a section of the app that has its own tutorial.
type TutorialTab string

const (
	TabHome   TutorialTab = "home"
	TabCards  TutorialTab = "cards"
	TabQuiz   TutorialTab = "quiz"
	TabNames  TutorialTab = "names"
	TabDuas   TutorialTab = "duas"
	TabDetail TutorialTab = "detail"
)

// Flag returns the per-tab flag. Home and detail have none.
func (t TutorialTab) Flag() (TutorialFlag, bool) {
	switch t {
	case TabCards:
		return FlagSeenCardTutorial, true
	case TabQuiz:
		return FlagSeenQuizTutorial, true
	case TabNames:
		return FlagSeenNamesTutorial, true
	case TabDuas:
		return FlagSeenDuaTutorial, true
	default:
		return "", false
	}
}

// TutorialStep is one tooltip of a tutorial.
type TutorialStep struct {
	Title       string
	Description string
	ButtonText  string
}

var tutorialSteps = map[TutorialTab][]TutorialStep{
	TabHome: {
		{"Welcome to 99 Names of Allah", "This bot will help you learn and understand the beautiful names of Allah through various interactive methods.", "Next"},
		{"Home Screen Navigation", "The main menu gives you quick access to every section. Tap any button to open it.", "Next"},
		{"Names and Explanations", "Browse the complete list of the 99 names with detailed explanations.", "Next"},
		{"Flashcard Learning", "Use flashcards to memorize the names and their meanings.", "Next"},
		{"Duas with 99 Names", "Discover duas (supplications) associated with the 99 names of Allah.", "Next"},
		{"Test Your Knowledge", "Challenge yourself with quizzes to reinforce your learning.", "Got it!"},
	},
	TabCards: {
		{"Welcome to Flashcards!", "Let's quickly go through the main features of the cards.", "Next"},
		{"Flip Cards", "Tap Flip to see the meaning of each card.", "Next"},
		{"Navigate Cards", "Use the arrows to move between cards in your deck.", "Next"},
		{"Jump to Card", "Send a number to jump directly to a specific card.", "Got it!"},
	},
	TabQuiz: {
		{"Quiz Mode", "Test your knowledge by answering questions about the names.", "Next"},
		{"Multiple Choice", "Select the correct answer from the options provided.", "Next"},
		{"Results", "After completing the quiz, you'll see your score and can try again if needed.", "Got it!"},
	},
	TabNames: {
		{"99 Names View", "This view allows you to explore all 99 Names of Allah.", "Next"},
		{"Categories", "Filter names by categories using the color-coded buttons.", "Next"},
		{"Jump to Name", "Enter a number to go directly to a specific name.", "Next"},
		{"Name Details", "Tap on any name to see detailed information about it.", "Got it!"},
	},
	TabDuas: {
		{"Dua Search", "Find duas related to specific qualities or names of Allah.", "Next"},
		{"Filter by Quality", "Tap on a quality to see related duas.", "Next"},
		{"Search by Name", "Send /dua followed by a name to find duas by name.", "Next"},
		{"Dua Details", "Each result shows the Arabic text, translation, source and usage.", "Got it!"},
	},
	TabDetail: {
		{"Name Details", "This view shows all information about a specific Name of Allah.", "Next"},
		{"Arabic Text", "View the original Arabic text and its translation.", "Next"},
		{"Meaning & Context", "Read the meaning, description, and Quranic context.", "Got it!"},
	},
}

// TutorialSteps returns the steps of a tab's tutorial, or nil for an unknown tab.
func TutorialSteps(tab TutorialTab) []TutorialStep {
	return tutorialSteps[tab]
}
