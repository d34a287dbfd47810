// Package viewstate holds the roadmap view's state machine and its accordion
// and answer-reveal flags.
//
// State is a value. Every transition returns a new State and leaves the
// receiver untouched, so a single owner can keep it without locking.
package viewstate

import (
	"strings"

	"github.com/google/uuid"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
)

// Status is the phase of the view.
type Status int

const (
	Idle Status = iota
	Generating
	Ready
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	case Ready:
		return "ready"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// NoModule is the expanded index when every module is collapsed.
const NoModule = -1

// QuizKey identifies one quiz instance: a module quiz or the final assessment.
type QuizKey struct {
	Final  bool
	Module int
}

// ModuleQuiz is the key of module i's quiz.
func ModuleQuiz(i int) QuizKey {
	return QuizKey{Module: i}
}

// FinalAssessment is the key of the final assessment quiz.
func FinalAssessment() QuizKey {
	return QuizKey{Final: true, Module: NoModule}
}

// State is the complete view state.
type State struct {
	status       Status
	topic        string
	generationID string
	roadmap      *roadmap.Roadmap
	errMsg       string
	expanded     int
	finalVisible bool
	revealed     map[QuizKey]bool
}

// New returns the initial Idle state.
func New() State {
	return State{status: Idle, expanded: NoModule}
}

// Submit starts a generation for topic. It returns ok=false and the unchanged
// state when topic is blank or a generation is already running. On success the
// previous roadmap, error and UI flags are cleared and a fresh generation ID is
// allocated.
func (s State) Submit(topic string) (State, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" || !s.CanSubmit() {
		return s, false
	}
	return State{
		status:       Generating,
		topic:        topic,
		generationID: uuid.NewString(),
		expanded:     NoModule,
	}, true
}

// Resolve applies the outcome of generation id. Results for any other id, or
// arriving outside Generating, are dropped.
func (s State) Resolve(id string, r *roadmap.Roadmap, err error) State {
	if s.status != Generating || id == "" || id != s.generationID {
		return s
	}
	if err == nil && r == nil {
		err = roadmap.ErrNoResponse
	}

	next := s
	if err != nil {
		next.status = Error
		next.errMsg = roadmap.UserMessage(err)
		next.roadmap = nil
		next.expanded = NoModule
		return next
	}

	next.status = Ready
	next.roadmap = r
	next.errMsg = ""
	next.finalVisible = false
	next.revealed = nil
	next.expanded = NoModule
	if len(r.Modules) > 0 {
		next.expanded = 0
	}
	return next
}

// ToggleModule applies accordion semantics to module i: the expanded module
// collapses, any other valid index replaces it, and an out-of-range index is
// ignored.
func (s State) ToggleModule(i int) State {
	if s.roadmap == nil || i < 0 || i >= len(s.roadmap.Modules) {
		return s
	}
	next := s
	if s.expanded == i {
		next.expanded = NoModule
	} else {
		next.expanded = i
	}
	return next
}

// ToggleFinalAssessment flips the final assessment's visibility.
func (s State) ToggleFinalAssessment() State {
	next := s
	next.finalVisible = !s.finalVisible
	return next
}

// ToggleQuizAnswers flips the answer-reveal flag of one quiz instance.
func (s State) ToggleQuizAnswers(key QuizKey) State {
	revealed := make(map[QuizKey]bool, len(s.revealed)+1)
	for k, v := range s.revealed {
		revealed[k] = v
	}
	if revealed[key] {
		delete(revealed, key)
	} else {
		revealed[key] = true
	}

	next := s
	next.revealed = revealed
	return next
}

// IsExpanded reports whether module i is the expanded one.
func (s State) IsExpanded(i int) bool {
	return i != NoModule && s.expanded == i
}

// AnswersRevealed reports whether key's answers are shown.
func (s State) AnswersRevealed(key QuizKey) bool {
	return s.revealed[key]
}

// CanSubmit is false while a generation is running.
func (s State) CanSubmit() bool {
	return s.status != Generating
}

// IsCorrectOption reports whether option should be marked correct. Nothing is
// marked while answers are hidden, and nothing is marked when the question's
// correct_answer names no option.
func IsCorrectOption(q roadmap.QuizQuestion, option string, revealed bool) bool {
	return revealed && q.IsCorrect(option)
}

func (s State) Status() Status { return s.status }
func (s State) Topic() string { return s.topic }
func (s State) GenerationID() string { return s.generationID }
func (s State) Roadmap() *roadmap.Roadmap { return s.roadmap }
func (s State) ErrorMessage() string { return s.errMsg }
func (s State) Expanded() int { return s.expanded }
func (s State) FinalVisible() bool { return s.finalVisible }
