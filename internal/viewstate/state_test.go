package viewstate

import (
	"errors"
	"testing"

	"github.com/josephgoksu/roadmapper/internal/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeModules() *roadmap.Roadmap {
	quiz := func(level string) []roadmap.QuizQuestion {
		qs := make([]roadmap.QuizQuestion, 5)
		for i := range qs {
			qs[i] = roadmap.QuizQuestion{
				Question:      level + " question",
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: "B",
			}
		}
		return qs
	}
	r := &roadmap.Roadmap{Topic: "Pottery"}
	for _, level := range []string{"Beginner", "Intermediate", "Advanced"} {
		r.Modules = append(r.Modules, roadmap.Module{
			Level:   level,
			Title:   level + " clay",
			Quiz:    quiz(level),
			Project: roadmap.Project{Title: level + " project"},
		})
	}
	return r
}

func submitted(t *testing.T, s State) State {
	t.Helper()
	next, ok := s.Submit("Pottery")
	require.True(t, ok)
	return next
}

func ready(t *testing.T) State {
	t.Helper()
	s := submitted(t, New())
	return s.Resolve(s.GenerationID(), threeModules(), nil)
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, Idle, s.Status())
	assert.Equal(t, NoModule, s.Expanded())
	assert.False(t, s.FinalVisible())
	assert.Nil(t, s.Roadmap())
	assert.True(t, s.CanSubmit())
}

func TestSubmit_FromEveryResting(t *testing.T) {
	failed := submitted(t, New())
	failed = failed.Resolve(failed.GenerationID(), nil, errors.New("timeout"))

	for name, s := range map[string]State{"idle": New(), "ready": ready(t), "error": failed} {
		t.Run(name, func(t *testing.T) {
			next, ok := s.Submit("  Pottery  ")
			require.True(t, ok)
			assert.Equal(t, Generating, next.Status())
			assert.Equal(t, "Pottery", next.Topic())
			assert.NotEmpty(t, next.GenerationID())
			assert.NotEqual(t, s.GenerationID(), next.GenerationID())
			assert.Nil(t, next.Roadmap())
			assert.Empty(t, next.ErrorMessage())
			assert.False(t, next.CanSubmit())
		})
	}
}

func TestSubmit_BlankIsNoop(t *testing.T) {
	for _, topic := range []string{"", " ", "\t\n  "} {
		s := ready(t)
		next, ok := s.Submit(topic)
		assert.False(t, ok)
		assert.Equal(t, s, next)
	}
}

func TestSubmit_WhileGeneratingIsNoop(t *testing.T) {
	s := submitted(t, New())
	next, ok := s.Submit("Woodworking")
	assert.False(t, ok)
	assert.Equal(t, s.GenerationID(), next.GenerationID())
	assert.Equal(t, "Pottery", next.Topic())
}

func TestSubmit_ResetsAuxiliaryState(t *testing.T) {
	s := ready(t).
		ToggleModule(2).
		ToggleFinalAssessment().
		ToggleQuizAnswers(ModuleQuiz(1)).
		ToggleQuizAnswers(FinalAssessment())

	next := submitted(t, s)
	assert.Equal(t, NoModule, next.Expanded())
	assert.False(t, next.FinalVisible())
	assert.False(t, next.AnswersRevealed(ModuleQuiz(1)))
	assert.False(t, next.AnswersRevealed(FinalAssessment()))

	done := next.Resolve(next.GenerationID(), threeModules(), nil)
	assert.Equal(t, 0, done.Expanded())
	assert.False(t, done.FinalVisible())
	assert.False(t, done.AnswersRevealed(ModuleQuiz(1)))
}

func TestResolve_Success(t *testing.T) {
	s := ready(t)
	assert.Equal(t, Ready, s.Status())
	assert.Equal(t, 0, s.Expanded())
	assert.True(t, s.IsExpanded(0))
	assert.False(t, s.IsExpanded(1))
	assert.False(t, s.IsExpanded(2))
	assert.False(t, s.FinalVisible())
	require.NotNil(t, s.Roadmap())
	assert.Len(t, s.Roadmap().Modules, 3)
}

func TestResolve_NoModules(t *testing.T) {
	s := submitted(t, New())
	s = s.Resolve(s.GenerationID(), &roadmap.Roadmap{Topic: "Pottery"}, nil)
	assert.Equal(t, Ready, s.Status())
	assert.Equal(t, NoModule, s.Expanded())
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "provider", err: &roadmap.ProviderError{Provider: "gemini", Err: errors.New("timeout")}, want: "timeout"},
		{name: "empty", err: roadmap.ErrNoResponse, want: "No response from AI"},
		{name: "malformed", err: roadmap.ErrMalformedResponse, want: "Failed to generate a valid roadmap structure. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := submitted(t, New())
			s = s.Resolve(s.GenerationID(), nil, tt.err)
			assert.Equal(t, Error, s.Status())
			assert.Equal(t, tt.want, s.ErrorMessage())
			assert.Nil(t, s.Roadmap())
			assert.True(t, s.CanSubmit())
		})
	}
}

func TestResolve_NilRoadmapWithoutErrorIsNoResponse(t *testing.T) {
	s := submitted(t, New())
	s = s.Resolve(s.GenerationID(), nil, nil)
	assert.Equal(t, Error, s.Status())
	assert.Equal(t, "No response from AI", s.ErrorMessage())
}

func TestResolve_IgnoresStaleResults(t *testing.T) {
	first := submitted(t, New())
	staleID := first.GenerationID()
	first = first.Resolve(staleID, nil, errors.New("boom"))

	second := submitted(t, first)
	after := second.Resolve(staleID, threeModules(), nil)
	assert.Equal(t, second, after)
	assert.Equal(t, Generating, after.Status())

	done := ready(t)
	assert.Equal(t, done, done.Resolve(done.GenerationID(), nil, errors.New("late")))
	assert.Equal(t, New(), New().Resolve("", threeModules(), nil))
}

func TestToggleModule_Accordion(t *testing.T) {
	s := ready(t)

	collapsed := s.ToggleModule(0)
	assert.Equal(t, NoModule, collapsed.Expanded())

	replaced := s.ToggleModule(2)
	assert.Equal(t, 2, replaced.Expanded())
	assert.False(t, replaced.IsExpanded(0))

	reopened := collapsed.ToggleModule(1)
	assert.Equal(t, 1, reopened.Expanded())

	assert.Equal(t, 0, s.Expanded(), "receiver is unchanged")
}

func TestToggleModule_OutOfRange(t *testing.T) {
	s := ready(t)
	for _, i := range []int{-1, 3, 99} {
		assert.Equal(t, s, s.ToggleModule(i))
	}

	idle := New()
	assert.Equal(t, idle, idle.ToggleModule(0))
}

func TestToggleFinalAssessment(t *testing.T) {
	s := ready(t)
	shown := s.ToggleFinalAssessment()
	assert.True(t, shown.FinalVisible())
	assert.False(t, shown.ToggleFinalAssessment().FinalVisible())
	assert.False(t, s.FinalVisible())
}

func TestToggleQuizAnswers_DoubleToggle(t *testing.T) {
	s := ready(t)
	for _, key := range []QuizKey{ModuleQuiz(0), ModuleQuiz(2), FinalAssessment()} {
		once := s.ToggleQuizAnswers(key)
		assert.True(t, once.AnswersRevealed(key))
		twice := once.ToggleQuizAnswers(key)
		assert.Equal(t, s.AnswersRevealed(key), twice.AnswersRevealed(key))
	}
}

func TestToggleQuizAnswers_Independent(t *testing.T) {
	s := ready(t).ToggleQuizAnswers(FinalAssessment())
	assert.True(t, s.AnswersRevealed(FinalAssessment()))
	for i := 0; i < 3; i++ {
		assert.False(t, s.AnswersRevealed(ModuleQuiz(i)))
	}

	s = s.ToggleQuizAnswers(ModuleQuiz(1))
	assert.True(t, s.AnswersRevealed(ModuleQuiz(1)))
	assert.False(t, s.AnswersRevealed(ModuleQuiz(0)))
	assert.True(t, s.AnswersRevealed(FinalAssessment()))
}

func TestToggleQuizAnswers_CopyOnWrite(t *testing.T) {
	base := ready(t).ToggleQuizAnswers(ModuleQuiz(0))
	branch := base.ToggleQuizAnswers(ModuleQuiz(1))

	assert.False(t, base.AnswersRevealed(ModuleQuiz(1)))
	assert.True(t, branch.AnswersRevealed(ModuleQuiz(1)))
}

func TestToggles_WhileGenerating(t *testing.T) {
	s := submitted(t, New())
	s = s.ToggleFinalAssessment().ToggleQuizAnswers(FinalAssessment())
	assert.Equal(t, Generating, s.Status())
	assert.True(t, s.FinalVisible())
}

func TestIsCorrectOption(t *testing.T) {
	q := roadmap.QuizQuestion{Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "C"}

	var marked []string
	for _, opt := range q.Options {
		if IsCorrectOption(q, opt, true) {
			marked = append(marked, opt)
		}
		assert.False(t, IsCorrectOption(q, opt, false))
	}
	assert.Equal(t, []string{"C"}, marked)

	bad := roadmap.QuizQuestion{Options: []string{"A", "B"}, CorrectAnswer: "Z"}
	for _, opt := range bad.Options {
		assert.False(t, IsCorrectOption(bad, opt, true))
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "generating", Generating.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "unknown", Status(42).String())
}
