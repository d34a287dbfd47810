package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
	"github.com/josephgoksu/roadmapper/internal/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoadmapModel_Idle(t *testing.T) {
	m := NewRoadmapModel(context.Background(), stubGenerator{}, "   ", nil)
	assert.Equal(t, viewstate.Idle, m.State.Status())
	assert.True(t, m.Input.Focused())
	assert.Contains(t, m.View(), "Enter a topic")
}

func TestNewRoadmapModel_WithTopicStartsGenerating(t *testing.T) {
	m := NewRoadmapModel(context.Background(), stubGenerator{}, "Pottery", nil)
	assert.Equal(t, viewstate.Generating, m.State.Status())
	assert.Equal(t, "Pottery", m.Input.Value())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), `Generating a roadmap for "Pottery"`)
}

func TestSubmitFromInput(t *testing.T) {
	m := NewRoadmapModel(context.Background(), stubGenerator{}, "", nil)
	m = press(m, "P", "o", "t", "t", "e", "r", "y")
	require.Equal(t, "Pottery", m.Input.Value())

	m, cmd := update(m, keyMsg("enter"))
	assert.NotNil(t, cmd)
	assert.Equal(t, viewstate.Generating, m.State.Status())
	assert.Equal(t, "Pottery", m.State.Topic())
	assert.False(t, m.Input.Focused())
}

func TestSubmitBlankIsInert(t *testing.T) {
	m := NewRoadmapModel(context.Background(), stubGenerator{}, "", nil)
	m = press(m, " ", " ")

	m, cmd := update(m, keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, viewstate.Idle, m.State.Status())
}

func TestSubmitWhileGeneratingIsInert(t *testing.T) {
	m := NewRoadmapModel(context.Background(), stubGenerator{}, "Pottery", nil)
	id := m.State.GenerationID()

	m = press(m, "n", "J", "a", "z", "z")
	require.True(t, m.Input.Focused())
	m, cmd := update(m, keyMsg("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, id, m.State.GenerationID())
	assert.Equal(t, "Pottery", m.State.Topic())
}

func TestGenerateCommand(t *testing.T) {
	want := testRoadmap()
	msg := generate(context.Background(), stubGenerator{roadmap: want}, "gen-1", "Pottery")()

	finished, ok := msg.(MsgGenerationFinished)
	require.True(t, ok)
	assert.Equal(t, "gen-1", finished.ID)
	assert.Same(t, want, finished.Roadmap)
	assert.NoError(t, finished.Err)
}

func TestPotteryEndToEnd(t *testing.T) {
	m := readyModel()

	require.Equal(t, viewstate.Ready, m.State.Status())
	assert.Equal(t, 0, m.State.Expanded())
	assert.False(t, m.State.FinalVisible())

	view := m.View()
	assert.Contains(t, view, "Foundations of Clay")
	assert.Contains(t, view, "Wheel Throwing")
	assert.Contains(t, view, "Glazes and Firing")
	assert.Contains(t, view, "Clay Bodies", "module 0 subtopics are shown")
	assert.NotContains(t, view, "Centering", "module 1 subtopics stay hidden")
	assert.NotContains(t, view, "Glaze Chemistry", "module 2 subtopics stay hidden")
	assert.NotContains(t, view, "Final question 1?")

	m = press(m, "2")
	view = m.View()
	assert.Contains(t, view, "Centering")
	assert.NotContains(t, view, "Clay Bodies")
}

func TestProviderTimeoutEndToEnd(t *testing.T) {
	gen := stubGenerator{err: &roadmap.ProviderError{Provider: "gemini", Err: errors.New("timeout")}}
	m := NewRoadmapModel(context.Background(), gen, "Pottery", nil)

	msg := generate(m.ctx, gen, m.State.GenerationID(), "Pottery")()
	m, _ = update(m, msg)

	assert.Equal(t, viewstate.Error, m.State.Status())
	assert.Equal(t, "timeout", m.State.ErrorMessage())
	assert.Nil(t, m.State.Roadmap())
	assert.True(t, m.Input.Focused())
	assert.Contains(t, m.View(), "timeout")
}

func TestMalformedResponseEndToEnd(t *testing.T) {
	req, err := roadmap.NewRequester(roadmap.Options{Generator: textGenerator{text: `"not json"`}, Provider: "gemini"})
	require.NoError(t, err)

	m := NewRoadmapModel(context.Background(), req, "Pottery", nil)
	msg := generate(m.ctx, req, m.State.GenerationID(), "Pottery")()
	m, _ = update(m, msg)

	assert.Equal(t, viewstate.Error, m.State.Status())
	assert.Equal(t, "Failed to generate a valid roadmap structure. Please try again.", m.State.ErrorMessage())
	assert.NotContains(t, m.View(), "not json")
}

func TestStaleResultIsDropped(t *testing.T) {
	m := NewRoadmapModel(context.Background(), stubGenerator{}, "Pottery", nil)

	m, cmd := update(m, MsgGenerationFinished{ID: "someone-else", Roadmap: testRoadmap()})
	assert.Nil(t, cmd)
	assert.Equal(t, viewstate.Generating, m.State.Status())

	ready := readyModel()
	after, _ := update(ready, MsgGenerationFinished{ID: ready.State.GenerationID(), Err: errors.New("late")})
	assert.Equal(t, viewstate.Ready, after.State.Status())
}

func TestBrowseKeys(t *testing.T) {
	m := readyModel()

	t.Run("jump toggles accordion", func(t *testing.T) {
		next := press(m, "3")
		assert.Equal(t, 2, next.State.Expanded())
		assert.Equal(t, 2, next.Cursor)

		next = press(next, "3")
		assert.Equal(t, viewstate.NoModule, next.State.Expanded())

		next = press(next, "9")
		assert.Equal(t, viewstate.NoModule, next.State.Expanded(), "out of range is ignored")
	})

	t.Run("cursor and toggle", func(t *testing.T) {
		next := press(m, "down", "down", "down")
		assert.Equal(t, 2, next.Cursor, "cursor stops at last module")

		next = press(next, "enter")
		assert.Equal(t, 2, next.State.Expanded())

		next = press(next, "up", " ")
		assert.Equal(t, 1, next.State.Expanded())
	})

	t.Run("answers", func(t *testing.T) {
		next := press(m, "a")
		assert.True(t, next.State.AnswersRevealed(viewstate.ModuleQuiz(0)))
		assert.False(t, next.State.AnswersRevealed(viewstate.FinalAssessment()))
		assert.Contains(t, next.View(), "✓")

		next = press(next, "a")
		assert.False(t, next.State.AnswersRevealed(viewstate.ModuleQuiz(0)))
	})

	t.Run("answers without expanded module", func(t *testing.T) {
		next := press(m, "1", "a")
		assert.Equal(t, viewstate.NoModule, next.State.Expanded())
		assert.False(t, next.State.AnswersRevealed(viewstate.ModuleQuiz(0)))
	})

	t.Run("final assessment", func(t *testing.T) {
		next := press(m, "f")
		assert.True(t, next.State.FinalVisible())
		assert.Contains(t, next.View(), "Final question 1?")

		next = press(next, "A")
		assert.True(t, next.State.AnswersRevealed(viewstate.FinalAssessment()))
		assert.False(t, next.State.AnswersRevealed(viewstate.ModuleQuiz(0)))
	})

	t.Run("new topic focuses input", func(t *testing.T) {
		next := press(m, "n")
		assert.True(t, next.Input.Focused())
		assert.Empty(t, next.Input.Value())

		next = press(next, "esc")
		assert.False(t, next.Input.Focused())
	})
}

func TestTogglesStayResponsiveWhileGenerating(t *testing.T) {
	m := NewRoadmapModel(context.Background(), stubGenerator{}, "Pottery", nil)
	m = press(m, "f")
	assert.True(t, m.State.FinalVisible())
	assert.Equal(t, viewstate.Generating, m.State.Status())
}

func TestResubmitResetsView(t *testing.T) {
	m := press(readyModel(), "3", "f", "A", "n", "J", "a", "z", "z")
	m, cmd := update(m, keyMsg("enter"))
	require.NotNil(t, cmd)

	assert.Equal(t, viewstate.Generating, m.State.Status())
	assert.Equal(t, "Jazz", m.State.Topic())
	assert.Nil(t, m.State.Roadmap())
	assert.False(t, m.State.FinalVisible())
	assert.False(t, m.State.AnswersRevealed(viewstate.FinalAssessment()))
	assert.Equal(t, viewstate.NoModule, m.State.Expanded())
}

func TestQuitCancelsInFlightGeneration(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := NewRoadmapModel(context.Background(), stubGenerator{roadmap: testRoadmap()}, "Pottery", nil)
			m = press(m, "esc")

			m, cmd := update(m, keyMsg(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Error(t, m.ctx.Err())

			msg := generate(m.ctx, stubGenerator{roadmap: testRoadmap()}, m.State.GenerationID(), "Pottery")()
			assert.ErrorIs(t, msg.(MsgGenerationFinished).Err, context.Canceled)
		})
	}
}

func TestWindowResize(t *testing.T) {
	m := readyModel()
	m, _ = update(m, tea.WindowSizeMsg{Width: 60, Height: 4})
	assert.Equal(t, 60, m.Viewport.Width)
	assert.Equal(t, MinViewportHeight, m.Viewport.Height)
}
