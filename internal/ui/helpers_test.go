package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
)

func testRoadmap() *roadmap.Roadmap {
	levels := []struct {
		level    string
		title    string
		concepts []string
	}{
		{"Beginner", "Foundations of Clay", []string{"Clay Bodies", "Hand Building"}},
		{"Intermediate", "Wheel Throwing", []string{"Centering", "Pulling Walls"}},
		{"Advanced", "Glazes and Firing", []string{"Glaze Chemistry", "Kiln Firing"}},
	}

	quiz := func(prefix string, n int) []roadmap.QuizQuestion {
		qs := make([]roadmap.QuizQuestion, n)
		for i := range qs {
			opts := []string{prefix + " one", prefix + " two", prefix + " three", prefix + " four"}
			qs[i] = roadmap.QuizQuestion{
				Question:      fmt.Sprintf("%s question %d?", prefix, i+1),
				Options:       opts,
				CorrectAnswer: opts[i%4],
			}
		}
		return qs
	}

	r := &roadmap.Roadmap{
		Topic:           "Pottery",
		Palette:         roadmap.Palette{Primary: "#B45309", Secondary: "#FDE68A", Accent: "#0F766E"},
		SummaryMarkdown: "**Pottery** is the craft of shaping clay.\n\n- Hand building\n- Wheel throwing",
		FinalAssessment: quiz("Final", 10),
		CareerGuidance: roadmap.CareerGuidance{
			NextSteps:      []string{"Join a community studio"},
			Certifications: []string{"Studio safety certificate"},
		},
	}
	for _, l := range levels {
		m := roadmap.Module{
			Level:   l.level,
			Title:   l.title,
			Quiz:    quiz(l.level, 5),
			Project: roadmap.Project{Title: l.level + " portfolio piece", Description: "Make something."},
		}
		for _, c := range l.concepts {
			m.Subtopics = append(m.Subtopics, roadmap.Subtopic{
				Concept:            c,
				Explanation:        c + " explained.",
				Resources:          []roadmap.Resource{{Title: c + " guide", URL: "https://example.org/" + c, Type: "Article", Duration: "15 min"}},
				Task:               "Practice " + c,
				AcceptanceCriteria: "Three pieces done",
			})
		}
		r.Modules = append(r.Modules, m)
	}
	return r
}

// stubGenerator returns a fixed result.
type stubGenerator struct {
	roadmap *roadmap.Roadmap
	err     error
}

func (g stubGenerator) Request(ctx context.Context, topic string) (*roadmap.Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.roadmap, g.err
}

// textGenerator is an llm.TextGenerator returning canned text.
type textGenerator struct{ text string }

func (g textGenerator) Generate(context.Context, string) (string, error) {
	return g.text, nil
}

func update(m RoadmapModel, msg tea.Msg) (RoadmapModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(RoadmapModel), cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m RoadmapModel, keys ...string) RoadmapModel {
	for _, k := range keys {
		m, _ = update(m, keyMsg(k))
	}
	return m
}

// readyModel returns a model showing testRoadmap with a tall viewport.
func readyModel() RoadmapModel {
	m := NewRoadmapModel(context.Background(), stubGenerator{}, "Pottery", nil)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 600})
	m, _ = update(m, MsgGenerationFinished{ID: m.State.GenerationID(), Roadmap: testRoadmap()})
	return m
}
