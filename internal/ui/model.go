package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/roadmapper/internal/logger"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
	"github.com/josephgoksu/roadmapper/internal/viewstate"
)

// Layout constants
const (
	DefaultViewportWidth  = 80
	DefaultViewportHeight = 20
	MinViewportHeight     = 5
	HeaderFooterHeight    = 9 // Header, input box, status line and help
	TopicCharLimit        = 200
)

// Generator produces a roadmap for a topic. *roadmap.Requester satisfies it.
type Generator interface {
	Request(ctx context.Context, topic string) (*roadmap.Roadmap, error)
}

// MsgGenerationFinished carries the outcome of the generation with ID.
type MsgGenerationFinished struct {
	ID      string
	Roadmap *roadmap.Roadmap
	Err     error
}

// RoadmapModel is the interactive roadmap viewer. It is the single owner of
// the view state; the provider call runs as a tea.Cmd and reports back through
// MsgGenerationFinished.
type RoadmapModel struct {
	State  viewstate.State
	Cursor int // module under the cursor
	Width  int

	// Components
	Input    textinput.Model
	Spinner  spinner.Model
	Viewport viewport.Model
	Help     help.Model
	keys     keyMap

	// Dependencies
	ctx    context.Context
	cancel context.CancelFunc
	gen    Generator
	log    *logger.Logger
}

// NewRoadmapModel creates the viewer. A non-blank topic is submitted right
// away. The model's context is cancelled on quit, which aborts an in-flight
// provider call.
func NewRoadmapModel(ctx context.Context, gen Generator, topic string, log *logger.Logger) RoadmapModel {
	if log == nil {
		log = logger.Nop()
	}

	ti := textinput.New()
	ti.Placeholder = "What do you want to learn? e.g. Pottery, Rust, Jazz piano"
	ti.Prompt = "› "
	ti.CharLimit = TopicCharLimit
	ti.Width = DefaultViewportWidth - 8
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StylePrimary

	vp := viewport.New(DefaultViewportWidth, DefaultViewportHeight)

	runCtx, cancel := context.WithCancel(ctx)
	m := RoadmapModel{
		State:    viewstate.New(),
		Width:    DefaultViewportWidth,
		Input:    ti,
		Spinner:  s,
		Viewport: vp,
		Help:     help.New(),
		keys:     defaultKeyMap(),
		ctx:      runCtx,
		cancel:   cancel,
		gen:      gen,
		log:      log,
	}

	if next, ok := m.State.Submit(topic); ok {
		m.Input.SetValue(next.Topic())
		m.Input.Blur()
		m.State = next
		m.log.Info("generation started", "topic", next.Topic(), "generation_id", next.GenerationID())
	}
	return m
}

func (m RoadmapModel) Init() tea.Cmd {
	if m.State.Status() == viewstate.Generating {
		return tea.Batch(m.Spinner.Tick, generate(m.ctx, m.gen, m.State.GenerationID(), m.State.Topic()))
	}
	return textinput.Blink
}

// generate runs one provider round trip for topic.
func generate(ctx context.Context, gen Generator, id, topic string) tea.Cmd {
	return func() tea.Msg {
		r, err := gen.Request(ctx, topic)
		return MsgGenerationFinished{ID: id, Roadmap: r, Err: err}
	}
}

func (m RoadmapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Viewport.Width = msg.Width
		m.Viewport.Height = msg.Height - HeaderFooterHeight
		if m.Viewport.Height < MinViewportHeight {
			m.Viewport.Height = MinViewportHeight
		}
		m.Input.Width = msg.Width - 8
		m.Help.Width = msg.Width
		m.refresh()
		return m, nil

	case MsgGenerationFinished:
		return m.finish(msg)

	case spinner.TickMsg:
		if m.State.Status() != viewstate.Generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		if m.Input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m RoadmapModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit(m.Input.Value())

	case key.Matches(msg, m.keys.Browse):
		if m.State.Status() == viewstate.Ready || m.State.Status() == viewstate.Generating {
			m.Input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m RoadmapModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modules := 0
	if r := m.State.Roadmap(); r != nil {
		modules = len(r.Modules)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewTopic):
		m.Input.SetValue("")
		return m, m.Input.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.Cursor < modules-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		m.State = m.State.ToggleModule(m.Cursor)

	case key.Matches(msg, m.keys.Jump):
		i := int(msg.String()[0] - '1')
		if i < modules {
			m.Cursor = i
		}
		m.State = m.State.ToggleModule(i)

	case key.Matches(msg, m.keys.Answers):
		if i := m.State.Expanded(); i != viewstate.NoModule {
			m.State = m.State.ToggleQuizAnswers(viewstate.ModuleQuiz(i))
		}

	case key.Matches(msg, m.keys.Final):
		m.State = m.State.ToggleFinalAssessment()

	case key.Matches(msg, m.keys.FinalAnswers):
		m.State = m.State.ToggleQuizAnswers(viewstate.FinalAssessment())

	default:
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

// submit starts a generation. It is inert while one is running and for a
// blank topic.
func (m RoadmapModel) submit(topic string) (tea.Model, tea.Cmd) {
	next, ok := m.State.Submit(topic)
	if !ok {
		return m, nil
	}
	m.State = next
	m.Cursor = 0
	m.Input.Blur()
	m.refresh()
	m.log.Info("generation started", "topic", next.Topic(), "generation_id", next.GenerationID())
	return m, tea.Batch(m.Spinner.Tick, generate(m.ctx, m.gen, next.GenerationID(), next.Topic()))
}

func (m RoadmapModel) finish(msg MsgGenerationFinished) (tea.Model, tea.Cmd) {
	if msg.ID != m.State.GenerationID() || m.State.Status() != viewstate.Generating {
		m.log.Debug("dropping stale generation result", "generation_id", msg.ID)
		return m, nil
	}

	m.State = m.State.Resolve(msg.ID, msg.Roadmap, msg.Err)
	m.refresh()
	m.Viewport.GotoTop()

	if m.State.Status() == viewstate.Error {
		m.log.Warn("generation failed", "topic", m.State.Topic(), "error", msg.Err)
		return m, m.Input.Focus()
	}
	m.Cursor = 0
	return m, nil
}

func (m RoadmapModel) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// refresh re-renders the document into the viewport.
func (m *RoadmapModel) refresh() {
	if m.State.Status() != viewstate.Ready {
		m.Viewport.SetContent("")
		return
	}
	m.Viewport.SetContent(renderRoadmap(m.State.Roadmap(), stateView(m.State, m.Cursor, m.Viewport.Width-2)))
}
