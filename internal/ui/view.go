package ui

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/roadmapper/internal/viewstate"
)

func (m RoadmapModel) View() string {
	var s strings.Builder

	// Header
	s.WriteString(StyleHeader.Render("◆ Roadmapper"))
	if topic := m.State.Topic(); topic != "" {
		s.WriteString(" " + StyleSubtle.Render("Topic: "+Truncate(topic, 60)))
	}
	s.WriteString("\n")

	// Topic input
	box := StyleInputBox
	if m.Input.Focused() {
		box = StyleInputBoxFocused
	}
	s.WriteString(box.Render(m.Input.View()) + "\n")

	// Status line
	s.WriteString(m.statusLine() + "\n")

	sepWidth := m.Viewport.Width
	if sepWidth < 40 {
		sepWidth = 40
	}
	s.WriteString(StyleSubtle.Render(strings.Repeat("─", sepWidth)) + "\n")

	if m.State.Status() == viewstate.Ready {
		s.WriteString(m.Viewport.View() + "\n")
	}

	if m.Input.Focused() {
		s.WriteString(m.Help.View(inputKeyMap{m.keys}))
	} else {
		s.WriteString(m.Help.View(m.keys))
	}
	s.WriteString("\n")
	return s.String()
}

func (m RoadmapModel) statusLine() string {
	switch m.State.Status() {
	case viewstate.Generating:
		return m.Spinner.View() + " " + StylePrimary.Render(fmt.Sprintf("Generating a roadmap for %q...", m.State.Topic()))

	case viewstate.Ready:
		r := m.State.Roadmap()
		summary := fmt.Sprintf("%d modules · %d questions", len(r.Modules), r.QuestionCount())
		scroll := fmt.Sprintf("%3.f%%", m.Viewport.ScrollPercent()*100)
		return StyleSuccess.Render("✓ ") + StyleText.Render(summary) + " " + StyleSubtle.Render(scroll)

	case viewstate.Error:
		return StyleError.Render("✗ "+m.State.ErrorMessage()) + " " + StyleSubtle.Render("Edit the topic and press enter to try again.")

	default:
		return StyleSubtle.Render("Enter a topic and press enter to build a learning roadmap.")
	}
}
