package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsInteractive reports whether stdout is a terminal. The viewer needs one;
// piped runs fall back to help or the generate command.
func IsInteractive() bool {
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Panel is a bordered notice printed around one-shot command output.
type Panel struct {
	Title       string
	Content     string
	BorderColor lipgloss.Color
	Width       int // 0 sizes to content
}

func NewPanel(title, content string) *Panel {
	return &Panel{Title: title, Content: content, BorderColor: ColorSecondary}
}

func (p *Panel) WithBorderColor(color lipgloss.Color) *Panel {
	p.BorderColor = color
	return p
}

func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

func (p *Panel) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderColor).
		Padding(0, 1)
	if p.Width > 0 {
		style = style.Width(p.Width)
	}

	body := p.Content
	if p.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Foreground(p.BorderColor).Render(p.Title) + "\n" + body
	}
	return style.Render(body)
}

// RenderInfoPanel frames a success notice, such as where a roadmap was saved.
func RenderInfoPanel(title, content string) string {
	return NewPanel(title, content).WithBorderColor(ColorCyan).Render()
}

// RenderErrorPanel frames the user-facing message of a failed generation.
func RenderErrorPanel(title, content string) string {
	return NewPanel(title, content).WithBorderColor(ColorError).Render()
}

// Truncate shortens s to maxLen runes, ending in "..." when cut. Topics and
// titles are often non-ASCII, so it never splits a rune.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// WrapText word-wraps text to width terminal cells. Existing line breaks are
// kept; a single word wider than width gets a line of its own.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteString("\n")
		}
		if lipgloss.Width(line) <= width {
			out.WriteString(line)
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = word
			case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
				current += " " + word
			default:
				out.WriteString(current + "\n")
				current = word
			}
		}
		out.WriteString(current)
	}
	return out.String()
}
