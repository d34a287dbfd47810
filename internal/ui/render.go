package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
	"github.com/josephgoksu/roadmapper/internal/viewstate"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDocumentWidth is used when the terminal width is unknown.
const DefaultDocumentWidth = 80

var (
	boldRegex   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	bulletRegex = regexp.MustCompile(`^\s*[-*]\s+`)
	headerRegex = regexp.MustCompile(`^\s*#{1,6}\s+`)

	levelCaser = cases.Upper(language.English)
)

// RenderOptions controls RenderDocument.
type RenderOptions struct {
	Width       int
	ShowAnswers bool
}

// RenderDocument renders the whole roadmap with every module expanded and the
// final assessment shown. Answers are marked only when ShowAnswers is set.
func RenderDocument(r *roadmap.Roadmap, opts RenderOptions) string {
	if r == nil {
		return ""
	}
	return renderRoadmap(r, docView{
		theme:        NewTheme(r.Palette),
		width:        opts.Width,
		cursor:       viewstate.NoModule,
		expanded:     func(int) bool { return true },
		revealed:     func(viewstate.QuizKey) bool { return opts.ShowAnswers },
		finalVisible: true,
	})
}

// docView is everything the document renderer needs to know about the
// interactive state. The static renderer fills it with constants.
type docView struct {
	theme        Theme
	width        int
	cursor       int
	expanded     func(i int) bool
	revealed     func(key viewstate.QuizKey) bool
	finalVisible bool
	hints        bool
}

func stateView(s viewstate.State, cursor, width int) docView {
	return docView{
		theme:        NewTheme(s.Roadmap().Palette),
		width:        width,
		cursor:       cursor,
		expanded:     s.IsExpanded,
		revealed:     s.AnswersRevealed,
		finalVisible: s.FinalVisible(),
		hints:        true,
	}
}

func renderRoadmap(r *roadmap.Roadmap, v docView) string {
	if v.width <= 0 {
		v.width = DefaultDocumentWidth
	}
	t := v.theme
	var b strings.Builder

	title := strings.TrimSpace(r.Topic)
	if title == "" {
		title = "Learning Roadmap"
	}
	b.WriteString(t.Title.Render("◆ "+title) + "\n\n")

	if summary := strings.TrimSpace(r.SummaryMarkdown); summary != "" {
		b.WriteString(renderMarkdownLite(summary, v.width) + "\n\n")
	}

	b.WriteString(t.Section.Render("Modules") + "\n")
	if len(r.Modules) == 0 {
		b.WriteString(StyleSubtle.Render("  No modules in this roadmap.") + "\n")
	}
	for i, m := range r.Modules {
		renderModule(&b, v, i, m)
	}

	b.WriteString("\n")
	renderFinalAssessment(&b, v, r.FinalAssessment)

	renderCareer(&b, v, r.CareerGuidance)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func renderModule(b *strings.Builder, v docView, i int, m roadmap.Module) {
	t := v.theme
	expanded := v.expanded(i)

	marker := " "
	if v.cursor == i {
		marker = t.Cursor.Render("›")
	}
	chevron := "▸"
	if expanded {
		chevron = "▾"
	}

	title := strings.TrimSpace(m.Title)
	if title == "" {
		title = fmt.Sprintf("Module %d", i+1)
	}
	meta := fmt.Sprintf("%d subtopics · %d questions", len(m.Subtopics), len(m.Quiz))
	fmt.Fprintf(b, "%s %s %d. %s %s %s\n",
		marker, chevron, i+1, levelBadge(t, m.Level), t.ModuleTitle.Render(title), StyleSubtle.Render(meta))

	if !expanded {
		return
	}

	const indent = "     "
	width := v.width - len(indent)
	for _, st := range m.Subtopics {
		b.WriteString("\n")
		renderSubtopic(b, t, st, indent, width)
	}

	if len(m.Quiz) > 0 {
		key := viewstate.ModuleQuiz(i)
		revealed := v.revealed(key)
		heading := indent + StyleTitle.Render("Quiz")
		if v.hints {
			heading += " " + StyleSubtle.Render(revealHint("a", revealed))
		}
		b.WriteString("\n" + heading + "\n")
		renderQuiz(b, t, m.Quiz, revealed, indent+"  ", width-2)
	}

	if p := m.Project; p.Title != "" || p.Description != "" {
		b.WriteString("\n" + indent + StyleTitle.Render("Project: ") + t.Concept.Render(p.Title) + "\n")
		writeIndented(b, WrapText(p.Description, width), indent)
	}
	b.WriteString("\n")
}

func renderSubtopic(b *strings.Builder, t Theme, st roadmap.Subtopic, indent string, width int) {
	b.WriteString(indent + t.Concept.Render(st.Concept) + "\n")
	writeIndented(b, WrapText(st.Explanation, width), indent)

	for _, res := range st.Resources {
		details := []string{}
		for _, d := range []string{res.Type, res.Duration} {
			if d = strings.TrimSpace(d); d != "" {
				details = append(details, d)
			}
		}
		line := "• " + res.Title
		if len(details) > 0 {
			line += " " + StyleSubtle.Render("("+strings.Join(details, ", ")+")")
		}
		b.WriteString(indent + "  " + line + "\n")
		if res.URL != "" {
			b.WriteString(indent + "    " + t.Link.Render(res.URL) + "\n")
		}
	}

	if st.Task != "" {
		writeIndented(b, WrapText("Task: "+st.Task, width), indent)
	}
	if st.AcceptanceCriteria != "" {
		writeIndented(b, WrapText("Done when: "+st.AcceptanceCriteria, width), indent)
	}
}

func renderQuiz(b *strings.Builder, t Theme, qs []roadmap.QuizQuestion, revealed bool, indent string, width int) {
	for qi, q := range qs {
		writeIndented(b, WrapText(fmt.Sprintf("Q%d. %s", qi+1, q.Question), width), indent)
		for oi, opt := range q.Options {
			mark := "○"
			style := StyleText
			if viewstate.IsCorrectOption(q, opt, revealed) {
				mark = "✓"
				style = t.Correct
			}
			fmt.Fprintf(b, "%s  %s %s) %s\n", indent, style.Render(mark), optionLabel(oi), style.Render(opt))
		}
	}
}

func renderFinalAssessment(b *strings.Builder, v docView, qs []roadmap.QuizQuestion) {
	t := v.theme
	heading := t.Section.Render("Final Assessment") + " " + StyleSubtle.Render(fmt.Sprintf("(%d questions)", len(qs)))
	if v.hints && !v.finalVisible {
		heading += " " + StyleSubtle.Render("press f to show")
	}
	b.WriteString(heading + "\n")
	if !v.finalVisible {
		b.WriteString("\n")
		return
	}

	revealed := v.revealed(viewstate.FinalAssessment())
	if v.hints {
		b.WriteString("  " + StyleSubtle.Render(revealHint("A", revealed)) + "\n")
	}
	renderQuiz(b, t, qs, revealed, "  ", v.width-2)
	b.WriteString("\n")
}

func renderCareer(b *strings.Builder, v docView, cg roadmap.CareerGuidance) {
	if len(cg.NextSteps) == 0 && len(cg.Certifications) == 0 {
		return
	}
	t := v.theme
	b.WriteString(t.Section.Render("Career Guidance") + "\n")
	if len(cg.NextSteps) > 0 {
		b.WriteString("  " + StyleTitle.Render("Next steps") + "\n")
		for _, s := range cg.NextSteps {
			writeIndented(b, WrapText("• "+s, v.width-4), "    ")
		}
	}
	if len(cg.Certifications) > 0 {
		b.WriteString("  " + StyleTitle.Render("Certifications") + "\n")
		for _, c := range cg.Certifications {
			writeIndented(b, WrapText("• "+c, v.width-4), "    ")
		}
	}
}

// levelBadge renders the module level as an upper-case pill. Levels are free
// text, so anything the model sends is shown as-is.
func levelBadge(t Theme, level string) string {
	level = strings.TrimSpace(level)
	if level == "" {
		level = "module"
	}
	return t.Badge.Render(levelCaser.String(level))
}

func revealHint(key string, revealed bool) string {
	if revealed {
		return fmt.Sprintf("press %s to hide answers", key)
	}
	return fmt.Sprintf("press %s to reveal answers", key)
}

func optionLabel(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return fmt.Sprintf("%d", i+1)
}

// renderMarkdownLite handles the markup the summary uses: **bold**, bullet
// lists and headings. Everything else passes through.
func renderMarkdownLite(md string, width int) string {
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if headerRegex.MatchString(line) {
			line = StyleTitle.Render(headerRegex.ReplaceAllString(line, ""))
		} else if bulletRegex.MatchString(line) {
			line = "• " + bulletRegex.ReplaceAllString(line, "")
		}
		line = boldRegex.ReplaceAllStringFunc(line, func(m string) string {
			return StyleTitle.Render(boldRegex.FindStringSubmatch(m)[1])
		})
		out = append(out, line)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(out, "\n"))
}

func writeIndented(b *strings.Builder, text, indent string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(indent + line + "\n")
	}
}
