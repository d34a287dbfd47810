// Package mcp exposes roadmap generation as an MCP tool. Responses are
// token-efficient Markdown for LLM consumption, while the internal/ui package
// handles terminal output.
package mcp

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/roadmapper/internal/roadmap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PresentOptions controls FormatRoadmap.
type PresentOptions struct {
	// HideAnswers omits the correct-answer markers from every quiz.
	HideAnswers bool
}

// FormatRoadmap converts a Roadmap into Markdown.
// Structure: Summary -> Modules (subtopics, quiz, project) -> Final Assessment -> Career
func FormatRoadmap(r *roadmap.Roadmap, opts PresentOptions) string {
	if r == nil {
		return "No roadmap generated."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s Learning Roadmap\n\n", r.Topic))

	if s := strings.TrimSpace(r.SummaryMarkdown); s != "" {
		sb.WriteString(s)
		sb.WriteString("\n\n")
	}

	for i, m := range r.Modules {
		writeModule(&sb, i, m, opts)
	}

	if len(r.FinalAssessment) > 0 {
		sb.WriteString("## Final Assessment\n")
		writeQuiz(&sb, r.FinalAssessment, opts)
		sb.WriteString("\n")
	}

	writeCareer(&sb, r.CareerGuidance)
	return strings.TrimSpace(sb.String())
}

func writeModule(sb *strings.Builder, i int, m roadmap.Module, opts PresentOptions) {
	header := fmt.Sprintf("## %d. %s", i+1, m.Title)
	if level := strings.TrimSpace(m.Level); level != "" {
		header += fmt.Sprintf(" (%s)", cases.Title(language.English).String(level))
	}
	sb.WriteString(header + "\n")

	for _, st := range m.Subtopics {
		sb.WriteString(fmt.Sprintf("### %s\n", st.Concept))
		if st.Explanation != "" {
			sb.WriteString(st.Explanation + "\n")
		}
		for _, res := range st.Resources {
			sb.WriteString(fmt.Sprintf("- [%s](%s)", res.Title, res.URL))
			if meta := joinNonEmpty(", ", res.Type, res.Duration); meta != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", meta))
			}
			sb.WriteString("\n")
		}
		if st.Task != "" {
			sb.WriteString(fmt.Sprintf("**Task**: %s\n", st.Task))
		}
		if st.AcceptanceCriteria != "" {
			sb.WriteString(fmt.Sprintf("**Done when**: %s\n", st.AcceptanceCriteria))
		}
		sb.WriteString("\n")
	}

	if len(m.Quiz) > 0 {
		sb.WriteString("### Quiz\n")
		writeQuiz(sb, m.Quiz, opts)
		sb.WriteString("\n")
	}

	if m.Project.Title != "" {
		sb.WriteString(fmt.Sprintf("**Project**: %s", m.Project.Title))
		if m.Project.Description != "" {
			sb.WriteString(" - " + m.Project.Description)
		}
		sb.WriteString("\n\n")
	}
}

// writeQuiz lists questions with lettered options. The correct option gets a
// trailing check mark unless answers are hidden.
func writeQuiz(sb *strings.Builder, quiz []roadmap.QuizQuestion, opts PresentOptions) {
	for i, q := range quiz {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Question))
		for j, opt := range q.Options {
			mark := ""
			if !opts.HideAnswers && q.IsCorrect(opt) {
				mark = " ✓"
			}
			sb.WriteString(fmt.Sprintf("   %c) %s%s\n", 'A'+rune(j%26), opt, mark))
		}
	}
}

func writeCareer(sb *strings.Builder, cg roadmap.CareerGuidance) {
	if len(cg.NextSteps) == 0 && len(cg.Certifications) == 0 {
		return
	}
	sb.WriteString("## Career Guidance\n")
	if len(cg.NextSteps) > 0 {
		sb.WriteString("**Next steps**:\n")
		for _, s := range cg.NextSteps {
			sb.WriteString("- " + s + "\n")
		}
	}
	if len(cg.Certifications) > 0 {
		sb.WriteString("**Certifications**: " + strings.Join(cg.Certifications, ", ") + "\n")
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// FormatError returns a standardized Markdown error message.
// Use this for all MCP tool error responses to ensure consistency.
func FormatError(message string) string {
	return fmt.Sprintf("## ❌ Error\n\n**Details**: %s", message)
}

// FormatValidationError returns a Markdown error for validation failures.
func FormatValidationError(field, message string) string {
	return fmt.Sprintf("## ❌ Validation Error\n\n**Field**: `%s`\n**Details**: %s", field, message)
}
