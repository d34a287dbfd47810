// Package roadmap defines the learning roadmap returned by the model and the
// requester that produces it from a topic.
package roadmap

import "strings"

// Fallback palette colors used when the model omits a field.
const (
	DefaultPrimary    = "#3B82F6"
	DefaultSecondary  = "#DBEAFE"
	DefaultAccent     = "#F59E0B"
	DefaultBackground = "#0F172A"
)

// Roadmap is the full structured learning plan for one topic. It is built
// once from a provider response and never mutated afterwards.
type Roadmap struct {
	Topic           string         `json:"topic" yaml:"topic"`
	Palette         Palette        `json:"palette" yaml:"palette"`
	SummaryMarkdown string         `json:"summary_markdown" yaml:"summary_markdown"`
	Modules         []Module       `json:"modules" yaml:"modules" validate:"required,min=1,dive"`
	FinalAssessment []QuizQuestion `json:"final_assessment" yaml:"final_assessment" validate:"dive"`
	CareerGuidance  CareerGuidance `json:"career_guidance" yaml:"career_guidance"`
}

// Palette holds hex colors chosen by the model. Background is optional.
type Palette struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
}

// Module is one stage of the roadmap. Level is free text; Beginner,
// Intermediate and Advanced are requested but not enforced.
type Module struct {
	Level     string         `json:"level" yaml:"level"`
	Title     string         `json:"title" yaml:"title" validate:"nonempty"`
	Subtopics []Subtopic     `json:"subtopics" yaml:"subtopics" validate:"dive"`
	Quiz      []QuizQuestion `json:"quiz" yaml:"quiz" validate:"dive"`
	Project   Project        `json:"project" yaml:"project"`
}

// Subtopic is one concept within a module.
type Subtopic struct {
	Concept            string     `json:"concept" yaml:"concept"`
	Explanation        string     `json:"explanation" yaml:"explanation"`
	Resources          []Resource `json:"resources" yaml:"resources"`
	Task               string     `json:"task" yaml:"task"`
	AcceptanceCriteria string     `json:"acceptance_criteria" yaml:"acceptance_criteria"`
}

// Resource is an external learning reference.
type Resource struct {
	Title    string `json:"title" yaml:"title"`
	URL      string `json:"url" yaml:"url"`
	Type     string `json:"type" yaml:"type"`
	Duration string `json:"duration" yaml:"duration"`
}

// QuizQuestion is a multiple-choice question. CorrectAnswer names the right
// option by value, not by index.
type QuizQuestion struct {
	Question      string   `json:"question" yaml:"question" validate:"nonempty"`
	Options       []string `json:"options" yaml:"options" validate:"min=1"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer" validate:"answer_in_options"`
}

// Project is the portfolio piece closing a module.
type Project struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// CareerGuidance lists what to do after finishing the roadmap.
type CareerGuidance struct {
	NextSteps      []string `json:"next_steps" yaml:"next_steps"`
	Certifications []string `json:"certifications" yaml:"certifications"`
}

// IsCorrect reports whether option is the correct answer. Matching is exact
// string equality, so an answer that names no option marks nothing correct.
func (q QuizQuestion) IsCorrect(option string) bool {
	return q.CorrectAnswer == option
}

// CorrectIndex returns the index of the correct option, or -1.
func (q QuizQuestion) CorrectIndex() int {
	for i, opt := range q.Options {
		if q.IsCorrect(opt) {
			return i
		}
	}
	return -1
}

// PrimaryOr returns the primary color or fallback when missing.
func (p Palette) PrimaryOr(fallback string) string {
	return orDefault(p.Primary, fallback)
}

// SecondaryOr returns the secondary color or fallback when missing.
func (p Palette) SecondaryOr(fallback string) string {
	return orDefault(p.Secondary, fallback)
}

// AccentOr returns the accent color or fallback when missing.
func (p Palette) AccentOr(fallback string) string {
	return orDefault(p.Accent, fallback)
}

// BackgroundOr returns the background color or fallback when missing.
func (p Palette) BackgroundOr(fallback string) string {
	return orDefault(p.Background, fallback)
}

// Models sometimes pad color values, so blank-only counts as missing.
func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}

// QuestionCount returns the number of quiz questions across all modules plus
// the final assessment.
func (r *Roadmap) QuestionCount() int {
	if r == nil {
		return 0
	}
	n := len(r.FinalAssessment)
	for _, m := range r.Modules {
		n += len(m.Quiz)
	}
	return n
}
