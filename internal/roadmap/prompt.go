package roadmap

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/spf13/afero"
)

// PromptInput is the data available to a prompt template.
type PromptInput struct {
	Topic string
}

// Prompt renders roadmap prompts from a template.
type Prompt struct {
	tmpl *template.Template
}

// DefaultPrompt returns the built-in roadmap prompt.
func DefaultPrompt() *Prompt {
	return &Prompt{tmpl: template.Must(template.New("roadmap").Parse(defaultPromptTemplate))}
}

// ParsePrompt compiles a custom template. The template receives {{.Topic}}.
func ParsePrompt(text string) (*Prompt, error) {
	tmpl, err := template.New("roadmap").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	p := &Prompt{tmpl: tmpl}
	if _, err := p.Build("probe"); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadPrompt reads a custom template from fs. An empty path yields the
// built-in prompt.
func LoadPrompt(fs afero.Fs, path string) (*Prompt, error) {
	if path == "" {
		return DefaultPrompt(), nil
	}
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read prompt template %s: %w", path, err)
	}
	return ParsePrompt(string(content))
}

// Build renders the prompt for topic.
func (p *Prompt) Build(topic string) (string, error) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, PromptInput{Topic: topic}); err != nil {
		return "", fmt.Errorf("execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// defaultPromptTemplate spells out the JSON shape the parser expects. Field
// names here must match the json tags on Roadmap.
const defaultPromptTemplate = `Create a structured, practical, and engaging learning roadmap for {{printf "%q" .Topic}}, designed specifically for beginners, career-switchers, and working professionals.

You must output valid JSON matching this schema exactly:
{
  "topic": {{printf "%q" .Topic}},
  "palette": {
    "primary": "Hex color code (e.g. #3B82F6) suitable for the topic",
    "secondary": "Hex color code (e.g. #DBEAFE)",
    "accent": "Hex color code (e.g. #F59E0B)",
    "background": "Optional dark hex color code for the page background"
  },
  "summary_markdown": "A comprehensive 1-2 paragraph summary explaining what the field is, where it is used, and key skills. Use simple markdown (bold, bullets) if needed.",
  "modules": [
    {
      "level": "Beginner | Intermediate | Advanced",
      "title": "Module Title",
      "subtopics": [
        {
          "concept": "Subtopic Name",
          "explanation": "1-2 sentence explanation",
          "resources": [
            { "title": "Resource Name", "url": "Valid URL", "type": "Article/Video/Course", "duration": "Time estimate" }
          ],
          "task": "Hands-on task description",
          "acceptance_criteria": "Clear criteria to verify the task is done"
        }
      ],
      "quiz": [
        { "question": "Question text", "options": ["Option A", "Option B", "Option C", "Option D"], "correct_answer": "The text of the correct option" }
      ],
      "project": { "title": "Module Project Name", "description": "Detailed project description for a portfolio piece" }
    }
  ],
  "final_assessment": [
    { "question": "Question text", "options": ["A", "B", "C", "D"], "correct_answer": "Correct Option Text" }
  ],
  "career_guidance": {
    "next_steps": ["Actionable next step 1", "Actionable next step 2"],
    "certifications": ["Cert 1", "Cert 2"]
  }
}

Requirements:
1. Create 3 Modules: Beginner, Intermediate, Advanced.
2. For every subtopic include 2-4 FREE learning resources with valid URLs.
3. Include 5 questions per module quiz, each with 4 options.
4. Include 10-15 questions for the final assessment.
5. correct_answer must repeat the exact text of one of the options.
6. Choose an aesthetic color palette that fits the {{printf "%q" .Topic}} vibe.
7. Ensure the tone is encouraging and clear.
`
