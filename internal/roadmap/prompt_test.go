package roadmap

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrompt_Build(t *testing.T) {
	out, err := DefaultPrompt().Build("Pottery")
	require.NoError(t, err)

	assert.Contains(t, out, `"Pottery"`)
	for _, key := range []string{"palette", "summary_markdown", "modules", "subtopics", "acceptance_criteria", "quiz", "correct_answer", "project", "final_assessment", "career_guidance"} {
		assert.Contains(t, out, `"`+key+`"`)
	}
	assert.Contains(t, out, "Create 3 Modules: Beginner, Intermediate, Advanced.")
	assert.Contains(t, out, "Include 5 questions per module quiz")
	assert.Contains(t, out, "Include 10-15 questions for the final assessment.")
	assert.Contains(t, out, "2-4 FREE learning resources")
}

func TestDefaultPrompt_QuotesTopic(t *testing.T) {
	out, err := DefaultPrompt().Build(`Go "generics"`)
	require.NoError(t, err)
	assert.Contains(t, out, `"Go \"generics\""`)
}

func TestLoadPrompt(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/prompts/short.tmpl", []byte("Teach me {{.Topic}} as JSON."), 0644))
	require.NoError(t, afero.WriteFile(fs, "/prompts/unknown.tmpl", []byte("Teach me {{.Subject}}"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/prompts/broken.tmpl", []byte("Teach me {{.Topic"), 0644))

	t.Run("empty path uses default", func(t *testing.T) {
		p, err := LoadPrompt(fs, "")
		require.NoError(t, err)
		out, err := p.Build("Pottery")
		require.NoError(t, err)
		assert.Contains(t, out, "final_assessment")
	})

	t.Run("custom template", func(t *testing.T) {
		p, err := LoadPrompt(fs, "/prompts/short.tmpl")
		require.NoError(t, err)
		out, err := p.Build("Pottery")
		require.NoError(t, err)
		assert.Equal(t, "Teach me Pottery as JSON.", out)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadPrompt(fs, "/prompts/unknown.tmpl")
		assert.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := LoadPrompt(fs, "/prompts/broken.tmpl")
		assert.ErrorContains(t, err, "parse prompt template")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPrompt(fs, "/prompts/missing.tmpl")
		assert.ErrorContains(t, err, "/prompts/missing.tmpl")
	})
}
