package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	reply *schema.Message
	err   error
	input []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.input = input
	return f.reply, f.err
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not used")
}

func TestEinoGenerator_SendsSystemAndUserMessages(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage(`{"topic":"Go"}`, nil)}
	g := &EinoGenerator{chat: fake, provider: ProviderOpenAI}

	out, err := g.Generate(context.Background(), "roadmap for Go")
	require.NoError(t, err)
	assert.Equal(t, `{"topic":"Go"}`, out)

	require.Len(t, fake.input, 2)
	assert.Equal(t, schema.System, fake.input[0].Role)
	assert.Equal(t, schema.User, fake.input[1].Role)
	assert.Equal(t, "roadmap for Go", fake.input[1].Content)
}

func TestEinoGenerator_Errors(t *testing.T) {
	g := &EinoGenerator{chat: &fakeChatModel{err: errors.New("quota exceeded")}, provider: ProviderAnthropic}
	_, err := g.Generate(context.Background(), "p")
	assert.EqualError(t, err, "quota exceeded")
}

func TestEinoGenerator_NilReply(t *testing.T) {
	g := &EinoGenerator{chat: &fakeChatModel{}, provider: ProviderOllama}
	out, err := g.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, out)
}
