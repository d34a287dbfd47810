package mcp

import (
	"bytes"
	"context"
	"strings"

	"github.com/josephgoksu/roadmapper/internal/roadmap"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolGenerateRoadmap is the name of the roadmap tool.
const ToolGenerateRoadmap = "generate_roadmap"

// Generator produces a roadmap for a topic. *roadmap.Requester satisfies it.
type Generator interface {
	Request(ctx context.Context, topic string) (*roadmap.Roadmap, error)
}

// GenerateRoadmapParams defines the parameters for the generate_roadmap tool.
type GenerateRoadmapParams struct {
	Topic       string `json:"topic"`                  // Required: subject to learn
	Format      string `json:"format,omitempty"`       // Optional: markdown (default), json, yaml
	HideAnswers bool   `json:"hide_answers,omitempty"` // Optional: omit correct-answer markers
}

// Register adds the roadmap tools to server.
func Register(server *mcpsdk.Server, gen Generator) {
	tool := &mcpsdk.Tool{
		Name: ToolGenerateRoadmap,
		Description: `Generate a structured learning roadmap for a topic: three leveled modules with subtopics, free resources, hands-on tasks, quizzes and projects, plus a final assessment and career guidance.
Use {"topic":"Rust"}. Optional: format (markdown|json|yaml), hide_answers.`,
	}
	mcpsdk.AddTool(server, tool, GenerateRoadmapHandler(gen))
}

// GenerateRoadmapHandler returns the tool handler for generate_roadmap.
func GenerateRoadmapHandler(gen Generator) mcpsdk.ToolHandlerFor[GenerateRoadmapParams, any] {
	return func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[GenerateRoadmapParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		topic := strings.TrimSpace(args.Topic)
		if topic == "" {
			return errorResponse(FormatValidationError("topic", "topic is required"))
		}

		format := strings.ToLower(strings.TrimSpace(args.Format))
		var encoding roadmap.Format
		if format != "" && format != "markdown" && format != "md" {
			f, err := roadmap.ParseFormat(format)
			if err != nil {
				return errorResponse(FormatValidationError("format", err.Error()))
			}
			encoding = f
		}

		r, err := gen.Request(ctx, topic)
		if err != nil {
			return errorResponse(FormatError(roadmap.UserMessage(err)))
		}

		if encoding == "" {
			return markdownResponse(FormatRoadmap(r, PresentOptions{HideAnswers: args.HideAnswers}))
		}

		var buf bytes.Buffer
		if err := roadmap.Encode(&buf, r, encoding); err != nil {
			return errorResponse(FormatError(err.Error()))
		}
		return markdownResponse(buf.String())
	}
}

func markdownResponse(markdown string) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: markdown}},
	}, nil
}

func errorResponse(formatted string) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: formatted}},
		IsError: true,
	}, nil
}
