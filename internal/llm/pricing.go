package llm

// ModelPricing holds pricing info for a model (per 1M tokens in USD)
type ModelPricing struct {
	Provider    Provider
	Model       string
	InputPer1M  float64 // $ per 1M input tokens
	OutputPer1M float64 // $ per 1M output tokens
}

// PricingTable contains known model pricing. Ollama models run locally and
// are absent.
// Prices last updated: 2025-12
var PricingTable = map[string]ModelPricing{
	// OpenAI
	"gpt-4o":      {Provider: ProviderOpenAI, Model: "gpt-4o", InputPer1M: 2.50, OutputPer1M: 10.00},
	"gpt-4o-mini": {Provider: ProviderOpenAI, Model: "gpt-4o-mini", InputPer1M: 0.15, OutputPer1M: 0.60},
	"gpt-5-mini":  {Provider: ProviderOpenAI, Model: "gpt-5-mini", InputPer1M: 0.22, OutputPer1M: 1.80},

	// Anthropic
	"claude-3-5-haiku-latest": {Provider: ProviderAnthropic, Model: "claude-3-5-haiku-latest", InputPer1M: 0.80, OutputPer1M: 4.00},
	"claude-sonnet-4.5":       {Provider: ProviderAnthropic, Model: "claude-sonnet-4.5", InputPer1M: 3.00, OutputPer1M: 15.00},

	// Google
	"gemini-2.5-flash": {Provider: ProviderGemini, Model: "gemini-2.5-flash", InputPer1M: 0.07, OutputPer1M: 0.30},
	"gemini-2.5-pro":   {Provider: ProviderGemini, Model: "gemini-2.5-pro", InputPer1M: 1.25, OutputPer1M: 10.00},
}

// GetPricing returns pricing for a model, or nil if unknown
func GetPricing(model string) *ModelPricing {
	if p, ok := PricingTable[model]; ok {
		return &p
	}
	return nil
}

// Usage is an estimate of one round trip's size and cost.
type Usage struct {
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// EstimateUsage sizes a prompt/response pair and prices it for model. Unknown
// models cost zero.
func EstimateUsage(model, prompt, response string) Usage {
	u := Usage{
		InputTokens:  EstimateTokens(prompt),
		OutputTokens: EstimateTokens(response),
	}
	u.CostUSD = CalculateCost(model, u.InputTokens, u.OutputTokens)
	return u
}

// CalculateCost calculates cost in USD for token usage
func CalculateCost(model string, inputTokens, outputTokens int) float64 {
	p := GetPricing(model)
	if p == nil {
		return 0 // Unknown model
	}
	inputCost := float64(inputTokens) / 1_000_000 * p.InputPer1M
	outputCost := float64(outputTokens) / 1_000_000 * p.OutputPer1M
	return inputCost + outputCost
}
