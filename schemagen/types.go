package schemagen

// Provider identifies which backend fulfils SendRequest.
type Provider string

const (
	// ProviderRemote posts the Definition to the generation service (default).
	ProviderRemote Provider = "remote"
	// ProviderOpenAI generates locally through OpenAI structured outputs.
	ProviderOpenAI Provider = "openai"
	// ProviderGoogle generates locally through Gemini / Vertex AI response schemas.
	ProviderGoogle Provider = "google"
)

// Response is the parsed result of a generation call.
type Response struct {
	// Data is the generated structure as decoded JSON (nil when absent).
	Data any `json:"data"`
	// USDCost is the reported cost, nil when the backend did not report one.
	USDCost *float64 `json:"usdCost"`
}
