package capabilities

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultGeminiModel balances extraction quality against latency for the
// skill-mining prompt.
const defaultGeminiModel = "gemini-2.0-flash"

const minePrompt = `Extract every skill, technology, and competency explicitly mentioned in the following document.
Return a JSON array of short strings, one per skill, using the exact surface form from the document.
Do not invent skills that are not mentioned. Return [] if none are found.

Document:
%s`

// GeminiMiner mines capabilities with the Gemini API. It satisfies Miner;
// failures are returned to the adapter, which degrades to the fallback policy.
type GeminiMiner struct {
	client *genai.Client
	model  string
}

// NewGeminiMiner creates a Gemini-backed miner. Model may be empty to use
// the default.
func NewGeminiMiner(ctx context.Context, apiKey, model string) (*GeminiMiner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiMiner{client: client, model: model}, nil
}

// Mine asks the model for the document's skill mentions as a JSON array.
func (m *GeminiMiner) Mine(ctx context.Context, text string) ([]string, error) {
	model := m.client.GenerativeModel(m.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(minePrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var mined []string
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &mined); err != nil {
		return nil, fmt.Errorf("failed to parse miner response: %w", err)
	}
	return mined, nil
}

// Close releases the underlying API client.
func (m *GeminiMiner) Close() error {
	return m.client.Close()
}

// extractTextFromResponse concatenates the text parts of the first candidate.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in response")
	}
	return sb.String(), nil
}

// cleanJSONBlock strips markdown code fences some models wrap around JSON.
func cleanJSONBlock(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
