package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wellora/assessment-backend/internal/scoring"
)

// anthropicClient is the concrete Narrator backed by the Anthropic Messages API.
type anthropicClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicClient returns a Narrator that calls the Anthropic API.
//   - apiKey: your ANTHROPIC_API_KEY
//   - model:  e.g. "claude-sonnet-4-5"
func NewAnthropicClient(apiKey, model string) Narrator {
	return &anthropicClient{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// ─── ANTHROPIC API SHAPES ─────────────────────────────────────────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ─── NARRATIVE RESULT JSON ────────────────────────────────────────────────────
// The model is prompted to respond in this exact JSON shape so we can parse
// it without regex heuristics.

type narrativeJSON struct {
	Summary  string            `json:"summary"`
	Sections map[string]string `json:"sections"` // domain key → narrative
}

// ─── IMPLEMENTATION ───────────────────────────────────────────────────────────

const systemPrompt = `You are a compassionate health educator writing a breast health risk assessment summary.
You will receive the scored assessment: an overall risk category, a user profile, and per-section scores with the risk factors that were identified.
Each section has a key (e.g. "lifestyle"), a title, a health score (0-100, higher is better), a risk level (low/moderate/high), and a list of risk factor labels.

Your job is to produce:
1. A summary: 2-4 sentences giving an honest, calm overview of the overall picture. Never alarmist, never dismissive. Risk factors are not a diagnosis.
2. A sections object: for each section (keyed by its section key), 2-3 sentences explaining what the identified factors mean for this person and the single most useful next step. Skip sections with no factors if you have nothing useful to add.

Respond ONLY with valid JSON matching this exact schema, no markdown fences, no preamble:
{
  "summary": "...",
  "sections": {
    "lifestyle": "...",
    "familyHistory": "..."
  }
}`

// GenerateNarrative calls the Anthropic API and returns an AI-authored
// narrative for the scored assessment.
func (c *anthropicClient) GenerateNarrative(ctx context.Context, input NarrativeInput) (scoring.Narrative, error) {
	if len(input.Sections) == 0 {
		return scoring.Narrative{}, nil
	}

	reqBody := anthropicRequest{
		Model:     c.model,
		MaxTokens: 2048,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildPrompt(input)},
		},
	}

	raw, err := c.call(ctx, reqBody)
	if err != nil {
		return scoring.Narrative{}, err
	}

	// Strip any accidental markdown fences the model may have added.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var parsed narrativeJSON
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return scoring.Narrative{}, fmt.Errorf("ai: parse response JSON: %w (raw: %.200s)", err, raw)
	}

	return scoring.Narrative{
		Summary:  parsed.Summary,
		Sections: parsed.Sections,
	}, nil
}

// call sends one request to the Anthropic Messages API and returns the
// text content of the first content block.
func (c *anthropicClient) call(ctx context.Context, reqBody anthropicRequest) (string, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.anthropic.com/v1/messages",
		bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB cap
	if err != nil {
		return "", fmt.Errorf("ai: read response body: %w", err)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("ai: unmarshal response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("ai: API error %s: %s", parsed.Error.Type, parsed.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai: unexpected status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("ai: no text content in response")
}

// buildPrompt serialises the scored assessment into a compact prompt string.
func buildPrompt(input NarrativeInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall risk category: %s\n", input.RiskCategory)
	fmt.Fprintf(&sb, "User profile: %s\n\n", input.UserProfile)
	sb.WriteString("Sections:\n\n")

	for _, s := range input.Sections {
		fmt.Fprintf(&sb, "key: %s\n", s.Domain)
		fmt.Fprintf(&sb, "title: %s\n", scoring.DomainTitle(s.Domain))
		fmt.Fprintf(&sb, "score: %d/100, risk level: %s\n", s.Score, s.RiskLevel)
		if len(s.RiskFactors) > 0 {
			fmt.Fprintf(&sb, "factors: %s\n", strings.Join(s.RiskFactors, "; "))
		} else {
			sb.WriteString("factors: none identified\n")
		}
		sb.WriteString("---\n")
	}

	return sb.String()
}
