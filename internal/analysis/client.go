// Package analysis calls an optional generative-text service to produce a
// short customer analysis. The portal works without it: when the key is
// missing or the service errors, a canned fallback analysis is returned.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/ecm-digital/bankingapp-sub000/internal/domain"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
	maxRetries     = 3
	initialDelay   = time.Second
)

// Analysis is the result shown on the customer profile.
type Analysis struct {
	Summary         string   `json:"summary"`
	RiskLevel       string   `json:"riskLevel"`
	Recommendations []string `json:"recommendations"`
	// Source is "model" for a live response and "fallback" for the canned one.
	Source string `json:"source"`
}

// Client talks to the completion endpoint with a bearer API key.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient builds a client. Empty baseURL/model fall back to defaults; an
// empty apiKey makes every call return the fallback analysis.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// AnalyzeCustomer produces a best-effort analysis of a customer and their
// recent transactions. Any failure degrades to the canned fallback; the
// returned error is always nil by design of the feature.
func (c *Client) AnalyzeCustomer(ctx context.Context, customer domain.Customer, recent []domain.Transaction) Analysis {
	if c.apiKey == "" {
		return fallbackAnalysis(customer)
	}

	content, err := c.complete(ctx, buildPrompt(customer, recent))
	if err != nil {
		return fallbackAnalysis(customer)
	}

	parsed, ok := extractAnalysis(content)
	if !ok {
		return fallbackAnalysis(customer)
	}
	parsed.Source = "model"
	return parsed
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a banking assistant. Reply with a single JSON object with keys summary, riskLevel (LOW|MEDIUM|HIGH) and recommendations (array of strings)."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt))) * initialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http request: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr chatError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
				lastErr = fmt.Errorf("completion API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
			} else {
				lastErr = fmt.Errorf("completion API error (%d)", resp.StatusCode)
			}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				continue
			}
			return "", lastErr
		}

		var parsed chatResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
		if len(parsed.Choices) == 0 {
			return "", fmt.Errorf("empty completion response")
		}
		return parsed.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, lastErr)
}

func buildPrompt(customer domain.Customer, recent []domain.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer %s, segment %s, risk profile %s, %d accounts.\n",
		customer.FullName(), customer.Segment, customer.RiskProfile, len(customer.Accounts))
	for _, acc := range customer.Accounts {
		fmt.Fprintf(&b, "Account %s: %.2f %s (%s)\n", acc.ID, acc.Balance, acc.Currency, acc.Type)
	}
	if len(recent) > 0 {
		b.WriteString("Recent transactions:\n")
		for _, tx := range recent {
			fmt.Fprintf(&b, "- %s %.2f %s %s\n", tx.Type, tx.Amount, tx.Currency, tx.Status)
		}
	}
	b.WriteString("Analyze this customer for a bank employee.")
	return b.String()
}

// extractAnalysis pulls a JSON object out of free-form model output. Models
// often wrap the object in prose or code fences, so the parse is best effort
// on the outermost braces.
func extractAnalysis(content string) (Analysis, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return Analysis{}, false
	}

	var parsed Analysis
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return Analysis{}, false
	}
	if parsed.Summary == "" {
		return Analysis{}, false
	}
	if parsed.RiskLevel == "" {
		parsed.RiskLevel = "MEDIUM"
	}
	return parsed, true
}

func fallbackAnalysis(customer domain.Customer) Analysis {
	return Analysis{
		Summary: fmt.Sprintf("%s is a %s segment customer with %d account(s). Automated analysis is unavailable; showing a standard overview.",
			customer.FullName(), strings.ToLower(string(customer.Segment)), len(customer.Accounts)),
		RiskLevel: string(customer.RiskProfile),
		Recommendations: []string{
			"Review recent account activity with the customer",
			"Check for products matching the customer's segment",
		},
		Source: "fallback",
	}
}
