// Package suggest asks a text-generation service for a daily-special
// promotion covering high-stock items.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shopledger/domain"
)

const (
	// DefaultThreshold is the stock level above which a product is pitched
	// to the suggestion service.
	DefaultThreshold = 10

	// FallbackText is shown whenever the service cannot be reached.
	FallbackText = "The suggestion service is unavailable right now. " +
		"Try a combo offer on your highest-stock items to move them today."

	defaultModel   = "gemini-2.5-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultTimeout = 30 * time.Second
)

// Item is one high-stock product pitched to the service.
type Item struct {
	Name  string
	Stock int
}

// HighStock filters the snapshot down to products with stock above the
// threshold, preserving catalog order.
func HighStock(snap domain.Catalog, threshold int) []Item {
	out := make([]Item, 0, len(snap.Products))
	for _, p := range snap.Products {
		if p.Stock > threshold {
			out = append(out, Item{Name: p.Name, Stock: p.Stock})
		}
	}
	return out
}

// Client calls the Gemini generateContent endpoint. The zero credential is
// valid: DailySpecial then reports SuggestionUnavailable instead of calling
// out.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient constructs a client with the default model, endpoint and a
// request timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      defaultModel,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// request/response shapes for the generateContent REST call
type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// DailySpecial sends the high-stock items to the service and returns a short
// promotional message. Every failure mode comes back as a
// SuggestionUnavailableError; callers show FallbackText.
func (c *Client) DailySpecial(ctx context.Context, items []Item) (string, error) {
	if c.APIKey == "" {
		return "", domain.NewSuggestionUnavailableError("no API key configured", nil)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: buildPrompt(items)}}}},
	})
	if err != nil {
		return "", domain.NewSuggestionUnavailableError("encode request", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewSuggestionUnavailableError("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", domain.NewSuggestionUnavailableError("call service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewSuggestionUnavailableError(
			fmt.Sprintf("service returned %s", resp.Status), nil)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", domain.NewSuggestionUnavailableError("decode response", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", domain.NewSuggestionUnavailableError("empty response", nil)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(items []Item) string {
	var list strings.Builder
	for _, it := range items {
		fmt.Fprintf(&list, "- %s (Stock: %d)\n", it.Name, it.Stock)
	}
	return fmt.Sprintf(`You are a marketing assistant for "Maiyogan Bakery", a local Indian bakery.
Your task is to suggest a creative "Daily Special" promotion to attract customers and sell items that are high in stock.

Here are the items with high stock today:
%s
Based on this list, create a short, catchy, and appealing promotional message for the daily special. It could be a combo offer, a discount on a specific item, or a creative new way to present them.

Your response should be:
1. Brief and to the point (2-3 sentences).
2. Sound friendly and appealing to customers.
3. Be formatted as plain text.`, list.String())
}
