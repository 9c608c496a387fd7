package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
)

const defaultTimeout = 30 * time.Second

// OutfitClient implements OutfitGenerator against a chat-completions
// style language-model API. Prompting stays minimal: the closet is
// serialized as JSON and the model is asked for structured output.
type OutfitClient struct {
	session *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewOutfitClient(apiKey, baseURL, model string) *OutfitClient {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OutfitClient{
		session: &http.Client{Timeout: defaultTimeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type outfitPayload struct {
	Outfits []struct {
		Title   string   `json:"title"`
		ItemIDs []string `json:"item_ids"`
		Notes   string   `json:"notes"`
	} `json:"outfits"`
}

const systemPrompt = "You are a fashion stylist. Given a closet as JSON and an occasion, " +
	"respond with JSON of the form {\"outfits\":[{\"title\":...,\"item_ids\":[...],\"notes\":...}]} " +
	"using only item ids from the closet."

// GenerateOutfits asks the model to compose outfits from the given
// closet items.
func (c *OutfitClient) GenerateOutfits(
	ctx context.Context,
	items []*domain.ClosetItem,
	req domain.OutfitRequest,
) (_ []domain.OutfitSuggestion, err error) {
	defer obs.Time(ctx, "llm.GenerateOutfits")(&err)

	if strings.TrimSpace(c.apiKey) == "" {
		return nil, fmt.Errorf("outfit client: api key is empty: %w", domain.ErrConfiguration)
	}

	closetJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal closet: %w", err)
	}

	userPrompt := fmt.Sprintf("Occasion: %s. Weather: %s. Style: %s.\nCloset: %s",
		req.Occasion, req.Weather, req.Style, closetJSON)

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
	body.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.session.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("outfit client: status %d: %w", resp.StatusCode, domain.ErrConfiguration)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("outfit client: status %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(b)), domain.ErrUpstream)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return nil, fmt.Errorf("outfit client: empty choices: %w", domain.ErrUpstream)
	}

	var parsed outfitPayload
	if err := json.Unmarshal([]byte(decoded.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("outfit client: malformed model output: %w", err)
	}

	out := make([]domain.OutfitSuggestion, 0, len(parsed.Outfits))
	for _, o := range parsed.Outfits {
		out = append(out, domain.OutfitSuggestion{
			Title:   o.Title,
			ItemIDs: o.ItemIDs,
			Notes:   o.Notes,
		})
	}

	return out, nil
}
