package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const groqURL = "https://api.groq.com/openai/v1/chat/completions"

type GroqClient struct {
	apiKey string
	model  string
}

func NewGroqClient() *GroqClient {
	return &GroqClient{
		apiKey: os.Getenv("GROQ_API_KEY"),
		model:  os.Getenv("GROQ_MODEL"),
	}
}

// Chat sends one system+user message pair and returns the completion text.
// A single attempt; the HTTP timeout is the hard cap on how long a slow
// service can stall the interaction.
func (g *GroqClient) Chat(ctx context.Context, system string, user string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GROQ_API_KEY")
	}
	if g.model == "" {
		return "", errors.New("missing GROQ_MODEL")
	}

	payload := map[string]any{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		groqURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: groq api error: %s", ErrUnavailable, string(raw))
	}

	// OpenAI-compatible response shape
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty groq response", ErrUnavailable)
	}

	return result.Choices[0].Message.Content, nil
}
