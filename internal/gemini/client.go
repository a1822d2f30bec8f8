package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Client wraps the Gemini image model used for background generation.
type Client struct {
	client *genai.Client
	model  string
}

// GeneratedImage is one inline image returned by the model.
type GeneratedImage struct {
	Data     []byte
	MimeType string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// GenerateBackground asks the model for a single background image.
func (c *Client) GenerateBackground(ctx context.Context, prompt, aspectRatio string) (*GeneratedImage, error) {
	content := &genai.Content{
		Parts: []*genai.Part{
			genai.NewPartFromText(prompt),
		},
	}

	var cfg *genai.GenerateContentConfig
	if aspectRatio != "" {
		cfg = &genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: aspectRatio,
			},
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{content}, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return &GeneratedImage{
					Data:     part.InlineData.Data,
					MimeType: mimeType,
				}, nil
			}
		}
	}

	return nil, fmt.Errorf("no image data in response")
}

func (c *Client) RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
