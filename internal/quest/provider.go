package quest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quests-lambda/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultTimeout = 30 * time.Second

// Provider wraps the hosted model. Complete returns the raw model text.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the Gemini API endpoint, e.g. for a proxy.
	BaseURL string
}

type geminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrProviderUnavailable)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %w", ErrProviderUnavailable, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &geminiProvider{client: client, model: cfg.Model, timeout: timeout}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	callID := uuid.NewString()
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"call_id": callID,
		"model":   p.model,
	})

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.WithError(err).Errorf("Gemini call timed out after %s", p.timeout)
			return "", fmt.Errorf("%w (call_id=%s): timed out after %s", ErrProviderError, callID, p.timeout)
		}
		log.WithError(err).Error("Gemini call failed")
		return "", fmt.Errorf("%w (call_id=%s): %w", ErrProviderError, callID, err)
	}

	raw := result.Text()
	log.WithField("elapsed", time.Since(start)).Debugf("Raw Gemini response:\n%s", raw)

	if raw == "" {
		return "", fmt.Errorf("%w (call_id=%s): empty response from model", ErrProviderError, callID)
	}
	return raw, nil
}
