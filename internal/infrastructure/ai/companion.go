// Package ai implements the journal companion on top of an OpenAI chat model.
//
// The companion never fails a journal write: when no model is configured, or
// the model call fails, it returns a fixed supportive reply instead.
package ai

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/config"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/metrics"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const systemPrompt = "You are a compassionate AI journal companion who provides empathetic and supportive responses."

const (
	unavailableResponse = "I'm sorry, but the AI service is not available at the moment. Please try again later."
	fallbackResponse    = "I'm here to listen and support you. Your thoughts and feelings are valid, and it's great that you're taking time to reflect through journaling. What would you like to explore further about your current situation?"
)

var (
	unavailableSuggestions = []string{"Consider talking to a trusted friend or professional"}
	fallbackSuggestions    = []string{"Consider what you're grateful for today", "Think about what you need most right now"}
)

// Options tune the model call
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	// RequestsPerMinute caps outgoing model calls; zero means unlimited
	RequestsPerMinute int
}

// Companion answers journal entries with a generated reply
type Companion struct {
	model   llms.Model
	opts    Options
	limiter *rate.Limiter
	log     *zap.Logger
}

var _ service.JournalCompanion = (*Companion)(nil)

// NewCompanion builds a companion from config. Without an API key the
// companion runs in fallback-only mode.
func NewCompanion(cfg *config.AIConfig, log *zap.Logger) (*Companion, error) {
	opts := Options{
		Model:             cfg.Model,
		MaxTokens:         cfg.MaxTokens,
		Temperature:       cfg.Temperature,
		Timeout:           cfg.Timeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
	}

	if cfg.APIKey == "" {
		log.Warn("OPENAI_API_KEY not set, journal companion will use fallback replies")
		return New(nil, opts, log), nil
	}

	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return New(model, opts, log), nil
}

// New wraps an llms.Model; a nil model means fallback-only
func New(model llms.Model, opts Options, log *zap.Logger) *Companion {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 500
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}

	return &Companion{
		model:   model,
		opts:    opts,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// Respond generates a reply to a journal entry. previous holds earlier
// entries, newest first, used as conversation context.
func (c *Companion) Respond(ctx context.Context, content string, moodBefore *int, previous []*entity.JournalEntry) (*entity.CompanionReply, error) {
	m := metrics.Get().CompanionRequests

	if c.model == nil {
		m.WithLabelValues("unavailable").Inc()
		return &entity.CompanionReply{
			Response:    unavailableResponse,
			MoodAfter:   moodBefore,
			Suggestions: slices.Clone(unavailableSuggestions),
		}, nil
	}

	text, err := c.generate(ctx, buildPrompt(content, moodBefore, previous))
	if err != nil {
		m.WithLabelValues("fallback").Inc()
		c.log.Warn("journal companion call failed, using fallback", zap.Error(err))
		return &entity.CompanionReply{
			Response:    fallbackResponse,
			MoodAfter:   moodBefore,
			Suggestions: slices.Clone(fallbackSuggestions),
		}, nil
	}

	m.WithLabelValues("ok").Inc()
	return &entity.CompanionReply{
		Response:    text,
		MoodAfter:   EstimateMoodAfter(content, moodBefore),
		Suggestions: Suggestions(moodBefore),
	}, nil
}

func (c *Companion) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limited: %w", err)
	}

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithMaxTokens(c.opts.MaxTokens),
		llms.WithTemperature(c.opts.Temperature),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
