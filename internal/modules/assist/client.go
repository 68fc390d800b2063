package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// EventDraft is a suggested calendar entry produced by the text service.
type EventDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Verse is a daily scripture verse.
type Verse struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
	Version   string `json:"version"`
}

// Client talks to the Google generative-language REST API. Every method
// degrades to a safe fallback on failure or when no key is configured;
// callers never receive an error from this package.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
	log     *zap.Logger

	mu           sync.Mutex
	translations map[string]translation
	generations  map[string]uint64
}

type translation struct {
	source string
	result string
}

func NewClient(apiKey, model string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		apiKey:       apiKey,
		model:        model,
		baseURL:      defaultBaseURL,
		httpc:        &http.Client{Timeout: timeout},
		log:          log,
		translations: make(map[string]translation),
		generations:  make(map[string]uint64),
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Enhance rewrites text for the given category and locale. The original
// text comes back unchanged on any failure.
func (c *Client) Enhance(ctx context.Context, text, category, locale string) string {
	if !c.Enabled() || strings.TrimSpace(text) == "" {
		return text
	}

	prompt := fmt.Sprintf(
		"Rewrite the following %s announcement for a church community so it is warm, clear and inviting. Respond in locale %q with only the rewritten text, no preamble.\n\n%s",
		category, localeOrDefault(locale), text,
	)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("text enhancement failed, returning original", zap.Error(err))
		return text
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}
	return out
}

// Translate renders text into the target locale. Results are cached per
// target so repeated views of the same item do not re-query, and a
// generation counter per target lets the latest concurrent request win
// while stale responses are discarded.
func (c *Client) Translate(ctx context.Context, targetID, text, locale string) string {
	if !c.Enabled() || strings.TrimSpace(text) == "" {
		return text
	}

	key := targetID + "|" + localeOrDefault(locale)

	c.mu.Lock()
	if cached, ok := c.translations[key]; ok && cached.source == text {
		c.mu.Unlock()
		return cached.result
	}
	c.generations[key]++
	gen := c.generations[key]
	c.mu.Unlock()

	prompt := fmt.Sprintf(
		"Translate the following text into locale %q. Respond with only the translation.\n\n%s",
		localeOrDefault(locale), text,
	)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("translation failed, returning original",
			zap.String("target_id", targetID),
			zap.Error(err))
		return text
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[key] != gen {
		// A newer request for this target started; drop this result.
		return text
	}
	c.translations[key] = translation{source: text, result: out}
	return out
}

// DailyVerse fetches a short scripture verse for the locale, falling
// back to a fixed verse when the service is unavailable.
func (c *Client) DailyVerse(ctx context.Context, locale string) Verse {
	loc := localeOrDefault(locale)
	if !c.Enabled() {
		return fallbackVerse(loc)
	}

	prompt := fmt.Sprintf(
		`Pick one short encouraging Bible verse for today. Respond with only a JSON object {"text":"...","reference":"...","version":"..."} in locale %q.`,
		loc,
	)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("daily verse fetch failed, using fallback", zap.Error(err))
		return fallbackVerse(loc)
	}

	var v Verse
	if err := json.Unmarshal([]byte(cleanJSON(out)), &v); err != nil || v.Text == "" {
		return fallbackVerse(loc)
	}
	return v
}

// SuggestEvents drafts candidate calendar entries for the given month.
// Any failure yields an empty slice.
func (c *Client) SuggestEvents(ctx context.Context, monthContext, locale string) []EventDraft {
	if !c.Enabled() {
		return nil
	}

	prompt := fmt.Sprintf(
		`Suggest three community calendar events for %s. Respond with only a JSON array of objects {"title":"...","description":"..."} in locale %q.`,
		monthContext, localeOrDefault(locale),
	)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("event suggestion failed", zap.Error(err))
		return nil
	}

	var drafts []EventDraft
	if err := json.Unmarshal([]byte(cleanJSON(out)), &drafts); err != nil {
		c.log.Warn("event suggestion returned malformed JSON", zap.Error(err))
		return nil
	}
	return drafts
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.NewString()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", requestID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request %s: unexpected status %d", requestID, resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("request %s: %w", requestID, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("request %s: empty response", requestID)
	}

	c.log.Debug("generative request completed",
		zap.String("request_id", requestID),
		zap.String("model", c.model))
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// cleanJSON strips markdown code fences the model sometimes wraps
// around JSON payloads.
func cleanJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func localeOrDefault(locale string) string {
	if locale == "" {
		return "en"
	}
	return locale
}

func fallbackVerse(locale string) Verse {
	if strings.HasPrefix(locale, "pt") {
		return Verse{
			Text:      "O Senhor é o meu pastor; nada me faltará.",
			Reference: "Salmos 23:1",
			Version:   "ARA",
		}
	}
	return Verse{
		Text:      "The Lord is my shepherd; I shall not want.",
		Reference: "Psalm 23:1",
		Version:   "KJV",
	}
}
