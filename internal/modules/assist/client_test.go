package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "test-model", 2*time.Second, zap.NewNop())
	c.SetBaseURL(srv.URL)
	return c
}

func modelReply(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		})
	}
}

func TestEnhance_ReturnsServiceText(t *testing.T) {
	c := newTestClient(t, modelReply("A warmer invitation"))

	out := c.Enhance(context.Background(), "come to the picnic", "notice", "en")
	assert.Equal(t, "A warmer invitation", out)
}

func TestEnhance_FallsBackToOriginalOnFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	out := c.Enhance(context.Background(), "come to the picnic", "notice", "en")
	assert.Equal(t, "come to the picnic", out)
}

func TestEnhance_UnconfiguredEchoesInput(t *testing.T) {
	c := NewClient("", "test-model", time.Second, zap.NewNop())

	out := c.Enhance(context.Background(), "original", "news", "en")
	assert.Equal(t, "original", out)
	assert.False(t, c.Enabled())
}

func TestTranslate_CachesPerTarget(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		modelReply("tradução")(w, r)
	})

	first := c.Translate(context.Background(), "event-1", "translation", "pt")
	second := c.Translate(context.Background(), "event-1", "translation", "pt")

	assert.Equal(t, "tradução", first)
	assert.Equal(t, "tradução", second)
	assert.Equal(t, 1, calls)

	// Changed source text for the same target re-queries.
	c.Translate(context.Background(), "event-1", "new text", "pt")
	assert.Equal(t, 2, calls)
}

func TestTranslate_StaleResponseDiscarded(t *testing.T) {
	inFlight := make(chan struct{})
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(inFlight)
		<-release
		modelReply("slow result")(w, r)
	})

	done := make(chan string)
	go func() {
		done <- c.Translate(context.Background(), "event-1", "text", "pt")
	}()

	// Wait until the first request has registered its generation and is
	// blocked in flight, then supersede it. The first response must not
	// land in the cache.
	<-inFlight
	c.mu.Lock()
	c.generations["event-1|pt"]++
	c.mu.Unlock()

	close(release)
	out := <-done
	assert.Equal(t, "text", out)

	c.mu.Lock()
	_, cached := c.translations["event-1|pt"]
	c.mu.Unlock()
	assert.False(t, cached)
}

func TestDailyVerse_ParsesJSON(t *testing.T) {
	c := newTestClient(t, modelReply("```json\n{\"text\":\"Rejoice always.\",\"reference\":\"1 Thessalonians 5:16\",\"version\":\"NIV\"}\n```"))

	v := c.DailyVerse(context.Background(), "en")
	assert.Equal(t, "Rejoice always.", v.Text)
	assert.Equal(t, "1 Thessalonians 5:16", v.Reference)
}

func TestDailyVerse_FallbackByLocale(t *testing.T) {
	c := NewClient("", "test-model", time.Second, zap.NewNop())

	en := c.DailyVerse(context.Background(), "en")
	assert.Equal(t, "Psalm 23:1", en.Reference)

	pt := c.DailyVerse(context.Background(), "pt-BR")
	assert.Equal(t, "Salmos 23:1", pt.Reference)
}

func TestDailyVerse_FallbackOnMalformedResponse(t *testing.T) {
	c := newTestClient(t, modelReply("not json at all"))

	v := c.DailyVerse(context.Background(), "en")
	assert.Equal(t, "Psalm 23:1", v.Reference)
}

func TestSuggestEvents_ParsesArray(t *testing.T) {
	c := newTestClient(t, modelReply(`[{"title":"Potluck","description":"Bring a dish"}]`))

	drafts := c.SuggestEvents(context.Background(), "July 2025", "en")
	require.Len(t, drafts, 1)
	assert.Equal(t, "Potluck", drafts[0].Title)
}

func TestSuggestEvents_EmptyOnFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	assert.Empty(t, c.SuggestEvents(context.Background(), "July 2025", "en"))
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSON(`{"a":1}`))
}
