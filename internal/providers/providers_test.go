package providers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGeminiServer(t *testing.T, status int, body string) (*httptest.Server, *map[string]any) {
	t.Helper()
	received := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestGeminiClient_Generate(t *testing.T) {
	srv, received := newGeminiServer(t, http.StatusOK,
		`{"choices":[{"index":0,"message":{"role":"assistant","content":"{\"course_name\":\"Go\"}"}}]}`)

	client := NewGeminiClient(GeminiConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-test", Timeout: time.Second}, discardLogger())

	text, err := client.Generate(context.Background(), "Topic: Go")
	require.NoError(t, err)
	assert.Equal(t, `{"course_name":"Go"}`, text)

	assert.Equal(t, "gemini-test", (*received)["model"])
	messages := (*received)["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
	assert.Equal(t, "Topic: Go", messages[0].(map[string]any)["content"])
}

func TestGeminiClient_EmptyReply(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusOK, `{"choices":[]}`)
	client := NewGeminiClient(GeminiConfig{APIKey: "test-key", BaseURL: srv.URL}, discardLogger())

	_, err := client.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestGeminiClient_APIError(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusTooManyRequests,
		`{"error":{"message":"quota exceeded","type":"rate_limit","code":429}}`)
	client := NewGeminiClient(GeminiConfig{APIKey: "test-key", BaseURL: srv.URL}, discardLogger())

	_, err := client.Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestYouTubeClient_Search(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"items":[
			{"id":{"kind":"youtube#video","videoId":"abc"},"snippet":{"title":"Go basics","thumbnails":{"default":{"url":"https://i.ytimg.com/vi/abc/default.jpg"}}}},
			{"id":{"kind":"youtube#channel"},"snippet":{"title":"A channel"}},
			{"id":{"kind":"youtube#video","videoId":"def"},"snippet":{"title":"Go types"}}
		]}`)
	}))
	t.Cleanup(srv.Close)

	client, err := NewYouTubeClient(context.Background(), "yt-key", discardLogger(),
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	videos, err := client.Search(context.Background(), "Go Types", 2)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "abc", videos[0].ID)
	assert.Equal(t, "Go basics", videos[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", videos[0].URL)
	assert.Equal(t, "https://i.ytimg.com/vi/abc/default.jpg", videos[0].Thumbnail)
	assert.Equal(t, "", videos[1].Thumbnail)

	assert.Equal(t, []string{"Go Types"}, query["q"])
	assert.Equal(t, []string{"2"}, query["maxResults"])
	assert.Equal(t, []string{"video"}, query["type"])
}

func TestYouTubeClient_SearchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"quotaExceeded"}}`)
	}))
	t.Cleanup(srv.Close)

	client, err := NewYouTubeClient(context.Background(), "yt-key", discardLogger(),
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "Go", 2)
	assert.Error(t, err)
}
