package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(t *testing.T, inner any) string {
	t.Helper()
	text, err := json.Marshal(inner)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": string(text)}}}},
		},
	})
	require.NoError(t, err)
	return string(body)
}

func TestRecommendWithoutKeySkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewRecommendService("", "gemini-2.5-flash")
	svc.BaseURL = srv.URL

	rec := svc.Recommend(context.Background(), "something spicy", "1: Tagine (75.00 MAD)")
	assert.Equal(t, msgMissingKey, rec.Message)
	assert.Empty(t, rec.RecommendedItemIDs)
	assert.False(t, called, "degraded mode must not touch the network")
}

func TestRecommendParsesStructuredReply(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "1: Tagine (75.00 MAD)")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "something spicy")
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType)

		w.Write([]byte(geminiReply(t, map[string]any{
			"message":            "Try the tagine!",
			"recommendedItemIds": []int64{1, 3},
		})))
	}))
	defer srv.Close()

	svc := NewRecommendService("test-key", "gemini-2.5-flash")
	svc.BaseURL = srv.URL

	rec := svc.Recommend(context.Background(), "something spicy", "1: Tagine (75.00 MAD)")
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "Try the tagine!", rec.Message)
	assert.Equal(t, []int64{1, 3}, rec.RecommendedItemIDs)
}

func TestRecommendEmptyMessageGetsDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply(t, map[string]any{"recommendedItemIds": []int64{2}})))
	}))
	defer srv.Close()

	svc := NewRecommendService("test-key", "gemini-2.5-flash")
	svc.BaseURL = srv.URL

	rec := svc.Recommend(context.Background(), "anything", "")
	assert.Equal(t, msgDefault, rec.Message)
	assert.Equal(t, []int64{2}, rec.RecommendedItemIDs)
}

func TestRecommendDegradesOnNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	svc := NewRecommendService("test-key", "gemini-2.5-flash")
	svc.BaseURL = srv.URL

	rec := svc.Recommend(context.Background(), "anything", "")
	assert.Equal(t, msgDegraded, rec.Message)
	assert.Empty(t, rec.RecommendedItemIDs)
}

func TestRecommendDegradesOnBadPayloads(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"http error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"non-json body": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("oops"))
		},
		"no candidates": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		},
		"candidate text not json": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"not json"}]}}]}`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			svc := NewRecommendService("test-key", "gemini-2.5-flash")
			svc.BaseURL = srv.URL

			rec := svc.Recommend(context.Background(), "anything", "")
			assert.Equal(t, msgDegraded, rec.Message)
			assert.Empty(t, rec.RecommendedItemIDs)
		})
	}
}
