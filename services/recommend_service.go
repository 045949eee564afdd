package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Canned replies for the two recognized degraded states. Neither is treated
// as an error by callers.
const (
	msgMissingKey = "I'm sorry, I can't access my brain right now (API Key missing). But everything looks delicious!"
	msgDegraded   = "I'm having a little trouble connecting to the kitchen. Try looking at our popular items!"
	msgDefault    = "Here are some great choices!"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// Recommendation is the gateway's reply: a short message plus up to three
// product ids. Ids are validated against the catalogue by the caller, not
// here.
type Recommendation struct {
	Message            string  `json:"message"`
	RecommendedItemIDs []int64 `json:"recommendedItemIds"`
}

// Recommender translates a free-text craving into a recommendation.
type Recommender interface {
	Recommend(ctx context.Context, userQuery, menu string) Recommendation
}

// RecommendService calls the generative-language endpoint. It is best-effort:
// every failure degrades to a canned message and never surfaces an error.
type RecommendService struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewRecommendService(apiKey, model string) *RecommendService {
	return &RecommendService{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultGeminiBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Recommend makes one attempt per utterance; no retry. Without a configured
// key it short-circuits to the canned apology without touching the network.
func (s *RecommendService) Recommend(ctx context.Context, userQuery, menu string) Recommendation {
	if s.APIKey == "" {
		return Recommendation{Message: msgMissingKey}
	}

	prompt := fmt.Sprintf(`You are an expert Moroccan AI Food Critic for "WEKELNI".

Available Menu Items (format: ID: Name):
%s

User Query: %q

Return a JSON object with:
1. "message": A short, friendly, appetizing response (max 40 words).
2. "recommendedItemIds": An array of numbers corresponding to the IDs of 1-3 best matching items from the menu.

Do NOT output markdown code blocks. Just the raw JSON string.`, menu, userQuery)

	rec, err := s.call(ctx, prompt)
	if err != nil {
		slog.Error("recommendation call failed", "err", err)
		return Recommendation{Message: msgDegraded}
	}
	if rec.Message == "" {
		rec.Message = msgDefault
	}
	return rec
}

func (s *RecommendService) call(ctx context.Context, prompt string) (Recommendation, error) {
	body, err := json.Marshal(geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return Recommendation{}, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.BaseURL, s.Model, s.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Recommendation{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.Client.Do(req)
	if err != nil {
		return Recommendation{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Recommendation{}, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return Recommendation{}, err
	}

	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return Recommendation{}, err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return Recommendation{}, fmt.Errorf("no response text")
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &rec); err != nil {
		return Recommendation{}, err
	}
	return rec, nil
}
