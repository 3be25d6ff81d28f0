package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	appconfig "swipe-travel-backend/internal/config"

	"swipe-travel-backend/internal/models"
)

const defaultGeminiModel = "gemini-pro"

// GeminiGenerator implements ItineraryGenerator against the Gemini
// generateContent REST endpoint.
type GeminiGenerator struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiGenerator creates a Gemini-backed itinerary generator
func NewGeminiGenerator(cfg appconfig.LLMConfig) *GeminiGenerator {
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiGenerator{
		apiKey:     cfg.APIKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateItinerary asks the model to pick and order places from the
// candidate list. Any transport, status or parse failure is returned as an
// error for the caller's fallback to absorb.
func (g *GeminiGenerator) GenerateItinerary(ctx context.Context, preferences map[string]any, places []models.Place) (*Itinerary, error) {
	prompt, err := buildItineraryPrompt(preferences, places)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model, g.apiKey,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("model returned no candidates")
	}

	return parseItinerary(parsed.Candidates[0].Content.Parts[0].Text)
}

func buildItineraryPrompt(preferences map[string]any, places []models.Place) (string, error) {
	type candidate struct {
		ID          int64    `json:"id"`
		Name        string   `json:"name"`
		City        string   `json:"city"`
		Tags        []string `json:"tags"`
		Description *string  `json:"description"`
	}
	candidates := make([]candidate, 0, len(places))
	for _, p := range places {
		candidates = append(candidates, candidate{
			ID: p.ID, Name: p.Name, City: p.City, Tags: p.Tags, Description: p.Description,
		})
	}

	prefsJSON, err := json.Marshal(preferences)
	if err != nil {
		return "", fmt.Errorf("failed to encode preferences: %w", err)
	}
	placesJSON, err := json.Marshal(candidates)
	if err != nil {
		return "", fmt.Errorf("failed to encode places: %w", err)
	}

	return fmt.Sprintf(`Act as a travel guide for Thailand.
User Preferences: %s
Available Liked Places: %s

Select the best places from the "Available Liked Places" list to create a route/itinerary based on the preferences.
You can also reorder them logically for travel.
Limit the number of places based on duration (e.g. 1 day = ~3 places, 2 days = ~6 places).

Return strictly JSON format with the following structure:
{
    "trip_name": "Trip Name",
    "description": "Short trip overview",
    "selected_place_ids": [1, 2, 3]
}`, prefsJSON, placesJSON), nil
}

// parseItinerary extracts the itinerary JSON from the model's text answer,
// stripping markdown code fences and tolerating ids sent as strings.
func parseItinerary(text string) (*Itinerary, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var raw struct {
		TripName         string `json:"trip_name"`
		Description      string `json:"description"`
		SelectedPlaceIDs []any  `json:"selected_place_ids"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary: %w", err)
	}

	itinerary := &Itinerary{
		TripName:    raw.TripName,
		Description: raw.Description,
	}
	for _, v := range raw.SelectedPlaceIDs {
		switch id := v.(type) {
		case float64:
			itinerary.SelectedPlaceIDs = append(itinerary.SelectedPlaceIDs, int64(id))
		case string:
			if n, err := strconv.ParseInt(id, 10, 64); err == nil {
				itinerary.SelectedPlaceIDs = append(itinerary.SelectedPlaceIDs, n)
			}
		}
	}
	return itinerary, nil
}
