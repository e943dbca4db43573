package weather

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Info is the dashboard weather card payload.
type Info struct {
	Temp        string `json:"temp"`
	Condition   string `json:"condition"`
	WindSpeed   string `json:"windSpeed"`
	Humidity    string `json:"humidity"`
	LastUpdated string `json:"lastUpdated"`
}

// Service fetches realtime weather for the ferry landing through the Gemini
// API with grounding search. The dashboard never depends on its correctness:
// every failure path returns fallback defaults instead of an error.
type Service struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{
		APIKey:     apiKey,
		BaseURL:    "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

const weatherPrompt = `현재 경기도 가평군 남이섬의 실시간 날씨 정보를 알려줘. 반드시 temp(기온), condition(날씨상태), windSpeed(풍속 m/s), humidity(습도 %) 키를 가진 JSON 형식으로만 응답해. 예: {"temp": "18°C", "condition": "맑음", "windSpeed": "3m/s", "humidity": "55%"}`

func fallback(reason string) *Info {
	return &Info{
		Temp:        "15°C",
		Condition:   "맑음 (기본값)",
		WindSpeed:   "2m/s",
		Humidity:    "45%",
		LastUpdated: reason,
	}
}

// Fetch returns current conditions, or fallback defaults on any failure.
func (s *Service) Fetch(ctx context.Context) *Info {
	if s.APIKey == "" {
		return fallback("API_KEY 미설정")
	}

	info, err := s.fetchRealtime(ctx)
	if err != nil {
		log.Printf("[Weather] fetch failed: %v", err)
		return fallback("연결 오류 (재시도 중)")
	}
	return info
}

func (s *Service) fetchRealtime(ctx context.Context) (*Info, error) {
	url := s.BaseURL + "/models/gemini-2.5-flash:generateContent?key=" + s.APIKey

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": weatherPrompt}}},
		},
		"tools": []map[string]interface{}{
			{"googleSearch": map[string]interface{}{}},
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error: %s", string(respBody))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}

	text, err := extractText(result)
	if err != nil {
		return nil, err
	}

	// The model sometimes wraps the JSON in a markdown fence.
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var raw struct {
		Temp      string `json:"temp"`
		Condition string `json:"condition"`
		WindSpeed string `json:"windSpeed"`
		Humidity  string `json:"humidity"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse weather JSON: %w", err)
	}

	info := &Info{
		Temp:        raw.Temp,
		Condition:   raw.Condition,
		WindSpeed:   raw.WindSpeed,
		Humidity:    raw.Humidity,
		LastUpdated: time.Now().Format("15:04"),
	}
	if info.Temp == "" {
		info.Temp = "15°C"
	}
	if info.Condition == "" {
		info.Condition = "맑음"
	}
	if info.WindSpeed == "" {
		info.WindSpeed = "0m/s"
	}
	if info.Humidity == "" {
		info.Humidity = "50%"
	}
	return info, nil
}

func extractText(result map[string]interface{}) (string, error) {
	if c, ok := result["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							return text, nil
						}
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no text in response")
}
