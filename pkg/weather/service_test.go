package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func geminiResponse(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func TestFetchParsesFencedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiResponse("```json\n{\"temp\": \"18°C\", \"condition\": \"흐림\", \"windSpeed\": \"3m/s\", \"humidity\": \"60%\"}\n```"))
	}))
	defer srv.Close()

	s := NewService("key")
	s.BaseURL = srv.URL
	info := s.Fetch(context.Background())

	if info.Temp != "18°C" || info.Condition != "흐림" || info.WindSpeed != "3m/s" || info.Humidity != "60%" {
		t.Errorf("Fetch() = %+v", info)
	}
	if info.LastUpdated == "" {
		t.Error("LastUpdated not set")
	}
}

func TestFetchFillsMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiResponse(`{"temp": "20°C"}`))
	}))
	defer srv.Close()

	s := NewService("key")
	s.BaseURL = srv.URL
	info := s.Fetch(context.Background())

	if info.Temp != "20°C" {
		t.Errorf("Temp = %q, want 20°C", info.Temp)
	}
	if info.Condition != "맑음" || info.WindSpeed != "0m/s" || info.Humidity != "50%" {
		t.Errorf("per-field defaults not applied: %+v", info)
	}
}

func TestFetchFallbackWithoutKey(t *testing.T) {
	s := NewService("")
	info := s.Fetch(context.Background())
	if info.Temp != "15°C" || info.Condition != "맑음 (기본값)" {
		t.Errorf("Fetch() without key = %+v, want fallback defaults", info)
	}
}

func TestFetchFallbackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewService("key")
	s.BaseURL = srv.URL
	info := s.Fetch(context.Background())
	if info.Condition != "맑음 (기본값)" {
		t.Errorf("Fetch() on upstream error = %+v, want fallback defaults", info)
	}
}

func TestFetchFallbackOnUnparsableText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, geminiResponse("오늘 날씨는 맑습니다."))
	}))
	defer srv.Close()

	s := NewService("key")
	s.BaseURL = srv.URL
	info := s.Fetch(context.Background())
	if info.Condition != "맑음 (기본값)" {
		t.Errorf("Fetch() on unparsable text = %+v, want fallback defaults", info)
	}
}
