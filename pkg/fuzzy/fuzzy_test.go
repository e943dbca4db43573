package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"탐나라호", "탐나라호", 0},
		{"탐나라호", "탐나라", 1},
		{"Hello", "hello", 0}, // normalized to lowercase
	}
	for _, tt := range tests {
		if got := LevenshteinDistance(tt.s1, tt.s2); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.want)
		}
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		text      string
		threshold int
		want      bool
	}{
		{"exact substring", "탐나라", "탐나라호", 1, true},
		{"one typo", "tamnarz", "tamnara ferry", 2, true},
		{"prefix of word", "ferr", "ferry schedule", 1, true},
		{"unrelated", "잠수함", "화물 컨테이너 터미널 정기 점검 일정표 안내문입니다 오늘자", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyMatch(tt.query, tt.text, tt.threshold); got != tt.want {
				t.Errorf("FuzzyMatch(%q, %q, %d) = %v, want %v", tt.query, tt.text, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestMatchVoyageLog(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"ship name", "탐나라호", true},
		{"captain name", "김선장", true},
		{"engineer name", "박기관", true},
		{"memo", "안개", true},
		{"no match", "전혀다른검색어입니다", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchVoyageLog(tt.query, "탐나라호", "김선장", "박기관", "짙은 안개로 지연 출항")
			if got != tt.want {
				t.Errorf("MatchVoyageLog(%q, ...) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestRelevanceScoreOrdering(t *testing.T) {
	// A ship-name hit must outrank a captain-name hit, which must outrank a
	// memo-only hit.
	shipHit := RelevanceScore("탐나라호", "탐나라호", "김선장", "")
	captainHit := RelevanceScore("김선장", "탐나라호", "김선장", "")
	memoHit := RelevanceScore("안개", "탐나라호", "김선장", "짙은 안개")

	if !(shipHit > captainHit) {
		t.Errorf("ship hit %v not above captain hit %v", shipHit, captainHit)
	}
	if !(captainHit > memoHit) {
		t.Errorf("captain hit %v not above memo hit %v", captainHit, memoHit)
	}
	if score := RelevanceScore("잠수함", "탐나라호", "김선장", ""); score != 0 {
		t.Errorf("unrelated query scored %v, want 0", score)
	}
}
