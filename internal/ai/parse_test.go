package ai

import (
	"math"
	"reflect"
	"testing"
)

func TestNormalizeJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare object", `{"score": 0.8}`, `{"score": 0.8}`},
		{"fenced", "```json\n{\"score\": 0.8}\n```", `{"score": 0.8}`},
		{"surrounding prose", `Sure! {"score": 0.8} Hope that helps.`, `{"score": 0.8}`},
		{"no object", "not json at all", "not json at all"},
		{"empty", "   ", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeJSONBlock(tc.input); got != tc.expected {
				t.Fatalf("got %q expected %q", got, tc.expected)
			}
		})
	}
}

func TestNormalizeJSONArray(t *testing.T) {
	input := "```\n[\"alpha\", \"beta\"]\n```"
	if got := normalizeJSONArray(input); got != `["alpha", "beta"]` {
		t.Fatalf("got %q", got)
	}
	if got := normalizeJSONArray(`words: ["alpha"] done`); got != `["alpha"]` {
		t.Fatalf("got %q", got)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in  float64
		out float64
	}{
		{0.5, 0.5},
		{-0.2, 0},
		{1.7, 1},
		{math.NaN(), 0},
	}
	for _, tc := range tests {
		if got := clampScore(tc.in); got != tc.out {
			t.Fatalf("clampScore(%f) = %f, expected %f", tc.in, got, tc.out)
		}
	}
}

func TestCleanWordList(t *testing.T) {
	input := []string{" Alpha ", "beta", "BETA", "two words", "digit7", "", "gamma"}
	expected := []string{"alpha", "beta", "gamma"}
	if got := cleanWordList(input); !reflect.DeepEqual(got, expected) {
		t.Fatalf("got %v expected %v", got, expected)
	}
}
