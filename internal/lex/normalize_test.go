package lex

import (
	"reflect"
	"testing"
)

func TestNormalizeConcept(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tokens []string
	}{
		{"drops stopwords", "project management for remote teams", []string{"project", "management", "remote", "teams"}},
		{"handles punctuation", "AI-powered invoicing, for freelancers!", []string{"ai", "powered", "invoicing", "freelancers"}},
		{"dedupes tokens", "notes notes and more notes", []string{"notes", "more"}},
		{"empty input", "   ", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profile := NormalizeConcept(tc.input)
			if !reflect.DeepEqual(profile.Tokens, tc.tokens) {
				t.Fatalf("expected tokens %v got %v", tc.tokens, profile.Tokens)
			}
		})
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Flow-HQ", "flowhq"},
		{"  Task Pilot 9 ", "taskpilot9"},
		{"---", ""},
	}

	for _, tc := range tests {
		if got := SanitizeLabel(tc.input); got != tc.expected {
			t.Fatalf("SanitizeLabel(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	got := Dedupe([]string{"Flow", "flow", "FLOW", "pilot"})
	if len(got) != 2 || got[0] != "Flow" || got[1] != "pilot" {
		t.Fatalf("unexpected dedupe result: %v", got)
	}
}
