package scoring

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStoplistScreen(t *testing.T) {
	s := NewStoplist(map[int][]string{
		5: {"slurone"},
		3: {"scam", "fraud"},
		1: {"meh"},
	})

	tests := []struct {
		name     string
		input    string
		severity int
		hits     []string
	}{
		{"clean name", "TaskFlow", 0, nil},
		{"substring match", "ScamShield", 3, []string{"scam"}},
		{"case and punctuation ignored", "Slur-One", 5, []string{"slurone"}},
		{"highest severity wins", "slurone-scam", 5, []string{"slurone"}},
		{"multiple hits sorted", "fraudscam", 3, []string{"fraud", "scam"}},
		{"empty name", "  ", 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			severity, hits := s.Screen(tc.input)
			if severity != tc.severity {
				t.Fatalf("severity = %d, expected %d", severity, tc.severity)
			}
			if !reflect.DeepEqual(hits, tc.hits) {
				t.Fatalf("hits = %v, expected %v", hits, tc.hits)
			}
		})
	}
}

func TestStoplistScreensUncappedSeverities(t *testing.T) {
	s := NewStoplist(map[int][]string{
		7: {"worst"},
		2: {"meh"},
	})

	if severity, hits := s.Screen("TheWorstApp"); severity != 7 || len(hits) != 1 {
		t.Fatalf("expected severity 7 match, got %d %v", severity, hits)
	}
	if severity, _ := s.Screen("worstmeh"); severity != 7 {
		t.Fatalf("highest severity should win, got %d", severity)
	}
	if severity, _ := s.Screen("mehonly"); severity != 2 {
		t.Fatalf("expected severity 2 match, got %d", severity)
	}
}

func TestStoplistNilSafe(t *testing.T) {
	var s *Stoplist
	if severity, hits := s.Screen("anything"); severity != 0 || hits != nil {
		t.Fatalf("nil stoplist should be clean, got %d %v", severity, hits)
	}
}

func TestLoadStoplist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stoplist.json")
	payload := `{"5": ["worst"], "3": ["Bad-Term"], "zero": ["ignored"], "-1": ["ignored"]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if severity, _ := s.Screen("theworstapp"); severity != 5 {
		t.Fatalf("expected severity 5, got %d", severity)
	}
	if severity, _ := s.Screen("BadTerm"); severity != 3 {
		t.Fatalf("expected normalized term match, got %d", severity)
	}
	if severity, _ := s.Screen("ignored"); severity != 0 {
		t.Fatalf("invalid severity keys should be dropped, got %d", severity)
	}
}
