package pattern

import "testing"

func TestApplyTransform(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		id       int
		expected string
		ok       bool
	}{
		{"vowel drop", "flicker", 0, "flickr", true},
		{"vowel drop keeps short words", "zip", 0, "", false},
		{"double consonant", "grab", 1, "grabb", true},
		{"double skips vowel ending", "data", 1, "", false},
		{"phonetic ck", "stack", 2, "stak", true},
		{"phonetic leading c", "cloud", 2, "kloud", true},
		{"phonetic no rule", "team", 2, "", false},
		{"unknown id", "cloud", 9, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ApplyTransform(tc.word, tc.id)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v got %v", tc.ok, ok)
			}
			if ok && got != tc.expected {
				t.Fatalf("expected %q got %q", tc.expected, got)
			}
		})
	}
}

func TestApplyTransformDeterministic(t *testing.T) {
	for id := 0; id < TransformCount; id++ {
		first, ok1 := ApplyTransform("sprint", id)
		second, ok2 := ApplyTransform("sprint", id)
		if ok1 != ok2 || first != second {
			t.Fatalf("transform %d not deterministic: %q/%v vs %q/%v", id, first, ok1, second, ok2)
		}
	}
}
