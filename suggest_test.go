package main

import "testing"

func TestSuggestIngredient(t *testing.T) {
	known := []string{"black beans", "rice", "milk", "tomatoes"}

	tests := []struct {
		in   string
		want string
	}{
		{"ric", "rice"},          // prefix match
		{"tomatoe", "tomatoes"},  // near miss
		{"tomatos", "tomatoes"},  // transposed
		{"ri", ""},               // below minimum input length
		{"rice", ""},             // exact match needs no suggestion
		{"Rice", ""},             // case-insensitive exact match
		{"quinoa", ""},           // nothing close
		{"", ""},
	}
	for _, tt := range tests {
		if got := suggestIngredient(tt.in, known); got != tt.want {
			t.Errorf("suggestIngredient(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuggestIngredientEmptyHistory(t *testing.T) {
	if got := suggestIngredient("rice", nil); got != "" {
		t.Errorf("suggestion with no history = %q, want empty", got)
	}
}

func TestNormalizedDistance(t *testing.T) {
	if d := normalizedDistance("abc", "abc"); d != 0 {
		t.Errorf("identical strings distance = %v", d)
	}
	if d := normalizedDistance("abc", "xyz"); d != 1 {
		t.Errorf("disjoint strings distance = %v", d)
	}
	if d := normalizedDistance("", ""); d != 0 {
		t.Errorf("empty strings distance = %v", d)
	}
}
