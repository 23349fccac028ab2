package main

import (
	"testing"
	"time"
)

func TestResolveDateToken(t *testing.T) {
	today := time.Date(2024, 9, 15, 13, 45, 0, 0, time.Local)

	tests := []struct {
		token string
		want  string
	}{
		{"t", "2024-09-15"},
		{"T", "2024-09-15"},
		{"y", "2024-09-14"},
		{"Y", "2024-09-14"},
		{"2024-01-05", "2024-01-05"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := resolveDateToken(tt.token, today); got != tt.want {
			t.Errorf("resolveDateToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestResolveDateTokenYearBoundary(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	if got := resolveDateToken("y", today); got != "2024-12-31" {
		t.Errorf("yesterday across year boundary = %q, want 2024-12-31", got)
	}
}
