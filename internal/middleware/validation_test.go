package middleware

import (
	"strings"
	"testing"
)

func TestValidatePostID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"valid reel id", "C8xKq2yP9rT", "C8xKq2yP9rT", false},
		{"valid with dash and underscore", "post-123_abc", "post-123_abc", false},
		{"trims whitespace", "  abc  ", "abc", false},
		{"empty", "", "", true},
		{"too long", strings.Repeat("a", 65), "", true},
		{"exactly 64", strings.Repeat("a", 64), strings.Repeat("a", 64), false},
		{"invalid chars", "abc def", "", true},
		{"sql injection", "a'; DROP--", "", true},
		{"unicode", "abcédef", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidatePostID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantID {
				t.Errorf("got %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestValidateCreatorID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "cr_8842", false},
		{"empty", "", true},
		{"too long", strings.Repeat("x", 33), true},
		{"exactly 32", strings.Repeat("x", 32), false},
		{"path traversal", "../etc/passwd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errMsg := ValidateCreatorID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidateCycleID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid monthly cycle", "2026-03", false},
		{"valid with prefix", "cycle_2026_03", false},
		{"empty", "", true},
		{"too long", strings.Repeat("c", 33), true},
		{"whitespace only", "   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errMsg := ValidateCycleID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidateThumbHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHash string
		wantErr  bool
	}{
		{"valid hash", "8f3a91c2d4e5b607", "8f3a91c2d4e5b607", false},
		{"uppercase normalized", "8F3A91C2D4E5B607", "8f3a91c2d4e5b607", false},
		{"empty is valid", "", "", false},
		{"too short", "8f3a", "", true},
		{"too long", "8f3a91c2d4e5b6071", "", true},
		{"non-hex", "8f3a91c2d4e5b60z", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateThumbHash(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantHash {
				t.Errorf("got %q, want %q", got, tt.wantHash)
			}
		})
	}
}
